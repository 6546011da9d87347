package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propdir/internal/service"
)

type DashboardHandler struct {
	Stats *service.DashboardService
}

func (h *DashboardHandler) Register(r gin.IRouter) {
	r.GET("/dashboard", h.stats)
}

// @Summary Dashboard statistics
// @Tags dashboard
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/dashboard [get]
func (h *DashboardHandler) stats(c *gin.Context) {
	stats, err := h.Stats.Stats(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"stats": stats})
}
