package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propdir/internal/models"
	"propdir/internal/repository"
)

type PlatformHandler struct {
	Repo repository.Repository
}

func (h *PlatformHandler) Register(r gin.IRouter) {
	group := r.Group("/platforms")
	group.GET("", h.list)
	group.POST("", h.create)
	group.PUT("/:id", h.update)
	group.PATCH("/:id/toggle-active", h.toggleActive)
	group.DELETE("/:id", h.remove)
}

// @Summary List trading platforms
// @Tags platforms
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/platforms [get]
func (h *PlatformHandler) list(c *gin.Context) {
	items, err := h.Repo.ListTradingPlatforms(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"platforms": items, "count": len(items)})
}

type platformRequest struct {
	Name       *string `json:"name"`
	Slug       *string `json:"slug"`
	Category   *string `json:"category"`
	LogoURL    *string `json:"logo_url"`
	WebsiteURL *string `json:"website_url"`
	IsActive   *bool   `json:"is_active"`
}

// @Summary Create a trading platform
// @Tags platforms
// @Param request body platformRequest true "platform fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/platforms [post]
func (h *PlatformHandler) create(c *gin.Context) {
	var req platformRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil || req.Slug == nil {
		Error(c, http.StatusBadRequest, "Name and slug are required", nil)
		return
	}
	item := models.TradingPlatform{
		Name:       *req.Name,
		Slug:       *req.Slug,
		Category:   "both",
		LogoURL:    req.LogoURL,
		WebsiteURL: req.WebsiteURL,
		IsActive:   true,
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := h.Repo.CreateTradingPlatform(c.Request.Context(), &item); err != nil {
		createError(c, err, "A platform with this slug already exists")
		return
	}
	Ok(c, http.StatusCreated, "Platform created", gin.H{"platform": item})
}

// @Summary Update a trading platform
// @Tags platforms
// @Param id path string true "platform id"
// @Param request body platformRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/platforms/{id} [put]
func (h *PlatformHandler) update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetTradingPlatform(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Platform not found", nil)
		return
	}
	var req platformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Slug != nil {
		item.Slug = *req.Slug
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.LogoURL != nil {
		item.LogoURL = req.LogoURL
	}
	if req.WebsiteURL != nil {
		item.WebsiteURL = req.WebsiteURL
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := h.Repo.SaveTradingPlatform(c.Request.Context(), item); err != nil {
		createError(c, err, "A platform with this slug already exists")
		return
	}
	Ok(c, http.StatusOK, "Platform updated", gin.H{"platform": item})
}

// @Summary Flip a platform's active flag
// @Tags platforms
// @Param id path string true "platform id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/platforms/{id}/toggle-active [patch]
func (h *PlatformHandler) toggleActive(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetTradingPlatform(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Platform not found", nil)
		return
	}
	item.IsActive = !item.IsActive
	if err := h.Repo.SaveTradingPlatform(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Platform status updated", gin.H{"platform": item})
}

// @Summary Delete an unassigned trading platform
// @Tags platforms
// @Param id path string true "platform id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/platforms/{id} [delete]
func (h *PlatformHandler) remove(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetTradingPlatform(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Platform not found", nil)
		return
	}
	n, err := h.Repo.CountFirmsByTradingPlatform(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if n > 0 {
		Error(c, http.StatusBadRequest, "Cannot delete platform assigned to firms", gin.H{
			"firm_count": n,
		})
		return
	}
	if err := h.Repo.DeleteTradingPlatform(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Platform deleted", nil)
}
