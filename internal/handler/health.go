package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propdir/internal/db"
)

type HealthHandler struct {
	DB *db.DB
}

func (h *HealthHandler) Register(r gin.IRouter) {
	r.GET("/", h.root)
	r.GET("/healthz", h.health)
	r.GET("/readyz", h.ready)
	r.GET("/api/ping", h.ping)
}

func (h *HealthHandler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Prop Firm Directory API",
		"version": "v1",
		"docs":    "/swagger/index.html",
	})
}

// @Summary Health check
// @Tags health
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Readiness check
// @Tags health
// @Success 200 {object} map[string]string
// @Router /readyz [get]
func (h *HealthHandler) ready(c *gin.Context) {
	if err := h.DB.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db_unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (h *HealthHandler) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
