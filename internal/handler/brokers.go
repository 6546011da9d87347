package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propdir/internal/models"
	"propdir/internal/repository"
)

type BrokerHandler struct {
	Repo repository.Repository
}

func (h *BrokerHandler) Register(r gin.IRouter) {
	group := r.Group("/brokers")
	group.GET("", h.list)
	group.POST("", h.create)
	group.PUT("/:id", h.update)
	group.PATCH("/:id/toggle-active", h.toggleActive)
	group.DELETE("/:id", h.remove)
}

// @Summary List brokers
// @Tags brokers
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/brokers [get]
func (h *BrokerHandler) list(c *gin.Context) {
	items, err := h.Repo.ListBrokers(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"brokers": items, "count": len(items)})
}

type brokerRequest struct {
	Name       *string `json:"name"`
	Slug       *string `json:"slug"`
	BrokerType *string `json:"broker_type"`
	LogoURL    *string `json:"logo_url"`
	WebsiteURL *string `json:"website_url"`
	IsActive   *bool   `json:"is_active"`
}

// @Summary Create a broker
// @Tags brokers
// @Param request body brokerRequest true "broker fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/brokers [post]
func (h *BrokerHandler) create(c *gin.Context) {
	var req brokerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil || req.Slug == nil {
		Error(c, http.StatusBadRequest, "Name and slug are required", nil)
		return
	}
	item := models.Broker{
		Name:       *req.Name,
		Slug:       *req.Slug,
		BrokerType: "broker",
		LogoURL:    req.LogoURL,
		WebsiteURL: req.WebsiteURL,
		IsActive:   true,
	}
	if req.BrokerType != nil {
		item.BrokerType = *req.BrokerType
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := h.Repo.CreateBroker(c.Request.Context(), &item); err != nil {
		createError(c, err, "A broker with this slug already exists")
		return
	}
	Ok(c, http.StatusCreated, "Broker created", gin.H{"broker": item})
}

// @Summary Update a broker
// @Tags brokers
// @Param id path string true "broker id"
// @Param request body brokerRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/brokers/{id} [put]
func (h *BrokerHandler) update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetBroker(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Broker not found", nil)
		return
	}
	var req brokerRequest
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
	if req.BrokerType != nil {
		item.BrokerType = *req.BrokerType
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
	if err := h.Repo.SaveBroker(c.Request.Context(), item); err != nil {
		createError(c, err, "A broker with this slug already exists")
		return
	}
	Ok(c, http.StatusOK, "Broker updated", gin.H{"broker": item})
}

// @Summary Flip a broker's active flag
// @Tags brokers
// @Param id path string true "broker id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/brokers/{id}/toggle-active [patch]
func (h *BrokerHandler) toggleActive(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetBroker(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Broker not found", nil)
		return
	}
	item.IsActive = !item.IsActive
	if err := h.Repo.SaveBroker(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Broker status updated", gin.H{"broker": item})
}

// @Summary Delete an unassigned broker
// @Tags brokers
// @Param id path string true "broker id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/brokers/{id} [delete]
func (h *BrokerHandler) remove(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetBroker(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Broker not found", nil)
		return
	}
	n, err := h.Repo.CountFirmsByBroker(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if n > 0 {
		Error(c, http.StatusBadRequest, "Cannot delete broker assigned to firms", gin.H{
			"firm_count": n,
		})
		return
	}
	if err := h.Repo.DeleteBroker(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Broker deleted", nil)
}
