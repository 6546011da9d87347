package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propdir/internal/models"
	"propdir/internal/repository"
)

type PayoutMethodHandler struct {
	Repo repository.Repository
}

func (h *PayoutMethodHandler) Register(r gin.IRouter) {
	group := r.Group("/payout-methods")
	group.GET("", h.list)
	group.POST("", h.create)
	group.PUT("/:id", h.update)
	group.PATCH("/:id/toggle-active", h.toggleActive)
	group.DELETE("/:id", h.remove)
}

// @Summary List payout methods
// @Tags payout-methods
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/payout-methods [get]
func (h *PayoutMethodHandler) list(c *gin.Context) {
	items, err := h.Repo.ListPayoutMethods(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"payout_methods": items, "count": len(items)})
}

type methodRequest struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	LogoURL  *string `json:"logo_url"`
	IsActive *bool   `json:"is_active"`
}

// @Summary Create a payout method
// @Tags payout-methods
// @Param request body methodRequest true "method fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/payout-methods [post]
func (h *PayoutMethodHandler) create(c *gin.Context) {
	var req methodRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil || req.Slug == nil {
		Error(c, http.StatusBadRequest, "Name and slug are required", nil)
		return
	}
	item := models.PayoutMethod{
		Name:     *req.Name,
		Slug:     *req.Slug,
		LogoURL:  req.LogoURL,
		IsActive: true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := h.Repo.CreatePayoutMethod(c.Request.Context(), &item); err != nil {
		createError(c, err, "A payout method with this slug already exists")
		return
	}
	Ok(c, http.StatusCreated, "Payout method created", gin.H{"payout_method": item})
}

// @Summary Update a payout method
// @Tags payout-methods
// @Param id path string true "method id"
// @Param request body methodRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/payout-methods/{id} [put]
func (h *PayoutMethodHandler) update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetPayoutMethod(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Payout method not found", nil)
		return
	}
	var req methodRequest
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
	if req.LogoURL != nil {
		item.LogoURL = req.LogoURL
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := h.Repo.SavePayoutMethod(c.Request.Context(), item); err != nil {
		createError(c, err, "A payout method with this slug already exists")
		return
	}
	Ok(c, http.StatusOK, "Payout method updated", gin.H{"payout_method": item})
}

// @Summary Flip a payout method's active flag
// @Tags payout-methods
// @Param id path string true "method id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/payout-methods/{id}/toggle-active [patch]
func (h *PayoutMethodHandler) toggleActive(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetPayoutMethod(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Payout method not found", nil)
		return
	}
	item.IsActive = !item.IsActive
	if err := h.Repo.SavePayoutMethod(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Payout method status updated", gin.H{"payout_method": item})
}

// @Summary Delete an unassigned payout method
// @Tags payout-methods
// @Param id path string true "method id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/payout-methods/{id} [delete]
func (h *PayoutMethodHandler) remove(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetPayoutMethod(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Payout method not found", nil)
		return
	}
	n, err := h.Repo.CountFirmsByPayoutMethod(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if n > 0 {
		Error(c, http.StatusBadRequest, "Cannot delete payout method assigned to firms", gin.H{
			"firm_count": n,
		})
		return
	}
	if err := h.Repo.DeletePayoutMethod(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Payout method deleted", nil)
}
