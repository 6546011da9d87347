package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propdir/internal/models"
	"propdir/internal/repository"
)

type PaymentMethodHandler struct {
	Repo repository.Repository
}

func (h *PaymentMethodHandler) Register(r gin.IRouter) {
	group := r.Group("/payment-methods")
	group.GET("", h.list)
	group.POST("", h.create)
	group.PUT("/:id", h.update)
	group.PATCH("/:id/toggle-active", h.toggleActive)
	group.DELETE("/:id", h.remove)
}

// @Summary List payment methods
// @Tags payment-methods
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/payment-methods [get]
func (h *PaymentMethodHandler) list(c *gin.Context) {
	items, err := h.Repo.ListPaymentMethods(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"payment_methods": items, "count": len(items)})
}

// @Summary Create a payment method
// @Tags payment-methods
// @Param request body methodRequest true "method fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/payment-methods [post]
func (h *PaymentMethodHandler) create(c *gin.Context) {
	var req methodRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil || req.Slug == nil {
		Error(c, http.StatusBadRequest, "Name and slug are required", nil)
		return
	}
	item := models.PaymentMethod{
		Name:     *req.Name,
		Slug:     *req.Slug,
		LogoURL:  req.LogoURL,
		IsActive: true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := h.Repo.CreatePaymentMethod(c.Request.Context(), &item); err != nil {
		createError(c, err, "A payment method with this slug already exists")
		return
	}
	Ok(c, http.StatusCreated, "Payment method created", gin.H{"payment_method": item})
}

// @Summary Update a payment method
// @Tags payment-methods
// @Param id path string true "method id"
// @Param request body methodRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/payment-methods/{id} [put]
func (h *PaymentMethodHandler) update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetPaymentMethod(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Payment method not found", nil)
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
	if err := h.Repo.SavePaymentMethod(c.Request.Context(), item); err != nil {
		createError(c, err, "A payment method with this slug already exists")
		return
	}
	Ok(c, http.StatusOK, "Payment method updated", gin.H{"payment_method": item})
}

// @Summary Flip a payment method's active flag
// @Tags payment-methods
// @Param id path string true "method id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/payment-methods/{id}/toggle-active [patch]
func (h *PaymentMethodHandler) toggleActive(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetPaymentMethod(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Payment method not found", nil)
		return
	}
	item.IsActive = !item.IsActive
	if err := h.Repo.SavePaymentMethod(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Payment method status updated", gin.H{"payment_method": item})
}

// @Summary Delete an unassigned payment method
// @Tags payment-methods
// @Param id path string true "method id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/payment-methods/{id} [delete]
func (h *PaymentMethodHandler) remove(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetPaymentMethod(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Payment method not found", nil)
		return
	}
	n, err := h.Repo.CountFirmsByPaymentMethod(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if n > 0 {
		Error(c, http.StatusBadRequest, "Cannot delete payment method assigned to firms", gin.H{
			"firm_count": n,
		})
		return
	}
	if err := h.Repo.DeletePaymentMethod(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Payment method deleted", nil)
}
