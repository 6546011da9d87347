package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"propdir/internal/models"
	"propdir/internal/repository"
)

type CouponHandler struct {
	Repo repository.Repository
}

func (h *CouponHandler) Register(r gin.IRouter) {
	group := r.Group("/coupons")
	group.GET("", h.list)
	group.POST("", h.create)
	group.PUT("/:id", h.update)
	group.PATCH("/:id/toggle-active", h.toggleActive)
	group.DELETE("/:id", h.remove)

	group.POST("/assign/firm", h.assignFirm)
	group.DELETE("/assign/firm", h.unassignFirm)
	group.POST("/assign/account-type", h.assignAccountType)
	group.DELETE("/assign/account-type", h.unassignAccountType)
}

// list returns every coupon, expired and inactive ones included; the
// visibility window only applies to public reads.
//
// @Summary List all coupons
// @Tags coupons
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/coupons [get]
func (h *CouponHandler) list(c *gin.Context) {
	items, err := h.Repo.ListCoupons(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"coupons": items, "count": len(items)})
}

type couponRequest struct {
	Code          *string          `json:"code"`
	DiscountText  *string          `json:"discount_text"`
	DiscountValue *decimal.Decimal `json:"discount_value"`
	DiscountType  *string          `json:"discount_type"`
	Description   *string          `json:"description"`
	StartDate     *time.Time       `json:"start_date"`
	EndDate       *time.Time       `json:"end_date"`
	IsActive      *bool            `json:"is_active"`
}

// @Summary Create a coupon
// @Tags coupons
// @Param request body couponRequest true "coupon fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/coupons [post]
func (h *CouponHandler) create(c *gin.Context) {
	var req couponRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == nil || req.DiscountText == nil || req.DiscountType == nil {
		Error(c, http.StatusBadRequest, "Code, discount_text and discount_type are required", nil)
		return
	}
	if *req.DiscountType != models.DiscountTypePercentage && *req.DiscountType != models.DiscountTypeFixed {
		Error(c, http.StatusBadRequest, "Invalid discount_type", nil)
		return
	}
	item := models.Coupon{
		Code:          *req.Code,
		DiscountText:  *req.DiscountText,
		DiscountValue: req.DiscountValue,
		DiscountType:  *req.DiscountType,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		IsActive:      true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := h.Repo.CreateCoupon(c.Request.Context(), &item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusCreated, "Coupon created", gin.H{"coupon": item})
}

// @Summary Update a coupon
// @Tags coupons
// @Param id path string true "coupon id"
// @Param request body couponRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/coupons/{id} [put]
func (h *CouponHandler) update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetCoupon(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Coupon not found", nil)
		return
	}
	var req couponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.DiscountType != nil && *req.DiscountType != models.DiscountTypePercentage && *req.DiscountType != models.DiscountTypeFixed {
		Error(c, http.StatusBadRequest, "Invalid discount_type", nil)
		return
	}
	if req.Code != nil {
		item.Code = *req.Code
	}
	if req.DiscountText != nil {
		item.DiscountText = *req.DiscountText
	}
	if req.DiscountValue != nil {
		item.DiscountValue = req.DiscountValue
	}
	if req.DiscountType != nil {
		item.DiscountType = *req.DiscountType
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.StartDate != nil {
		item.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		item.EndDate = req.EndDate
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	item.Firms = nil
	item.AccountTypes = nil
	if err := h.Repo.SaveCoupon(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Coupon updated", gin.H{"coupon": item})
}

// @Summary Flip a coupon's active flag
// @Tags coupons
// @Param id path string true "coupon id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/coupons/{id}/toggle-active [patch]
func (h *CouponHandler) toggleActive(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetCoupon(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Coupon not found", nil)
		return
	}
	item.IsActive = !item.IsActive
	item.Firms = nil
	item.AccountTypes = nil
	if err := h.Repo.SaveCoupon(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Coupon status updated", gin.H{"coupon": item})
}

// @Summary Delete an unassigned coupon
// @Tags coupons
// @Param id path string true "coupon id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/coupons/{id} [delete]
func (h *CouponHandler) remove(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetCoupon(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Coupon not found", nil)
		return
	}
	counts, err := h.Repo.CountCouponDependents(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	var total int64
	for _, n := range counts {
		total += n
	}
	if total > 0 {
		Error(c, http.StatusBadRequest, "Cannot delete coupon with existing assignments", gin.H{
			"associations": counts,
		})
		return
	}
	if err := h.Repo.DeleteCoupon(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Coupon deleted", nil)
}

type firmAssignmentRequest struct {
	FirmID   uuid.UUID `json:"firm_id" binding:"required"`
	CouponID uuid.UUID `json:"coupon_id" binding:"required"`
}

// @Summary Assign a coupon to a firm
// @Tags coupons
// @Param request body firmAssignmentRequest true "assignment"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/coupons/assign/firm [post]
func (h *CouponHandler) assignFirm(c *gin.Context) {
	var req firmAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "firm_id and coupon_id are required", nil)
		return
	}
	firm, err := h.Repo.GetFirmByID(c.Request.Context(), req.FirmID)
	if err != nil {
		serverError(c, err)
		return
	}
	if firm == nil {
		Error(c, http.StatusNotFound, "Firm not found", nil)
		return
	}
	coupon, err := h.Repo.GetCoupon(c.Request.Context(), req.CouponID)
	if err != nil {
		serverError(c, err)
		return
	}
	if coupon == nil {
		Error(c, http.StatusNotFound, "Coupon not found", nil)
		return
	}
	link := models.FirmCoupon{FirmID: req.FirmID, CouponID: req.CouponID}
	if err := h.Repo.AssignCouponToFirm(c.Request.Context(), &link); err != nil {
		createError(c, err, "Coupon already assigned to this firm")
		return
	}
	Ok(c, http.StatusCreated, "Coupon assigned", gin.H{"assignment": link})
}

// @Summary Remove a coupon from a firm
// @Tags coupons
// @Param request body firmAssignmentRequest true "assignment"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/coupons/assign/firm [delete]
func (h *CouponHandler) unassignFirm(c *gin.Context) {
	var req firmAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "firm_id and coupon_id are required", nil)
		return
	}
	n, err := h.Repo.UnassignCouponFromFirm(c.Request.Context(), req.FirmID, req.CouponID)
	if err != nil {
		serverError(c, err)
		return
	}
	if n == 0 {
		Error(c, http.StatusNotFound, "Assignment not found", nil)
		return
	}
	Ok(c, http.StatusOK, "Coupon unassigned", nil)
}

type accountTypeAssignmentRequest struct {
	CouponID      uuid.UUID `json:"coupon_id" binding:"required"`
	AccountTypeID uuid.UUID `json:"account_type_id" binding:"required"`
}

// @Summary Assign a coupon to an account type
// @Tags coupons
// @Param request body accountTypeAssignmentRequest true "assignment"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/coupons/assign/account-type [post]
func (h *CouponHandler) assignAccountType(c *gin.Context) {
	var req accountTypeAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "coupon_id and account_type_id are required", nil)
		return
	}
	coupon, err := h.Repo.GetCoupon(c.Request.Context(), req.CouponID)
	if err != nil {
		serverError(c, err)
		return
	}
	if coupon == nil {
		Error(c, http.StatusNotFound, "Coupon not found", nil)
		return
	}
	accountType, err := h.Repo.GetAccountType(c.Request.Context(), req.AccountTypeID)
	if err != nil {
		serverError(c, err)
		return
	}
	if accountType == nil {
		Error(c, http.StatusNotFound, "Account type not found", nil)
		return
	}
	link := models.CouponAccountType{CouponID: req.CouponID, AccountTypeID: req.AccountTypeID}
	if err := h.Repo.AssignCouponToAccountType(c.Request.Context(), &link); err != nil {
		createError(c, err, "Coupon already assigned to this account type")
		return
	}
	Ok(c, http.StatusCreated, "Coupon assigned", gin.H{"assignment": link})
}

// @Summary Remove a coupon from an account type
// @Tags coupons
// @Param request body accountTypeAssignmentRequest true "assignment"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/coupons/assign/account-type [delete]
func (h *CouponHandler) unassignAccountType(c *gin.Context) {
	var req accountTypeAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "coupon_id and account_type_id are required", nil)
		return
	}
	n, err := h.Repo.UnassignCouponFromAccountType(c.Request.Context(), req.CouponID, req.AccountTypeID)
	if err != nil {
		serverError(c, err)
		return
	}
	if n == 0 {
		Error(c, http.StatusNotFound, "Assignment not found", nil)
		return
	}
	Ok(c, http.StatusOK, "Coupon unassigned", nil)
}
