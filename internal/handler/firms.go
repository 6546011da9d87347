package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"propdir/internal/models"
	"propdir/internal/repository"
	"propdir/internal/service"
)

type FirmHandler struct {
	Repo   repository.Repository
	Detail *service.FirmDetailService
}

func (h *FirmHandler) Register(r gin.IRouter) {
	group := r.Group("/firms")
	group.GET("", h.listFirms)
	group.GET("/:id", h.getFirm)
	group.POST("", h.createFirm)
	group.PUT("/:id", h.updateFirm)
	group.PATCH("/:id/toggle-active", h.toggleActive)
	group.DELETE("/:id", h.deleteFirm)
}

// @Summary List all firms
// @Tags firms
// @Param firm_type query string false "prop_firm|futures_firm"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/firms [get]
func (h *FirmHandler) listFirms(c *gin.Context) {
	params := repository.ListFirmsParams{
		OrderClauses: []repository.OrderClause{{Column: "name"}},
	}
	if t := c.Query("firm_type"); t != "" {
		params.FirmType = &t
	}
	firms, err := h.Repo.ListFirms(c.Request.Context(), params)
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"firms": firms, "count": len(firms)})
}

// @Summary Get a firm with its full detail
// @Tags firms
// @Param id path string true "firm id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/firms/{id} [get]
func (h *FirmHandler) getFirm(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.Detail.ByID(c.Request.Context(), id, false)
	if err != nil {
		serverError(c, err)
		return
	}
	if detail == nil {
		Error(c, http.StatusNotFound, "Firm not found", nil)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"firm": detail})
}

type createFirmRequest struct {
	Name          string           `json:"name" binding:"required"`
	Slug          string           `json:"slug" binding:"required"`
	FirmType      string           `json:"firm_type" binding:"required,oneof=prop_firm futures_firm"`
	LogoURL       *string          `json:"logo_url"`
	FoundedYear   *int             `json:"founded_year"`
	Rating        *decimal.Decimal `json:"rating"`
	ReviewCount   *int             `json:"review_count"`
	MaxAllocation *int             `json:"max_allocation"`
	Description   *string          `json:"description"`
	Location      *string          `json:"location"`
	GuideVideoURL *string          `json:"guide_video_url"`
	IsActive      *bool            `json:"is_active"`
}

// @Summary Create a firm
// @Tags firms
// @Param request body createFirmRequest true "firm fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/firms [post]
func (h *FirmHandler) createFirm(c *gin.Context) {
	var req createFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Name, slug and firm_type are required", nil)
		return
	}
	firm := models.Firm{
		Name:          req.Name,
		Slug:          req.Slug,
		FirmType:      req.FirmType,
		LogoURL:       req.LogoURL,
		FoundedYear:   req.FoundedYear,
		Rating:        req.Rating,
		MaxAllocation: req.MaxAllocation,
		Description:   req.Description,
		Location:      req.Location,
		GuideVideoURL: req.GuideVideoURL,
		IsActive:      true,
	}
	if req.ReviewCount != nil {
		firm.ReviewCount = *req.ReviewCount
	}
	if req.IsActive != nil {
		firm.IsActive = *req.IsActive
	}
	if err := h.Repo.CreateFirm(c.Request.Context(), &firm); err != nil {
		createError(c, err, "A firm with this slug already exists")
		return
	}
	Ok(c, http.StatusCreated, "Firm created", gin.H{"firm": firm})
}

type updateFirmRequest struct {
	Name          *string          `json:"name"`
	Slug          *string          `json:"slug"`
	FirmType      *string          `json:"firm_type"`
	LogoURL       *string          `json:"logo_url"`
	FoundedYear   *int             `json:"founded_year"`
	Rating        *decimal.Decimal `json:"rating"`
	ReviewCount   *int             `json:"review_count"`
	MaxAllocation *int             `json:"max_allocation"`
	Description   *string          `json:"description"`
	Location      *string          `json:"location"`
	GuideVideoURL *string          `json:"guide_video_url"`
	IsActive      *bool            `json:"is_active"`

	TradingPlatformIDs   *[]uuid.UUID `json:"trading_platform_ids"`
	BrokerIDs            *[]uuid.UUID `json:"broker_ids"`
	PayoutMethodIDs      *[]uuid.UUID `json:"payout_method_ids"`
	PaymentMethodIDs     *[]uuid.UUID `json:"payment_method_ids"`
	AssetIDs             *[]uuid.UUID `json:"asset_ids"`
	RestrictedCountryIDs *[]uuid.UUID `json:"restricted_country_ids"`
	FuturesExchangeIDs   *[]uuid.UUID `json:"futures_exchange_ids"`
}

func (r updateFirmRequest) fields() map[string]any {
	fields := map[string]any{}
	set := func(col string, v any, present bool) {
		if present {
			fields[col] = v
		}
	}
	set("name", deref(r.Name), r.Name != nil)
	set("slug", deref(r.Slug), r.Slug != nil)
	set("firm_type", deref(r.FirmType), r.FirmType != nil)
	set("logo_url", r.LogoURL, r.LogoURL != nil)
	set("founded_year", r.FoundedYear, r.FoundedYear != nil)
	set("rating", r.Rating, r.Rating != nil)
	set("review_count", deref(r.ReviewCount), r.ReviewCount != nil)
	set("max_allocation", r.MaxAllocation, r.MaxAllocation != nil)
	set("description", r.Description, r.Description != nil)
	set("location", r.Location, r.Location != nil)
	set("guide_video_url", r.GuideVideoURL, r.GuideVideoURL != nil)
	set("is_active", deref(r.IsActive), r.IsActive != nil)
	return fields
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// updateFirm applies scalar changes and relation replacements in one
// transaction, then returns the reassembled detail view. An omitted
// relation array is left untouched; an empty one clears the relation.
//
// @Summary Update a firm and its relations
// @Tags firms
// @Param id path string true "firm id"
// @Param request body updateFirmRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/firms/{id} [put]
func (h *FirmHandler) updateFirm(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	existing, err := h.Repo.GetFirmByID(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if existing == nil {
		Error(c, http.StatusNotFound, "Firm not found", nil)
		return
	}

	var req updateFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.FirmType != nil && *req.FirmType != models.FirmTypeProp && *req.FirmType != models.FirmTypeFutures {
		Error(c, http.StatusBadRequest, "Invalid firm_type", nil)
		return
	}

	assoc := repository.FirmAssociations{
		TradingPlatformIDs:   req.TradingPlatformIDs,
		BrokerIDs:            req.BrokerIDs,
		PayoutMethodIDs:      req.PayoutMethodIDs,
		PaymentMethodIDs:     req.PaymentMethodIDs,
		AssetIDs:             req.AssetIDs,
		RestrictedCountryIDs: req.RestrictedCountryIDs,
		FuturesExchangeIDs:   req.FuturesExchangeIDs,
	}
	if err := h.Repo.UpdateFirm(c.Request.Context(), id, req.fields(), assoc); err != nil {
		createError(c, err, "A firm with this slug already exists")
		return
	}

	detail, err := h.Detail.ByID(c.Request.Context(), id, false)
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Firm updated", gin.H{"firm": detail})
}

// @Summary Flip a firm's active flag
// @Tags firms
// @Param id path string true "firm id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/firms/{id}/toggle-active [patch]
func (h *FirmHandler) toggleActive(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	firm, err := h.Repo.GetFirmByID(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if firm == nil {
		Error(c, http.StatusNotFound, "Firm not found", nil)
		return
	}
	firm.IsActive = !firm.IsActive
	if err := h.Repo.SaveFirm(c.Request.Context(), firm); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Firm status updated", gin.H{"firm": firm})
}

// deleteFirm blocks while child rows or coupon assignments exist,
// reporting their counts. The remaining join rows are purged with the
// firm.
//
// @Summary Delete a firm without dependents
// @Tags firms
// @Param id path string true "firm id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/firms/{id} [delete]
func (h *FirmHandler) deleteFirm(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	firm, err := h.Repo.GetFirmByID(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if firm == nil {
		Error(c, http.StatusNotFound, "Firm not found", nil)
		return
	}

	counts, err := h.Repo.CountFirmDependents(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	var total int64
	for _, n := range counts {
		total += n
	}
	if total > 0 {
		Error(c, http.StatusBadRequest, "Cannot delete firm with existing records", gin.H{
			"associations": counts,
		})
		return
	}

	if err := h.Repo.DeleteFirm(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Firm deleted", nil)
}
