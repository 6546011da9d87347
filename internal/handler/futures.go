package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"propdir/internal/models"
	"propdir/internal/repository"
)

// FuturesHandler serves the futures-firm product configuration:
// instrument types, exchanges and funded programs.
type FuturesHandler struct {
	Repo repository.Repository
}

func (h *FuturesHandler) Register(r gin.IRouter) {
	group := r.Group("/futures")

	instruments := group.Group("/instrument-types")
	instruments.GET("", h.listInstrumentTypes)
	instruments.POST("", h.createInstrumentType)
	instruments.PUT("/:id", h.updateInstrumentType)
	instruments.DELETE("/:id", h.removeInstrumentType)

	exchanges := group.Group("/exchanges")
	exchanges.GET("", h.listExchanges)
	exchanges.POST("", h.createExchange)
	exchanges.PUT("/:id", h.updateExchange)
	exchanges.DELETE("/:id", h.removeExchange)

	programs := group.Group("/programs")
	programs.GET("", h.listPrograms)
	programs.GET("/:id", h.getProgram)
	programs.POST("", h.createProgram)
	programs.PUT("/:id", h.updateProgram)
	programs.DELETE("/:id", h.removeProgram)
}

// Instrument types.

// @Summary List instrument types
// @Tags futures
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/futures/instrument-types [get]
func (h *FuturesHandler) listInstrumentTypes(c *gin.Context) {
	items, err := h.Repo.ListInstrumentTypes(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"instrument_types": items, "count": len(items)})
}

type instrumentTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// @Summary Create an instrument type
// @Tags futures
// @Param request body instrumentTypeRequest true "instrument type fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/futures/instrument-types [post]
func (h *FuturesHandler) createInstrumentType(c *gin.Context) {
	var req instrumentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil {
		Error(c, http.StatusBadRequest, "Name is required", nil)
		return
	}
	item := models.InstrumentType{Name: *req.Name, Description: req.Description}
	if err := h.Repo.CreateInstrumentType(c.Request.Context(), &item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusCreated, "Instrument type created", gin.H{"instrument_type": item})
}

// @Summary Update an instrument type
// @Tags futures
// @Param id path string true "instrument type id"
// @Param request body instrumentTypeRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/futures/instrument-types/{id} [put]
func (h *FuturesHandler) updateInstrumentType(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetInstrumentType(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Instrument type not found", nil)
		return
	}
	var req instrumentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if err := h.Repo.SaveInstrumentType(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Instrument type updated", gin.H{"instrument_type": item})
}

// @Summary Delete an unreferenced instrument type
// @Tags futures
// @Param id path string true "instrument type id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/futures/instrument-types/{id} [delete]
func (h *FuturesHandler) removeInstrumentType(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetInstrumentType(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Instrument type not found", nil)
		return
	}
	if err := h.Repo.DeleteInstrumentType(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Instrument type deleted", nil)
}

// Exchanges.

// @Summary List futures exchanges
// @Tags futures
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/futures/exchanges [get]
func (h *FuturesHandler) listExchanges(c *gin.Context) {
	items, err := h.Repo.ListFuturesExchanges(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"exchanges": items, "count": len(items)})
}

type exchangeRequest struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

// @Summary Create a futures exchange
// @Tags futures
// @Param request body exchangeRequest true "exchange fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/futures/exchanges [post]
func (h *FuturesHandler) createExchange(c *gin.Context) {
	var req exchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil || req.Code == nil {
		Error(c, http.StatusBadRequest, "Name and code are required", nil)
		return
	}
	item := models.FuturesExchange{Name: *req.Name, Code: *req.Code}
	if err := h.Repo.CreateFuturesExchange(c.Request.Context(), &item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusCreated, "Exchange created", gin.H{"exchange": item})
}

// @Summary Update a futures exchange
// @Tags futures
// @Param id path string true "exchange id"
// @Param request body exchangeRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/futures/exchanges/{id} [put]
func (h *FuturesHandler) updateExchange(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetFuturesExchange(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Exchange not found", nil)
		return
	}
	var req exchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Code != nil {
		item.Code = *req.Code
	}
	if err := h.Repo.SaveFuturesExchange(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Exchange updated", gin.H{"exchange": item})
}

// @Summary Delete an unreferenced futures exchange
// @Tags futures
// @Param id path string true "exchange id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/futures/exchanges/{id} [delete]
func (h *FuturesHandler) removeExchange(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetFuturesExchange(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Exchange not found", nil)
		return
	}
	n, err := h.Repo.CountFirmsByFuturesExchange(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if n > 0 {
		Error(c, http.StatusBadRequest, "Cannot delete exchange assigned to firms", gin.H{
			"firm_count": n,
		})
		return
	}
	if err := h.Repo.DeleteFuturesExchange(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Exchange deleted", nil)
}

// Programs.

// @Summary List futures programs
// @Tags futures
// @Param firm_id query string false "filter by firm"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/futures/programs [get]
func (h *FuturesHandler) listPrograms(c *gin.Context) {
	firmID, ok := uuidQuery(c, "firm_id")
	if !ok {
		return
	}
	items, err := h.Repo.ListFuturesPrograms(c.Request.Context(), firmID)
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"programs": items, "count": len(items)})
}

// @Summary Get a futures program
// @Tags futures
// @Param id path string true "program id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/futures/programs/{id} [get]
func (h *FuturesHandler) getProgram(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetFuturesProgram(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Program not found", nil)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"program": item})
}

type createProgramRequest struct {
	FirmID           string           `json:"firm_id" binding:"required,uuid"`
	Name             string           `json:"name" binding:"required"`
	AccountSize      int              `json:"account_size" binding:"required"`
	Price            decimal.Decimal  `json:"price"`
	ProfitTarget     decimal.Decimal  `json:"profit_target"`
	MaxDrawdown      decimal.Decimal  `json:"max_drawdown"`
	TrailingDrawdown *bool            `json:"trailing_drawdown"`
	ResetFee         *decimal.Decimal `json:"reset_fee"`
	Notes            *string          `json:"notes"`
}

// @Summary Create a futures program
// @Tags futures
// @Param request body createProgramRequest true "program fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/futures/programs [post]
func (h *FuturesHandler) createProgram(c *gin.Context) {
	var req createProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "firm_id, name and account_size are required", nil)
		return
	}
	firmID := mustUUID(req.FirmID)
	firm, err := h.Repo.GetFirmByID(c.Request.Context(), firmID)
	if err != nil {
		serverError(c, err)
		return
	}
	if firm == nil {
		Error(c, http.StatusNotFound, "Firm not found", nil)
		return
	}
	item := models.FuturesProgram{
		FirmID:       firmID,
		Name:         req.Name,
		AccountSize:  req.AccountSize,
		Price:        req.Price,
		ProfitTarget: req.ProfitTarget,
		MaxDrawdown:  req.MaxDrawdown,
		ResetFee:     req.ResetFee,
		Notes:        req.Notes,
	}
	if req.TrailingDrawdown != nil {
		item.TrailingDrawdown = *req.TrailingDrawdown
	}
	if err := h.Repo.CreateFuturesProgram(c.Request.Context(), &item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusCreated, "Program created", gin.H{"program": item})
}

type updateProgramRequest struct {
	Name             *string          `json:"name"`
	AccountSize      *int             `json:"account_size"`
	Price            *decimal.Decimal `json:"price"`
	ProfitTarget     *decimal.Decimal `json:"profit_target"`
	MaxDrawdown      *decimal.Decimal `json:"max_drawdown"`
	TrailingDrawdown *bool            `json:"trailing_drawdown"`
	ResetFee         *decimal.Decimal `json:"reset_fee"`
	Notes            *string          `json:"notes"`
}

// @Summary Update a futures program
// @Tags futures
// @Param id path string true "program id"
// @Param request body updateProgramRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/futures/programs/{id} [put]
func (h *FuturesHandler) updateProgram(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetFuturesProgram(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Program not found", nil)
		return
	}
	var req updateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.AccountSize != nil {
		item.AccountSize = *req.AccountSize
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.ProfitTarget != nil {
		item.ProfitTarget = *req.ProfitTarget
	}
	if req.MaxDrawdown != nil {
		item.MaxDrawdown = *req.MaxDrawdown
	}
	if req.TrailingDrawdown != nil {
		item.TrailingDrawdown = *req.TrailingDrawdown
	}
	if req.ResetFee != nil {
		item.ResetFee = req.ResetFee
	}
	if req.Notes != nil {
		item.Notes = req.Notes
	}
	item.Commissions = nil
	if err := h.Repo.SaveFuturesProgram(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Program updated", gin.H{"program": item})
}

// @Summary Delete a futures program without dependents
// @Tags futures
// @Param id path string true "program id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/futures/programs/{id} [delete]
func (h *FuturesHandler) removeProgram(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetFuturesProgram(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Program not found", nil)
		return
	}
	if err := h.Repo.DeleteFuturesProgram(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Program deleted", nil)
}
