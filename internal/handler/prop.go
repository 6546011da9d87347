package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"propdir/internal/models"
	"propdir/internal/repository"
)

// PropHandler serves the prop-firm product configuration: tradable
// assets, account types and their evaluation stages.
type PropHandler struct {
	Repo repository.Repository
}

func (h *PropHandler) Register(r gin.IRouter) {
	group := r.Group("/prop")
	group.GET("", h.config)

	assets := group.Group("/assets")
	assets.GET("", h.listAssets)
	assets.POST("", h.createAsset)
	assets.PUT("/:id", h.updateAsset)
	assets.PATCH("/:id/toggle-active", h.toggleAsset)
	assets.DELETE("/:id", h.removeAsset)

	accountTypes := group.Group("/account-types")
	accountTypes.GET("", h.listAccountTypes)
	accountTypes.GET("/:id", h.getAccountType)
	accountTypes.POST("", h.createAccountType)
	accountTypes.PUT("/:id", h.updateAccountType)
	accountTypes.DELETE("/:id", h.removeAccountType)

	stages := group.Group("/evaluation-stages")
	stages.GET("", h.listStages)
	stages.POST("", h.createStage)
	stages.PUT("/:id", h.updateStage)
	stages.DELETE("/:id", h.removeStage)
}

// config returns everything the prop configuration screen needs in one
// round trip.
//
// @Summary Prop configuration bundle
// @Tags prop
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/prop [get]
func (h *PropHandler) config(c *gin.Context) {
	assets, err := h.Repo.ListAssets(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	accountTypes, err := h.Repo.ListAccountTypes(c.Request.Context(), nil)
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{
		"assets":        assets,
		"account_types": accountTypes,
	})
}

// Assets.

// @Summary List assets
// @Tags prop
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/prop/assets [get]
func (h *PropHandler) listAssets(c *gin.Context) {
	items, err := h.Repo.ListAssets(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"assets": items, "count": len(items)})
}

type assetRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

// @Summary Create an asset
// @Tags prop
// @Param request body assetRequest true "asset fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/prop/assets [post]
func (h *PropHandler) createAsset(c *gin.Context) {
	var req assetRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil {
		Error(c, http.StatusBadRequest, "Name is required", nil)
		return
	}
	item := models.Asset{Name: *req.Name, IsActive: true}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := h.Repo.CreateAsset(c.Request.Context(), &item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusCreated, "Asset created", gin.H{"asset": item})
}

// @Summary Update an asset
// @Tags prop
// @Param id path string true "asset id"
// @Param request body assetRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/prop/assets/{id} [put]
func (h *PropHandler) updateAsset(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetAsset(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Asset not found", nil)
		return
	}
	var req assetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := h.Repo.SaveAsset(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Asset updated", gin.H{"asset": item})
}

// @Summary Flip an asset's active flag
// @Tags prop
// @Param id path string true "asset id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/prop/assets/{id}/toggle-active [patch]
func (h *PropHandler) toggleAsset(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetAsset(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Asset not found", nil)
		return
	}
	item.IsActive = !item.IsActive
	if err := h.Repo.SaveAsset(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Asset status updated", gin.H{"asset": item})
}

// @Summary Delete an unassigned asset
// @Tags prop
// @Param id path string true "asset id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/prop/assets/{id} [delete]
func (h *PropHandler) removeAsset(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetAsset(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Asset not found", nil)
		return
	}
	n, err := h.Repo.CountFirmsByAsset(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if n > 0 {
		Error(c, http.StatusBadRequest, "Cannot delete asset assigned to firms", gin.H{
			"firm_count": n,
		})
		return
	}
	if err := h.Repo.DeleteAsset(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Asset deleted", nil)
}

// Account types.

// @Summary List account types
// @Tags prop
// @Param firm_id query string false "filter by firm"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/prop/account-types [get]
func (h *PropHandler) listAccountTypes(c *gin.Context) {
	firmID, ok := uuidQuery(c, "firm_id")
	if !ok {
		return
	}
	items, err := h.Repo.ListAccountTypes(c.Request.Context(), firmID)
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"account_types": items, "count": len(items)})
}

// @Summary Get an account type
// @Tags prop
// @Param id path string true "account type id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/prop/account-types/{id} [get]
func (h *PropHandler) getAccountType(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetAccountType(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Account type not found", nil)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"account_type": item})
}

type createAccountTypeRequest struct {
	FirmID             string           `json:"firm_id" binding:"required,uuid"`
	Name               string           `json:"name" binding:"required"`
	StartingBalance    int              `json:"starting_balance" binding:"required"`
	Price              decimal.Decimal  `json:"price"`
	ProfitTarget       decimal.Decimal  `json:"profit_target"`
	DailyDrawdown      decimal.Decimal  `json:"daily_drawdown"`
	MaxDrawdown        decimal.Decimal  `json:"max_drawdown"`
	ProfitSplit        decimal.Decimal  `json:"profit_split"`
	EvaluationRequired *bool            `json:"evaluation_required"`
	ProgramVariant     *string          `json:"program_variant"`
	ProgramName        *string          `json:"program_name"`
	IsActive           *bool            `json:"is_active"`
}

// @Summary Create an account type
// @Tags prop
// @Param request body createAccountTypeRequest true "account type fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/prop/account-types [post]
func (h *PropHandler) createAccountType(c *gin.Context) {
	var req createAccountTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "firm_id, name and starting_balance are required", nil)
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
	item := models.AccountType{
		FirmID:             firmID,
		Name:               req.Name,
		StartingBalance:    req.StartingBalance,
		Price:              req.Price,
		ProfitTarget:       req.ProfitTarget,
		DailyDrawdown:      req.DailyDrawdown,
		MaxDrawdown:        req.MaxDrawdown,
		ProfitSplit:        req.ProfitSplit,
		EvaluationRequired: true,
		ProgramVariant:     req.ProgramVariant,
		ProgramName:        req.ProgramName,
		IsActive:           true,
	}
	if req.EvaluationRequired != nil {
		item.EvaluationRequired = *req.EvaluationRequired
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := h.Repo.CreateAccountType(c.Request.Context(), &item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusCreated, "Account type created", gin.H{"account_type": item})
}

type updateAccountTypeRequest struct {
	Name               *string          `json:"name"`
	StartingBalance    *int             `json:"starting_balance"`
	Price              *decimal.Decimal `json:"price"`
	ProfitTarget       *decimal.Decimal `json:"profit_target"`
	DailyDrawdown      *decimal.Decimal `json:"daily_drawdown"`
	MaxDrawdown        *decimal.Decimal `json:"max_drawdown"`
	ProfitSplit        *decimal.Decimal `json:"profit_split"`
	EvaluationRequired *bool            `json:"evaluation_required"`
	ProgramVariant     *string          `json:"program_variant"`
	ProgramName        *string          `json:"program_name"`
	IsActive           *bool            `json:"is_active"`
}

// @Summary Update an account type
// @Tags prop
// @Param id path string true "account type id"
// @Param request body updateAccountTypeRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/prop/account-types/{id} [put]
func (h *PropHandler) updateAccountType(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetAccountType(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Account type not found", nil)
		return
	}
	var req updateAccountTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.StartingBalance != nil {
		item.StartingBalance = *req.StartingBalance
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.ProfitTarget != nil {
		item.ProfitTarget = *req.ProfitTarget
	}
	if req.DailyDrawdown != nil {
		item.DailyDrawdown = *req.DailyDrawdown
	}
	if req.MaxDrawdown != nil {
		item.MaxDrawdown = *req.MaxDrawdown
	}
	if req.ProfitSplit != nil {
		item.ProfitSplit = *req.ProfitSplit
	}
	if req.EvaluationRequired != nil {
		item.EvaluationRequired = *req.EvaluationRequired
	}
	if req.ProgramVariant != nil {
		item.ProgramVariant = req.ProgramVariant
	}
	if req.ProgramName != nil {
		item.ProgramName = req.ProgramName
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	// Preloaded children must not be written back as part of the save.
	item.EvaluationStages = nil
	item.Commissions = nil
	item.Coupons = nil
	if err := h.Repo.SaveAccountType(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Account type updated", gin.H{"account_type": item})
}

// @Summary Delete an account type without dependents
// @Tags prop
// @Param id path string true "account type id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/prop/account-types/{id} [delete]
func (h *PropHandler) removeAccountType(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetAccountType(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Account type not found", nil)
		return
	}
	counts, err := h.Repo.CountAccountTypeDependents(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	var total int64
	for _, n := range counts {
		total += n
	}
	if total > 0 {
		Error(c, http.StatusBadRequest, "Cannot delete account type with existing records", gin.H{
			"associations": counts,
		})
		return
	}
	if err := h.Repo.DeleteAccountType(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Account type deleted", nil)
}

// Evaluation stages.

// @Summary List evaluation stages
// @Tags prop
// @Param account_type_id query string false "filter by account type"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/prop/evaluation-stages [get]
func (h *PropHandler) listStages(c *gin.Context) {
	accountTypeID, ok := uuidQuery(c, "account_type_id")
	if !ok {
		return
	}
	items, err := h.Repo.ListEvaluationStages(c.Request.Context(), accountTypeID)
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"evaluation_stages": items, "count": len(items)})
}

type createStageRequest struct {
	AccountTypeID  string          `json:"account_type_id" binding:"required,uuid"`
	StageNumber    int             `json:"stage_number" binding:"required"`
	ProfitTarget   decimal.Decimal `json:"profit_target"`
	MaxDailyLoss   decimal.Decimal `json:"max_daily_loss"`
	MaxTotalLoss   decimal.Decimal `json:"max_total_loss"`
	MinTradingDays int             `json:"min_trading_days"`
}

// @Summary Create an evaluation stage
// @Tags prop
// @Param request body createStageRequest true "stage fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/prop/evaluation-stages [post]
func (h *PropHandler) createStage(c *gin.Context) {
	var req createStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "account_type_id and stage_number are required", nil)
		return
	}
	accountTypeID := mustUUID(req.AccountTypeID)
	parent, err := h.Repo.GetAccountType(c.Request.Context(), accountTypeID)
	if err != nil {
		serverError(c, err)
		return
	}
	if parent == nil {
		Error(c, http.StatusNotFound, "Account type not found", nil)
		return
	}
	item := models.EvaluationStage{
		AccountTypeID:  accountTypeID,
		StageNumber:    req.StageNumber,
		ProfitTarget:   req.ProfitTarget,
		MaxDailyLoss:   req.MaxDailyLoss,
		MaxTotalLoss:   req.MaxTotalLoss,
		MinTradingDays: req.MinTradingDays,
	}
	if err := h.Repo.CreateEvaluationStage(c.Request.Context(), &item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusCreated, "Evaluation stage created", gin.H{"evaluation_stage": item})
}

type updateStageRequest struct {
	StageNumber    *int             `json:"stage_number"`
	ProfitTarget   *decimal.Decimal `json:"profit_target"`
	MaxDailyLoss   *decimal.Decimal `json:"max_daily_loss"`
	MaxTotalLoss   *decimal.Decimal `json:"max_total_loss"`
	MinTradingDays *int             `json:"min_trading_days"`
}

// @Summary Update an evaluation stage
// @Tags prop
// @Param id path string true "stage id"
// @Param request body updateStageRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/prop/evaluation-stages/{id} [put]
func (h *PropHandler) updateStage(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetEvaluationStage(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Evaluation stage not found", nil)
		return
	}
	var req updateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.StageNumber != nil {
		item.StageNumber = *req.StageNumber
	}
	if req.ProfitTarget != nil {
		item.ProfitTarget = *req.ProfitTarget
	}
	if req.MaxDailyLoss != nil {
		item.MaxDailyLoss = *req.MaxDailyLoss
	}
	if req.MaxTotalLoss != nil {
		item.MaxTotalLoss = *req.MaxTotalLoss
	}
	if req.MinTradingDays != nil {
		item.MinTradingDays = *req.MinTradingDays
	}
	if err := h.Repo.SaveEvaluationStage(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Evaluation stage updated", gin.H{"evaluation_stage": item})
}

// @Summary Delete an evaluation stage
// @Tags prop
// @Param id path string true "stage id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/prop/evaluation-stages/{id} [delete]
func (h *PropHandler) removeStage(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetEvaluationStage(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Evaluation stage not found", nil)
		return
	}
	if err := h.Repo.DeleteEvaluationStage(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Evaluation stage deleted", nil)
}
