package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"propdir/internal/models"
	"propdir/internal/repository"
)

type CommissionHandler struct {
	Repo repository.Repository
}

func (h *CommissionHandler) Register(r gin.IRouter) {
	group := r.Group("/commissions")
	group.GET("", h.list)
	group.POST("", h.create)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.remove)
}

// @Summary List commissions
// @Tags commissions
// @Param account_type_id query string false "filter by account type"
// @Param futures_program_id query string false "filter by futures program"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/commissions [get]
func (h *CommissionHandler) list(c *gin.Context) {
	accountTypeID, ok := uuidQuery(c, "account_type_id")
	if !ok {
		return
	}
	programID, ok := uuidQuery(c, "futures_program_id")
	if !ok {
		return
	}
	items, err := h.Repo.ListCommissions(c.Request.Context(), repository.ListCommissionsParams{
		AccountTypeID:    accountTypeID,
		FuturesProgramID: programID,
	})
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"commissions": items, "count": len(items)})
}

type createCommissionRequest struct {
	AccountTypeID    *uuid.UUID       `json:"account_type_id"`
	FuturesProgramID *uuid.UUID       `json:"futures_program_id"`
	AssetName        string           `json:"asset_name" binding:"required"`
	CommissionType   *string          `json:"commission_type" binding:"omitempty,oneof=per_lot percentage fixed none"`
	CommissionValue  *decimal.Decimal `json:"commission_value"`
	CommissionText   *string          `json:"commission_text"`
	Notes            *string          `json:"notes"`
}

// create enforces the exactly-one-parent rule: a commission belongs to
// either an account type or a futures program, never both, never neither.
//
// @Summary Create a commission
// @Tags commissions
// @Param request body createCommissionRequest true "commission fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/commissions [post]
func (h *CommissionHandler) create(c *gin.Context) {
	var req createCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "asset_name and a valid commission_type are required", nil)
		return
	}
	if (req.AccountTypeID == nil) == (req.FuturesProgramID == nil) {
		Error(c, http.StatusBadRequest, "Exactly one of account_type_id and futures_program_id is required", nil)
		return
	}
	if req.AccountTypeID != nil {
		parent, err := h.Repo.GetAccountType(c.Request.Context(), *req.AccountTypeID)
		if err != nil {
			serverError(c, err)
			return
		}
		if parent == nil {
			Error(c, http.StatusNotFound, "Account type not found", nil)
			return
		}
	} else {
		parent, err := h.Repo.GetFuturesProgram(c.Request.Context(), *req.FuturesProgramID)
		if err != nil {
			serverError(c, err)
			return
		}
		if parent == nil {
			Error(c, http.StatusNotFound, "Program not found", nil)
			return
		}
	}

	item := models.Commission{
		AccountTypeID:    req.AccountTypeID,
		FuturesProgramID: req.FuturesProgramID,
		AssetName:        req.AssetName,
		CommissionType:   models.CommissionTypeNone,
		CommissionValue:  req.CommissionValue,
		CommissionText:   req.CommissionText,
		Notes:            req.Notes,
	}
	if req.CommissionType != nil {
		item.CommissionType = *req.CommissionType
	}
	if err := h.Repo.CreateCommission(c.Request.Context(), &item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusCreated, "Commission created", gin.H{"commission": item})
}

type updateCommissionRequest struct {
	AssetName       *string          `json:"asset_name"`
	CommissionType  *string          `json:"commission_type" binding:"omitempty,oneof=per_lot percentage fixed none"`
	CommissionValue *decimal.Decimal `json:"commission_value"`
	CommissionText  *string          `json:"commission_text"`
	Notes           *string          `json:"notes"`
}

// @Summary Update a commission
// @Tags commissions
// @Param id path string true "commission id"
// @Param request body updateCommissionRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/commissions/{id} [put]
func (h *CommissionHandler) update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetCommission(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Commission not found", nil)
		return
	}
	var req updateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.AssetName != nil {
		item.AssetName = *req.AssetName
	}
	if req.CommissionType != nil {
		item.CommissionType = *req.CommissionType
	}
	if req.CommissionValue != nil {
		item.CommissionValue = req.CommissionValue
	}
	if req.CommissionText != nil {
		item.CommissionText = req.CommissionText
	}
	if req.Notes != nil {
		item.Notes = req.Notes
	}
	if err := h.Repo.SaveCommission(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Commission updated", gin.H{"commission": item})
}

// @Summary Delete a commission
// @Tags commissions
// @Param id path string true "commission id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/commissions/{id} [delete]
func (h *CommissionHandler) remove(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetCommission(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Commission not found", nil)
		return
	}
	if err := h.Repo.DeleteCommission(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Commission deleted", nil)
}
