package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"propdir/internal/models"
	"propdir/internal/repository"
)

// RuleHandler serves firm rules and payout policies. Both are plain
// children of a firm; deleting them needs no guard.
type RuleHandler struct {
	Repo repository.Repository
}

func (h *RuleHandler) Register(r gin.IRouter) {
	rules := r.Group("/rules")
	rules.GET("", h.listRules)
	rules.POST("", h.createRule)
	rules.PUT("/:id", h.updateRule)
	rules.DELETE("/:id", h.removeRule)

	policies := r.Group("/payout-policies")
	policies.GET("", h.listPolicies)
	policies.POST("", h.createPolicy)
	policies.PUT("/:id", h.updatePolicy)
	policies.DELETE("/:id", h.removePolicy)
}

// Rules.

// @Summary List trading rules
// @Tags rules
// @Param firm_id query string false "filter by firm"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/rules [get]
func (h *RuleHandler) listRules(c *gin.Context) {
	firmID, ok := uuidQuery(c, "firm_id")
	if !ok {
		return
	}
	items, err := h.Repo.ListRules(c.Request.Context(), firmID)
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"rules": items, "count": len(items)})
}

type createRuleRequest struct {
	FirmID      string  `json:"firm_id" binding:"required,uuid"`
	Category    string  `json:"category" binding:"required,oneof=trading risk consistency payout"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

// @Summary Create a trading rule
// @Tags rules
// @Param request body createRuleRequest true "rule fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/rules [post]
func (h *RuleHandler) createRule(c *gin.Context) {
	var req createRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "firm_id, title and a valid category are required", nil)
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
	item := models.Rule{
		FirmID:      firmID,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.Repo.CreateRule(c.Request.Context(), &item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusCreated, "Rule created", gin.H{"rule": item})
}

type updateRuleRequest struct {
	Category    *string `json:"category" binding:"omitempty,oneof=trading risk consistency payout"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// @Summary Update a trading rule
// @Tags rules
// @Param id path string true "rule id"
// @Param request body updateRuleRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/rules/{id} [put]
func (h *RuleHandler) updateRule(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetRule(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Rule not found", nil)
		return
	}
	var req updateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if err := h.Repo.SaveRule(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Rule updated", gin.H{"rule": item})
}

// @Summary Delete a trading rule
// @Tags rules
// @Param id path string true "rule id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/rules/{id} [delete]
func (h *RuleHandler) removeRule(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetRule(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Rule not found", nil)
		return
	}
	if err := h.Repo.DeleteRule(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Rule deleted", nil)
}

// Payout policies.

// @Summary List payout policies
// @Tags payout-policies
// @Param firm_id query string false "filter by firm"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/payout-policies [get]
func (h *RuleHandler) listPolicies(c *gin.Context) {
	firmID, ok := uuidQuery(c, "firm_id")
	if !ok {
		return
	}
	items, err := h.Repo.ListPayoutPolicies(c.Request.Context(), firmID)
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"payout_policies": items, "count": len(items)})
}

type createPolicyRequest struct {
	FirmID             string          `json:"firm_id" binding:"required,uuid"`
	PayoutFrequency    string          `json:"payout_frequency" binding:"required"`
	FirstPayoutDays    int             `json:"first_payout_days"`
	ProfitSplitInitial decimal.Decimal `json:"profit_split_initial"`
	ProfitSplitMax     decimal.Decimal `json:"profit_split_max"`
	Notes              *string         `json:"notes"`
	ProgramType        *string         `json:"program_type"`
}

// @Summary Create a payout policy
// @Tags payout-policies
// @Param request body createPolicyRequest true "policy fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/payout-policies [post]
func (h *RuleHandler) createPolicy(c *gin.Context) {
	var req createPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "firm_id and payout_frequency are required", nil)
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
	item := models.PayoutPolicy{
		FirmID:             firmID,
		PayoutFrequency:    req.PayoutFrequency,
		FirstPayoutDays:    req.FirstPayoutDays,
		ProfitSplitInitial: req.ProfitSplitInitial,
		ProfitSplitMax:     req.ProfitSplitMax,
		Notes:              req.Notes,
		ProgramType:        req.ProgramType,
	}
	if err := h.Repo.CreatePayoutPolicy(c.Request.Context(), &item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusCreated, "Payout policy created", gin.H{"payout_policy": item})
}

type updatePolicyRequest struct {
	PayoutFrequency    *string          `json:"payout_frequency"`
	FirstPayoutDays    *int             `json:"first_payout_days"`
	ProfitSplitInitial *decimal.Decimal `json:"profit_split_initial"`
	ProfitSplitMax     *decimal.Decimal `json:"profit_split_max"`
	Notes              *string          `json:"notes"`
	ProgramType        *string          `json:"program_type"`
}

// @Summary Update a payout policy
// @Tags payout-policies
// @Param id path string true "policy id"
// @Param request body updatePolicyRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/payout-policies/{id} [put]
func (h *RuleHandler) updatePolicy(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetPayoutPolicy(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Payout policy not found", nil)
		return
	}
	var req updatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.PayoutFrequency != nil {
		item.PayoutFrequency = *req.PayoutFrequency
	}
	if req.FirstPayoutDays != nil {
		item.FirstPayoutDays = *req.FirstPayoutDays
	}
	if req.ProfitSplitInitial != nil {
		item.ProfitSplitInitial = *req.ProfitSplitInitial
	}
	if req.ProfitSplitMax != nil {
		item.ProfitSplitMax = *req.ProfitSplitMax
	}
	if req.Notes != nil {
		item.Notes = req.Notes
	}
	if req.ProgramType != nil {
		item.ProgramType = req.ProgramType
	}
	if err := h.Repo.SavePayoutPolicy(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Payout policy updated", gin.H{"payout_policy": item})
}

// @Summary Delete a payout policy
// @Tags payout-policies
// @Param id path string true "policy id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/payout-policies/{id} [delete]
func (h *RuleHandler) removePolicy(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetPayoutPolicy(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Payout policy not found", nil)
		return
	}
	if err := h.Repo.DeletePayoutPolicy(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Payout policy deleted", nil)
}
