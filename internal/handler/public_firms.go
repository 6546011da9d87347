package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"propdir/internal/models"
	"propdir/internal/repository"
	"propdir/internal/service"
)

type PublicFirmHandler struct {
	Repo   repository.Repository
	Detail *service.FirmDetailService
}

func (h *PublicFirmHandler) Register(r gin.IRouter) {
	group := r.Group("/api/v1/firms")
	group.GET("", h.listFirms)
	group.GET("/:slug", h.getFirm)
}

// sortColumns is the allow-list for the sort_by query parameter.
var sortColumns = map[string]string{
	"name":           "name",
	"rating":         "rating",
	"review_count":   "review_count",
	"founded_year":   "founded_year",
	"max_allocation": "max_allocation",
	"created_at":     "created_at",
}

// presetOrders back the filter query parameter. A present filter always
// wins over sort_by; an unrecognized value yields the default name
// ordering.
var presetOrders = map[string][]repository.OrderClause{
	"top_rated": {
		{Column: "rating", Desc: true},
		{Column: "review_count", Desc: true},
	},
	"most_reviewed": {
		{Column: "review_count", Desc: true},
		{Column: "rating", Desc: true},
	},
	"newest": {
		{Column: "created_at", Desc: true},
	},
}

var defaultOrder = []repository.OrderClause{{Column: "name"}}

func resolveOrder(filter, sortBy, order string) []repository.OrderClause {
	if filter != "" {
		if clauses, ok := presetOrders[filter]; ok {
			return clauses
		}
		return defaultOrder
	}
	col, ok := sortColumns[sortBy]
	if !ok {
		col = "name"
	}
	return []repository.OrderClause{{Column: col, Desc: strings.EqualFold(order, "desc")}}
}

type publicFirm struct {
	models.Firm
	YearsInBusiness *int `json:"years_in_business"`
}

// listFirms serves the public catalog: active firms only, optional type
// filter, preset or allow-listed column ordering.
//
// @Summary List active firms
// @Tags public
// @Param firm_type query string false "prop|futures"
// @Param filter query string false "top_rated|most_reviewed|newest"
// @Param sort_by query string false "sort column"
// @Param order query string false "asc|desc"
// @Success 200 {object} map[string]any
// @Router /api/v1/firms [get]
func (h *PublicFirmHandler) listFirms(c *gin.Context) {
	params := repository.ListFirmsParams{
		ActiveOnly:          true,
		PreloadAssociations: true,
		OrderClauses:        resolveOrder(c.Query("filter"), c.Query("sort_by"), c.Query("order")),
	}
	if t := strings.TrimSpace(c.Query("firm_type")); t != "" {
		if t != models.FirmTypeProp && t != models.FirmTypeFutures {
			Error(c, http.StatusBadRequest, "Invalid firm_type", nil)
			return
		}
		params.FirmType = &t
	}

	firms, err := h.Repo.ListFirms(c.Request.Context(), params)
	if err != nil {
		serverError(c, err)
		return
	}

	now := time.Now()
	out := make([]publicFirm, 0, len(firms))
	for _, f := range firms {
		out = append(out, publicFirm{
			Firm:            f,
			YearsInBusiness: service.YearsInBusiness(f.FoundedYear, now),
		})
	}
	Ok(c, http.StatusOK, "", gin.H{"firms": out, "count": len(out)})
}

// @Summary Get a firm by slug
// @Tags public
// @Param slug path string true "firm slug"
// @Success 200 {object} map[string]any
// @Router /api/v1/firms/{slug} [get]
func (h *PublicFirmHandler) getFirm(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		Error(c, http.StatusBadRequest, "Slug required", nil)
		return
	}
	detail, err := h.Detail.BySlug(c.Request.Context(), slug, true)
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
