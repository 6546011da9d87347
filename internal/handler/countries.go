package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"propdir/internal/models"
	"propdir/internal/repository"
)

type CountryHandler struct {
	Repo repository.Repository
}

func (h *CountryHandler) Register(r gin.IRouter) {
	group := r.Group("/countries")
	group.GET("", h.list)
	group.POST("", h.create)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.remove)
}

// @Summary List countries
// @Tags countries
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/countries [get]
func (h *CountryHandler) list(c *gin.Context) {
	items, err := h.Repo.ListCountries(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"countries": items, "count": len(items)})
}

type countryRequest struct {
	Name    *string `json:"name"`
	Code    *string `json:"code"`
	FlagURL *string `json:"flag_url"`
}

// @Summary Create a country
// @Tags countries
// @Param request body countryRequest true "country fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/countries [post]
func (h *CountryHandler) create(c *gin.Context) {
	var req countryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil || req.Code == nil {
		Error(c, http.StatusBadRequest, "Name and code are required", nil)
		return
	}
	item := models.Country{
		Name:    *req.Name,
		Code:    strings.ToUpper(*req.Code),
		FlagURL: req.FlagURL,
	}
	if err := h.Repo.CreateCountry(c.Request.Context(), &item); err != nil {
		createError(c, err, "A country with this name or code already exists")
		return
	}
	Ok(c, http.StatusCreated, "Country created", gin.H{"country": item})
}

// @Summary Update a country
// @Tags countries
// @Param id path string true "country id"
// @Param request body countryRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/countries/{id} [put]
func (h *CountryHandler) update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetCountry(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Country not found", nil)
		return
	}
	var req countryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Code != nil {
		item.Code = strings.ToUpper(*req.Code)
	}
	if req.FlagURL != nil {
		item.FlagURL = req.FlagURL
	}
	if err := h.Repo.SaveCountry(c.Request.Context(), item); err != nil {
		createError(c, err, "A country with this name or code already exists")
		return
	}
	Ok(c, http.StatusOK, "Country updated", gin.H{"country": item})
}

// @Summary Delete an unreferenced country
// @Tags countries
// @Param id path string true "country id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/countries/{id} [delete]
func (h *CountryHandler) remove(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetCountry(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Country not found", nil)
		return
	}
	n, err := h.Repo.CountFirmsByCountry(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if n > 0 {
		Error(c, http.StatusBadRequest, "Cannot delete country referenced by firms", gin.H{
			"firm_count": n,
		})
		return
	}
	if err := h.Repo.DeleteCountry(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Country deleted", nil)
}
