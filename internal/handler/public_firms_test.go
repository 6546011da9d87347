package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"propdir/internal/models"
	"propdir/internal/repository"
)

func TestResolveOrderPresets(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		sortBy string
		order  string
		want   []repository.OrderClause
	}{
		{
			name:   "top_rated",
			filter: "top_rated",
			want: []repository.OrderClause{
				{Column: "rating", Desc: true},
				{Column: "review_count", Desc: true},
			},
		},
		{
			name:   "most_reviewed",
			filter: "most_reviewed",
			want: []repository.OrderClause{
				{Column: "review_count", Desc: true},
				{Column: "rating", Desc: true},
			},
		},
		{
			name:   "newest",
			filter: "newest",
			want:   []repository.OrderClause{{Column: "created_at", Desc: true}},
		},
		{
			// The filter wins even when sort parameters are present.
			name:   "filter overrides sort_by",
			filter: "newest",
			sortBy: "name",
			order:  "asc",
			want:   []repository.OrderClause{{Column: "created_at", Desc: true}},
		},
		{
			name:   "allow-listed sort",
			sortBy: "founded_year",
			order:  "desc",
			want:   []repository.OrderClause{{Column: "founded_year", Desc: true}},
		},
		{
			name:   "unknown sort falls back to name",
			sortBy: "password_hash",
			want:   []repository.OrderClause{{Column: "name"}},
		},
		{
			name: "defaults to name asc",
			want: []repository.OrderClause{{Column: "name"}},
		},
		{
			// Sort parameters are never consulted once a filter is present.
			name:   "unknown filter yields the default order",
			filter: "bogus",
			sortBy: "rating",
			order:  "desc",
			want:   []repository.OrderClause{{Column: "name"}},
		},
	}
	for _, tt := range tests {
		got := resolveOrder(tt.filter, tt.sortBy, tt.order)
		if len(got) != len(tt.want) {
			t.Fatalf("%s: got %d clauses, want %d", tt.name, len(got), len(tt.want))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("%s: clause %d = %+v, want %+v", tt.name, i, got[i], tt.want[i])
			}
		}
	}
}

func TestListPublicFirms(t *testing.T) {
	gin.SetMode(gin.TestMode)
	year := 2020
	repo := &stubRepo{
		listedFirms: []models.Firm{
			{Name: "Alpha Funded", FirmType: models.FirmTypeProp, FoundedYear: &year},
			{Name: "Delta Futures", FirmType: models.FirmTypeFutures},
		},
	}
	h := &PublicFirmHandler{Repo: repo}
	r := gin.New()
	h.Register(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/firms?filter=top_rated", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	if !repo.lastParams.ActiveOnly || !repo.lastParams.PreloadAssociations {
		t.Fatalf("public listing must be active-only with preloads: %+v", repo.lastParams)
	}
	if len(repo.lastParams.OrderClauses) != 2 || repo.lastParams.OrderClauses[0].Column != "rating" {
		t.Fatalf("preset not applied: %+v", repo.lastParams.OrderClauses)
	}

	var body struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Firms   []struct {
			Name            string `json:"name"`
			YearsInBusiness *int   `json:"years_in_business"`
		} `json:"firms"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body.Success || body.Count != 2 {
		t.Fatalf("envelope wrong: %+v", body)
	}
	if body.Firms[0].YearsInBusiness == nil {
		t.Fatalf("years_in_business missing for firm with founded_year")
	}
	if body.Firms[1].YearsInBusiness != nil {
		t.Fatalf("years_in_business must be null without founded_year")
	}
}

func TestListPublicFirmsBadType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &PublicFirmHandler{Repo: &stubRepo{}}
	r := gin.New()
	h.Register(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/firms?firm_type=hedge_fund", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
