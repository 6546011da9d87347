package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"propdir/internal/models"
)

func TestDeleteFirmBlockedByDependents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := uuid.New()
	repo := &stubRepo{
		firms: map[uuid.UUID]*models.Firm{id: {ID: id, Name: "Alpha Funded"}},
		firmDependents: map[string]int64{
			"account_types":    3,
			"futures_programs": 0,
			"rules":            1,
			"payout_policies":  0,
			"coupons":          2,
		},
	}
	h := &FirmHandler{Repo: repo}
	r := gin.New()
	h.Register(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/firms/"+id.String(), nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body struct {
		Success      bool             `json:"success"`
		Associations map[string]int64 `json:"associations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Success {
		t.Fatalf("blocked delete must report success=false")
	}
	if body.Associations["account_types"] != 3 || body.Associations["rules"] != 1 {
		t.Fatalf("association counts missing: %v", body.Associations)
	}
	if body.Associations["coupons"] != 2 {
		t.Fatalf("coupon assignments must block deletion: %v", body.Associations)
	}
	if len(repo.deletedFirms) != 0 {
		t.Fatalf("guard must not delete anything")
	}
}

func TestDeleteFirmNoDependents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := uuid.New()
	repo := &stubRepo{
		firms:          map[uuid.UUID]*models.Firm{id: {ID: id}},
		firmDependents: map[string]int64{},
	}
	h := &FirmHandler{Repo: repo}
	r := gin.New()
	h.Register(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/firms/"+id.String(), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(repo.deletedFirms) != 1 || repo.deletedFirms[0] != id {
		t.Fatalf("firm not deleted: %v", repo.deletedFirms)
	}
}

func TestDeleteFirmNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubRepo{firms: map[uuid.UUID]*models.Firm{}}
	h := &FirmHandler{Repo: repo}
	r := gin.New()
	h.Register(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/firms/"+uuid.NewString(), nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteFirmBadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &FirmHandler{Repo: &stubRepo{}}
	r := gin.New()
	h.Register(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/firms/not-a-uuid", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateFirmRequestFields(t *testing.T) {
	raw := `{"name":"New Name","logo_url":null,"review_count":7,"broker_ids":[]}`
	var req updateFirmRequest
	if err := json.NewDecoder(strings.NewReader(raw)).Decode(&req); err != nil {
		t.Fatalf("decode: %v", err)
	}

	fields := req.fields()
	if fields["name"] != "New Name" {
		t.Fatalf("name not collected: %v", fields)
	}
	if fields["review_count"] != 7 {
		t.Fatalf("review_count not collected: %v", fields)
	}
	// Omitted and explicit-null scalars both stay out of the update set.
	if _, ok := fields["slug"]; ok {
		t.Fatalf("omitted slug must not be updated")
	}
	if _, ok := fields["logo_url"]; ok {
		t.Fatalf("null logo_url must not be updated")
	}

	// Empty array clears the relation; omission leaves it alone.
	if req.BrokerIDs == nil || len(*req.BrokerIDs) != 0 {
		t.Fatalf("empty broker_ids must decode to an empty slice")
	}
	if req.TradingPlatformIDs != nil {
		t.Fatalf("omitted trading_platform_ids must stay nil")
	}
}
