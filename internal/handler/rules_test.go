package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"propdir/internal/models"
)

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRuleCategoryAllowList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	firmID := uuid.New()
	repo := &stubRepo{firms: map[uuid.UUID]*models.Firm{firmID: {ID: firmID}}}
	h := &RuleHandler{Repo: repo}
	r := gin.New()
	h.Register(r)

	w := postJSON(r, "/rules", `{"firm_id":"`+firmID.String()+`","category":"vibes","title":"No news trading"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown category: status = %d, want 400", w.Code)
	}
	if len(repo.createdRules) != 0 {
		t.Fatalf("unknown category must not create a rule")
	}

	for _, category := range []string{"trading", "risk", "consistency", "payout"} {
		w := postJSON(r, "/rules", `{"firm_id":"`+firmID.String()+`","category":"`+category+`","title":"t"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("category %q: status = %d, want 201: %s", category, w.Code, w.Body.String())
		}
	}
	if len(repo.createdRules) != 4 {
		t.Fatalf("created %d rules, want 4", len(repo.createdRules))
	}
}
