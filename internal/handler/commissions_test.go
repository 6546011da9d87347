package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"propdir/internal/models"
)

func TestCreateCommissionTypeAllowList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	accountTypeID := uuid.New()
	repo := &stubRepo{
		accountTypes: map[uuid.UUID]*models.AccountType{accountTypeID: {ID: accountTypeID}},
	}
	h := &CommissionHandler{Repo: repo}
	r := gin.New()
	h.Register(r)

	w := postJSON(r, "/commissions", `{"account_type_id":"`+accountTypeID.String()+`","asset_name":"ES","commission_type":"per_trade"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown commission_type: status = %d, want 400", w.Code)
	}
	if len(repo.createdCommissions) != 0 {
		t.Fatalf("unknown commission_type must not create a commission")
	}

	w = postJSON(r, "/commissions", `{"account_type_id":"`+accountTypeID.String()+`","asset_name":"ES","commission_type":"per_lot"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("per_lot: status = %d, want 201: %s", w.Code, w.Body.String())
	}

	// Omitting the type defaults it to none.
	w = postJSON(r, "/commissions", `{"account_type_id":"`+accountTypeID.String()+`","asset_name":"NQ"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("default type: status = %d, want 201: %s", w.Code, w.Body.String())
	}
	last := repo.createdCommissions[len(repo.createdCommissions)-1]
	if last.CommissionType != models.CommissionTypeNone {
		t.Fatalf("commission_type = %q, want none", last.CommissionType)
	}
}

func TestCreateCommissionExactlyOneParent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &CommissionHandler{Repo: &stubRepo{}}
	r := gin.New()
	h.Register(r)

	w := postJSON(r, "/commissions", `{"asset_name":"ES"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("no parent: status = %d, want 400", w.Code)
	}

	w = postJSON(r, "/commissions", `{"asset_name":"ES","account_type_id":"`+uuid.NewString()+`","futures_program_id":"`+uuid.NewString()+`"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("both parents: status = %d, want 400", w.Code)
	}
}
