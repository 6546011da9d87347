package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"propdir/internal/models"
	"propdir/internal/repository"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCouponVisible(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	tests := []struct {
		name   string
		coupon models.Coupon
		want   bool
	}{
		{"active no window", models.Coupon{IsActive: true}, true},
		{"inactive", models.Coupon{IsActive: false}, false},
		{"start in past", models.Coupon{IsActive: true, StartDate: &before}, true},
		{"start exactly now", models.Coupon{IsActive: true, StartDate: &now}, true},
		{"start in future", models.Coupon{IsActive: true, StartDate: &after}, false},
		{"end in future", models.Coupon{IsActive: true, EndDate: &after}, true},
		{"end exactly now", models.Coupon{IsActive: true, EndDate: &now}, false},
		{"end in past", models.Coupon{IsActive: true, EndDate: &before}, false},
		{"inside window", models.Coupon{IsActive: true, StartDate: &before, EndDate: &after}, true},
		{"inactive inside window", models.Coupon{IsActive: false, StartDate: &before, EndDate: &after}, false},
	}
	for _, tt := range tests {
		if got := CouponVisible(tt.coupon, now); got != tt.want {
			t.Fatalf("%s: CouponVisible = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestVisibleCouponsFiltersWindow(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	coupons := []models.Coupon{
		{Code: "LIVE", IsActive: true},
		{Code: "EXPIRED", IsActive: true, EndDate: &past},
		{Code: "OFF", IsActive: false},
	}

	got := VisibleCoupons(coupons, now)
	if len(got) != 1 || got[0].Code != "LIVE" {
		t.Fatalf("got %v, want only LIVE", got)
	}

	if empty := VisibleCoupons(nil, now); empty == nil || len(empty) != 0 {
		t.Fatalf("nil input must yield an empty non-nil slice")
	}
}

func TestPartitionRules(t *testing.T) {
	rules := []models.Rule{
		{Title: "a", Category: "trading"},
		{Title: "b", Category: "consistency"},
		{Title: "c", Category: "risk"},
		{Title: "d", Category: "consistency"},
		{Title: "e", Category: "payout"},
	}
	trading, consistency := PartitionRules(rules)
	if len(trading)+len(consistency) != len(rules) {
		t.Fatalf("partition lost rules: %d + %d != %d", len(trading), len(consistency), len(rules))
	}
	if len(consistency) != 2 || consistency[0].Title != "b" || consistency[1].Title != "d" {
		t.Fatalf("consistency bucket wrong: %v", consistency)
	}
	if len(trading) != 3 || trading[0].Title != "a" || trading[2].Title != "e" {
		t.Fatalf("trading bucket wrong: %v", trading)
	}
}

func TestPartitionRulesEmpty(t *testing.T) {
	trading, consistency := PartitionRules(nil)
	if trading == nil || consistency == nil {
		t.Fatalf("buckets must be non-nil for empty input")
	}
	if len(trading) != 0 || len(consistency) != 0 {
		t.Fatalf("buckets must be empty for empty input")
	}
}

func TestGroupPayoutPolicies(t *testing.T) {
	policies := []models.PayoutPolicy{
		{PayoutFrequency: "weekly", ProgramType: strPtr("Instant")},
		{PayoutFrequency: "biweekly"},
		{PayoutFrequency: "monthly", ProgramType: strPtr("Instant")},
		{PayoutFrequency: "daily", ProgramType: strPtr("")},
	}
	groups := GroupPayoutPolicies(policies)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	// First-seen order: Instant appeared before the General bucket.
	if groups[0].ProgramType != "Instant" || len(groups[0].Policies) != 2 {
		t.Fatalf("group 0 wrong: %+v", groups[0])
	}
	if groups[1].ProgramType != "General" || len(groups[1].Policies) != 2 {
		t.Fatalf("group 1 wrong: %+v", groups[1])
	}

	var total int
	for _, g := range groups {
		total += len(g.Policies)
	}
	if total != len(policies) {
		t.Fatalf("grouping lost policies: %d != %d", total, len(policies))
	}
}

func TestYearsInBusiness(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := YearsInBusiness(nil, now); got != nil {
		t.Fatalf("nil founded year must yield nil, got %v", *got)
	}
	if got := YearsInBusiness(intPtr(2020), now); got == nil || *got != 6 {
		t.Fatalf("YearsInBusiness(2020) = %v, want 6", got)
	}
	if got := YearsInBusiness(intPtr(2026), now); got == nil || *got != 0 {
		t.Fatalf("YearsInBusiness(current year) = %v, want 0", got)
	}
}

// detailStubRepo backs the assembler branch tests. Only the methods the
// assembler touches are implemented.
type detailStubRepo struct {
	repository.Repository

	firm             *models.Firm
	accountTypes     []models.AccountType
	futuresPrograms  []models.FuturesProgram
	futuresExchanges []models.FuturesExchange
	assets           []models.Asset
	instrumentTypes  []models.InstrumentType
}

func (s *detailStubRepo) GetFirmDetail(ctx context.Context, ref repository.FirmRef, publicOnly bool) (*models.Firm, error) {
	return s.firm, nil
}

func (s *detailStubRepo) ListAccountTypesByFirm(ctx context.Context, firmID uuid.UUID) ([]models.AccountType, error) {
	return s.accountTypes, nil
}

func (s *detailStubRepo) ListFuturesProgramsByFirm(ctx context.Context, firmID uuid.UUID) ([]models.FuturesProgram, error) {
	return s.futuresPrograms, nil
}

func (s *detailStubRepo) ListFuturesExchangesByFirm(ctx context.Context, firmID uuid.UUID) ([]models.FuturesExchange, error) {
	return s.futuresExchanges, nil
}

func (s *detailStubRepo) ListAssetsByFirm(ctx context.Context, firmID uuid.UUID) ([]models.Asset, error) {
	return s.assets, nil
}

func (s *detailStubRepo) ListInstrumentTypes(ctx context.Context) ([]models.InstrumentType, error) {
	return s.instrumentTypes, nil
}

func TestFirmDetailPropBranch(t *testing.T) {
	expired := time.Now().Add(-time.Hour)
	repo := &detailStubRepo{
		firm: &models.Firm{
			ID:          uuid.New(),
			Name:        "Alpha Funded",
			FirmType:    models.FirmTypeProp,
			FoundedYear: intPtr(2019),
			Rules: []models.Rule{
				{Title: "news", Category: "trading"},
				{Title: "steady", Category: "consistency"},
			},
			Coupons: []models.Coupon{
				{Code: "LIVE", IsActive: true},
				{Code: "EXPIRED", IsActive: true, EndDate: &expired},
			},
		},
		accountTypes: []models.AccountType{{Name: "25K"}, {Name: "50K"}},
		assets:       []models.Asset{{Name: "Forex"}},
		// Must not leak into a prop detail.
		futuresPrograms: []models.FuturesProgram{{Name: "nope"}},
		instrumentTypes: []models.InstrumentType{{Name: "nope"}},
	}
	svc := NewFirmDetailService(repo)

	detail, err := svc.ByID(context.Background(), repo.firm.ID, false)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if detail == nil {
		t.Fatalf("detail is nil")
	}
	if len(detail.AccountTypes) != 2 || len(detail.Assets) != 1 {
		t.Fatalf("prop subtrees wrong: %d account types, %d assets", len(detail.AccountTypes), len(detail.Assets))
	}
	if detail.FuturesPrograms != nil || detail.InstrumentTypes != nil {
		t.Fatalf("futures subtrees must be empty on a prop firm")
	}
	if len(detail.TradingRules) != 1 || len(detail.ConsistencyRules) != 1 {
		t.Fatalf("rule partition wrong: %d/%d", len(detail.TradingRules), len(detail.ConsistencyRules))
	}
	if detail.YearsInBusiness == nil {
		t.Fatalf("years_in_business missing")
	}
	if detail.Firm.Rules != nil {
		t.Fatalf("raw rules must be cleared from the embedded firm")
	}
	// The coupon window applies on the admin detail too.
	if len(detail.Coupons) != 1 || detail.Coupons[0].Code != "LIVE" {
		t.Fatalf("expired coupon leaked into the detail: %v", detail.Coupons)
	}
}

func TestFirmDetailFuturesBranch(t *testing.T) {
	repo := &detailStubRepo{
		firm: &models.Firm{
			ID:       uuid.New(),
			Name:     "Delta Futures",
			FirmType: models.FirmTypeFutures,
		},
		futuresPrograms:  []models.FuturesProgram{{Name: "50K Eval"}},
		futuresExchanges: []models.FuturesExchange{{Name: "CME", Code: "CME"}},
		instrumentTypes:  []models.InstrumentType{{Name: "Energy"}},
		accountTypes:     []models.AccountType{{Name: "nope"}},
	}
	svc := NewFirmDetailService(repo)

	detail, err := svc.ByID(context.Background(), repo.firm.ID, true)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if len(detail.FuturesPrograms) != 1 || len(detail.FuturesExchanges) != 1 || len(detail.InstrumentTypes) != 1 {
		t.Fatalf("futures subtrees wrong: %+v", detail)
	}
	if detail.AccountTypes != nil || detail.Assets != nil {
		t.Fatalf("prop subtrees must be empty on a futures firm")
	}
}

func TestFirmDetailNotFound(t *testing.T) {
	svc := NewFirmDetailService(&detailStubRepo{})
	detail, err := svc.BySlug(context.Background(), "missing", true)
	if err != nil {
		t.Fatalf("BySlug: %v", err)
	}
	if detail != nil {
		t.Fatalf("expected nil detail for missing firm")
	}
}
