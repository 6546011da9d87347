// Package service holds the read-model assembly and other logic that sits
// between the HTTP handlers and the repository.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"propdir/internal/models"
	"propdir/internal/repository"
)

// FirmDetail is the composite read model served by the firm detail
// endpoints. Outer fields shadow the embedded firm relations so the
// computed views replace the raw ones in the payload.
type FirmDetail struct {
	models.Firm
	YearsInBusiness  *int                `json:"years_in_business"`
	TradingRules     []models.Rule       `json:"trading_rules"`
	ConsistencyRules []models.Rule       `json:"consistency_rules"`
	PayoutPolicies   []PayoutPolicyGroup `json:"payout_policies"`
	Coupons          []models.Coupon     `json:"coupons"`

	// Populated for futures firms.
	FuturesExchanges []models.FuturesExchange `json:"futures_exchanges,omitempty"`
	FuturesPrograms  []models.FuturesProgram  `json:"futures_programs,omitempty"`
	InstrumentTypes  []models.InstrumentType  `json:"instrument_types,omitempty"`

	// Populated for prop firms.
	Assets       []models.Asset       `json:"assets,omitempty"`
	AccountTypes []models.AccountType `json:"account_types,omitempty"`
}

// PayoutPolicyGroup buckets a firm's payout policies by program type,
// preserving the order in which each type was first seen.
type PayoutPolicyGroup struct {
	ProgramType string                `json:"program_type"`
	Policies    []models.PayoutPolicy `json:"policies"`
}

const generalProgramType = "General"

type FirmDetailService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewFirmDetailService(repo repository.Repository) *FirmDetailService {
	return &FirmDetailService{repo: repo, now: time.Now}
}

// Get assembles the detail view for one firm. With publicOnly set the
// lookup is restricted to active firms and active relation rows. Coupons
// outside their validity window are dropped in both modes. A nil result
// with a nil error means the firm was not found.
func (s *FirmDetailService) Get(ctx context.Context, ref repository.FirmRef, publicOnly bool) (*FirmDetail, error) {
	firm, err := s.repo.GetFirmDetail(ctx, ref, publicOnly)
	if err != nil {
		return nil, err
	}
	if firm == nil {
		return nil, nil
	}

	now := s.now()
	trading, consistency := PartitionRules(firm.Rules)
	detail := &FirmDetail{
		Firm:             *firm,
		YearsInBusiness:  YearsInBusiness(firm.FoundedYear, now),
		TradingRules:     trading,
		ConsistencyRules: consistency,
		PayoutPolicies:   GroupPayoutPolicies(firm.PayoutPolicies),
		Coupons:          VisibleCoupons(firm.Coupons, now),
	}

	// The raw relations are replaced by the computed views above.
	detail.Firm.Rules = nil
	detail.Firm.PayoutPolicies = nil
	detail.Firm.Coupons = nil

	switch firm.FirmType {
	case models.FirmTypeFutures:
		if detail.FuturesExchanges, err = s.repo.ListFuturesExchangesByFirm(ctx, firm.ID); err != nil {
			return nil, err
		}
		if detail.FuturesPrograms, err = s.repo.ListFuturesProgramsByFirm(ctx, firm.ID); err != nil {
			return nil, err
		}
		if detail.InstrumentTypes, err = s.repo.ListInstrumentTypes(ctx); err != nil {
			return nil, err
		}
	default:
		if detail.Assets, err = s.repo.ListAssetsByFirm(ctx, firm.ID); err != nil {
			return nil, err
		}
		if detail.AccountTypes, err = s.repo.ListAccountTypesByFirm(ctx, firm.ID); err != nil {
			return nil, err
		}
	}

	return detail, nil
}

func (s *FirmDetailService) ByID(ctx context.Context, id uuid.UUID, publicOnly bool) (*FirmDetail, error) {
	return s.Get(ctx, repository.FirmByID(id), publicOnly)
}

func (s *FirmDetailService) BySlug(ctx context.Context, slug string, publicOnly bool) (*FirmDetail, error) {
	return s.Get(ctx, repository.FirmBySlug(slug), publicOnly)
}

// CouponVisible reports whether a coupon should appear on a public page
// at the given instant. The start bound is inclusive, the end bound
// exclusive.
func CouponVisible(c models.Coupon, now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.StartDate != nil && c.StartDate.After(now) {
		return false
	}
	if c.EndDate != nil && !c.EndDate.After(now) {
		return false
	}
	return true
}

// VisibleCoupons filters to window-visible coupons. The same window
// applies to admin and public detail views; only the coupon management
// listing shows every coupon.
func VisibleCoupons(coupons []models.Coupon, now time.Time) []models.Coupon {
	out := make([]models.Coupon, 0, len(coupons))
	for _, c := range coupons {
		if CouponVisible(c, now) {
			out = append(out, c)
		}
	}
	return out
}

// PartitionRules splits a firm's rules into the consistency bucket and
// everything else, keeping relative order within each bucket.
func PartitionRules(rules []models.Rule) (trading, consistency []models.Rule) {
	trading = make([]models.Rule, 0, len(rules))
	consistency = make([]models.Rule, 0)
	for _, r := range rules {
		if r.Category == models.RuleCategoryConsistency {
			consistency = append(consistency, r)
		} else {
			trading = append(trading, r)
		}
	}
	return trading, consistency
}

// GroupPayoutPolicies buckets policies by program type in first-seen
// order. Policies without a program type fall under "General".
func GroupPayoutPolicies(policies []models.PayoutPolicy) []PayoutPolicyGroup {
	groups := make([]PayoutPolicyGroup, 0)
	index := map[string]int{}
	for _, p := range policies {
		key := generalProgramType
		if p.ProgramType != nil && *p.ProgramType != "" {
			key = *p.ProgramType
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, PayoutPolicyGroup{ProgramType: key})
		}
		groups[i].Policies = append(groups[i].Policies, p)
	}
	return groups
}

// YearsInBusiness derives firm age from the founded year. Unknown
// founded year yields nil.
func YearsInBusiness(foundedYear *int, now time.Time) *int {
	if foundedYear == nil {
		return nil
	}
	years := now.Year() - *foundedYear
	return &years
}
