package gormrepo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"propdir/internal/models"
	"propdir/internal/repository"
)

const activeOnlyCond = "is_active = true"

func (s *Store) ListFirms(ctx context.Context, params repository.ListFirmsParams) ([]models.Firm, error) {
	q := s.db.WithContext(ctx).Model(&models.Firm{})
	if params.ActiveOnly {
		q = q.Where(activeOnlyCond)
	}
	if params.FirmType != nil {
		q = q.Where("firm_type = ?", *params.FirmType)
	}
	if params.PreloadAssociations {
		for _, name := range []string{"TradingPlatforms", "Brokers", "PayoutMethods", "PaymentMethods"} {
			if params.ActiveOnly {
				q = q.Preload(name, activeOnlyCond)
			} else {
				q = q.Preload(name)
			}
		}
		// Assets are included unfiltered on the listing.
		q = q.Preload("Assets")
	}
	q = applyOrder(q, params.OrderClauses)

	var items []models.Firm
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetFirmByID(ctx context.Context, id uuid.UUID) (*models.Firm, error) {
	return firstOrNil[models.Firm](s.db.WithContext(ctx).Where("id = ?", id))
}

// GetFirmDetail loads a firm with its firm-type-agnostic relation sets.
// Type-specific subtrees (account types, futures programs, ...) are loaded
// separately so their ordering stays explicit.
func (s *Store) GetFirmDetail(ctx context.Context, ref repository.FirmRef, publicOnly bool) (*models.Firm, error) {
	q := s.db.WithContext(ctx).Model(&models.Firm{})
	switch {
	case ref.ID != nil:
		q = q.Where("id = ?", *ref.ID)
	case ref.Slug != nil:
		q = q.Where("slug = ?", *ref.Slug)
	default:
		return nil, gorm.ErrMissingWhereClause
	}
	if publicOnly {
		q = q.Where(activeOnlyCond)
	}
	for _, name := range []string{"TradingPlatforms", "Brokers", "PayoutMethods", "PaymentMethods"} {
		if publicOnly {
			q = q.Preload(name, activeOnlyCond)
		} else {
			q = q.Preload(name)
		}
	}
	q = q.
		Preload("RestrictedCountries").
		Preload("Rules").
		Preload("PayoutPolicies").
		Preload("Coupons")
	return firstOrNil[models.Firm](q)
}

func (s *Store) CreateFirm(ctx context.Context, item *models.Firm) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SaveFirm(ctx context.Context, item *models.Firm) error {
	return s.db.WithContext(ctx).Save(item).Error
}

type firmAssocSpec struct {
	name string
	ids  func(repository.FirmAssociations) *[]uuid.UUID
	load func(tx *gorm.DB, ids []uuid.UUID) (any, error)
}

// firmAssocTable maps each replaceable relation to its request field and
// row loader. UpdateFirm walks it so adding a relation is a single entry.
var firmAssocTable = []firmAssocSpec{
	{"TradingPlatforms", func(a repository.FirmAssociations) *[]uuid.UUID { return a.TradingPlatformIDs }, loadByIDs[models.TradingPlatform]},
	{"Brokers", func(a repository.FirmAssociations) *[]uuid.UUID { return a.BrokerIDs }, loadByIDs[models.Broker]},
	{"PayoutMethods", func(a repository.FirmAssociations) *[]uuid.UUID { return a.PayoutMethodIDs }, loadByIDs[models.PayoutMethod]},
	{"PaymentMethods", func(a repository.FirmAssociations) *[]uuid.UUID { return a.PaymentMethodIDs }, loadByIDs[models.PaymentMethod]},
	{"Assets", func(a repository.FirmAssociations) *[]uuid.UUID { return a.AssetIDs }, loadByIDs[models.Asset]},
	{"RestrictedCountries", func(a repository.FirmAssociations) *[]uuid.UUID { return a.RestrictedCountryIDs }, loadByIDs[models.Country]},
	{"FuturesExchanges", func(a repository.FirmAssociations) *[]uuid.UUID { return a.FuturesExchangeIDs }, loadByIDs[models.FuturesExchange]},
}

func loadByIDs[T any](tx *gorm.DB, ids []uuid.UUID) (any, error) {
	items := make([]T, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	if err := tx.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateFirm applies scalar column updates and relation replacements in a
// single transaction. A nil id slice leaves that relation alone; an empty
// slice clears it.
func (s *Store) UpdateFirm(ctx context.Context, id uuid.UUID, fields map[string]any, assoc repository.FirmAssociations) error {
	return s.InTx(ctx, func(tx *gorm.DB) error {
		firm := models.Firm{ID: id}
		if len(fields) > 0 {
			if err := tx.Model(&firm).Updates(fields).Error; err != nil {
				return err
			}
		}
		for _, spec := range firmAssocTable {
			ptr := spec.ids(assoc)
			if ptr == nil {
				continue
			}
			items, err := spec.load(tx, *ptr)
			if err != nil {
				return err
			}
			if err := tx.Model(&firm).Association(spec.name).Replace(items); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) CountFirmDependents(ctx context.Context, id uuid.UUID) (map[string]int64, error) {
	counts := map[string]int64{}
	for key, count := range map[string]*gorm.DB{
		"account_types":    s.db.WithContext(ctx).Model(&models.AccountType{}).Where("firm_id = ?", id),
		"futures_programs": s.db.WithContext(ctx).Model(&models.FuturesProgram{}).Where("firm_id = ?", id),
		"rules":            s.db.WithContext(ctx).Model(&models.Rule{}).Where("firm_id = ?", id),
		"payout_policies":  s.db.WithContext(ctx).Model(&models.PayoutPolicy{}).Where("firm_id = ?", id),
		"coupons":          s.db.WithContext(ctx).Model(&models.FirmCoupon{}).Where("firm_id = ?", id),
	} {
		var n int64
		if err := count.Count(&n).Error; err != nil {
			return nil, err
		}
		counts[key] = n
	}
	return counts, nil
}

// firmLinkTables are the join tables purged before a firm row is removed.
var firmLinkTables = []string{
	"firm_trading_platforms",
	"firm_brokers",
	"firm_payout_methods",
	"firm_payment_methods",
	"firm_assets",
	"firm_restricted_countries",
	"firm_futures_exchanges",
	"firm_coupons",
}

func (s *Store) DeleteFirm(ctx context.Context, id uuid.UUID) error {
	return s.InTx(ctx, func(tx *gorm.DB) error {
		for _, table := range firmLinkTables {
			if err := tx.Exec("DELETE FROM "+table+" WHERE firm_id = ?", id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Firm{}, "id = ?", id).Error
	})
}

func (s *Store) ListAccountTypesByFirm(ctx context.Context, firmID uuid.UUID) ([]models.AccountType, error) {
	var items []models.AccountType
	err := s.db.WithContext(ctx).
		Where("firm_id = ?", firmID).
		Preload("EvaluationStages", func(db *gorm.DB) *gorm.DB {
			return db.Order("stage_number ASC")
		}).
		Preload("Commissions").
		Order("starting_balance ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListFuturesProgramsByFirm(ctx context.Context, firmID uuid.UUID) ([]models.FuturesProgram, error) {
	var items []models.FuturesProgram
	err := s.db.WithContext(ctx).
		Where("firm_id = ?", firmID).
		Preload("Commissions").
		Order("account_size ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListFuturesExchangesByFirm(ctx context.Context, firmID uuid.UUID) ([]models.FuturesExchange, error) {
	var items []models.FuturesExchange
	err := s.db.WithContext(ctx).
		Joins("JOIN firm_futures_exchanges ffe ON ffe.futures_exchange_id = futures_exchanges.id").
		Where("ffe.firm_id = ?", firmID).
		Order("futures_exchanges.name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListAssetsByFirm(ctx context.Context, firmID uuid.UUID) ([]models.Asset, error) {
	var items []models.Asset
	err := s.db.WithContext(ctx).
		Joins("JOIN firm_assets fa ON fa.asset_id = assets.id").
		Where("fa.firm_id = ?", firmID).
		Order("assets.name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
