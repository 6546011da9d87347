package gormrepo

import (
	"context"

	"github.com/google/uuid"

	"propdir/internal/models"
)

// Shared helpers for the flat reference catalogs. Every catalog lists in
// name order and counts firm links through its join table.

func listAll[T any](s *Store, ctx context.Context, order string) ([]T, error) {
	var items []T
	if err := s.db.WithContext(ctx).Order(order).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func getByID[T any](s *Store, ctx context.Context, id uuid.UUID) (*T, error) {
	return firstOrNil[T](s.db.WithContext(ctx).Where("id = ?", id))
}

func deleteByID[T any](s *Store, ctx context.Context, id uuid.UUID) error {
	var zero T
	return s.db.WithContext(ctx).Delete(&zero, "id = ?", id).Error
}

func (s *Store) countFirmLinks(ctx context.Context, table string, column string, id uuid.UUID) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Table(table).Where(column+" = ?", id).Count(&n).Error
	return n, err
}

// Trading platforms.

func (s *Store) ListTradingPlatforms(ctx context.Context) ([]models.TradingPlatform, error) {
	return listAll[models.TradingPlatform](s, ctx, "name ASC")
}

func (s *Store) GetTradingPlatform(ctx context.Context, id uuid.UUID) (*models.TradingPlatform, error) {
	return getByID[models.TradingPlatform](s, ctx, id)
}

func (s *Store) CreateTradingPlatform(ctx context.Context, item *models.TradingPlatform) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SaveTradingPlatform(ctx context.Context, item *models.TradingPlatform) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteTradingPlatform(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.TradingPlatform](s, ctx, id)
}

func (s *Store) CountFirmsByTradingPlatform(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.countFirmLinks(ctx, "firm_trading_platforms", "trading_platform_id", id)
}

// Brokers.

func (s *Store) ListBrokers(ctx context.Context) ([]models.Broker, error) {
	return listAll[models.Broker](s, ctx, "name ASC")
}

func (s *Store) GetBroker(ctx context.Context, id uuid.UUID) (*models.Broker, error) {
	return getByID[models.Broker](s, ctx, id)
}

func (s *Store) CreateBroker(ctx context.Context, item *models.Broker) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SaveBroker(ctx context.Context, item *models.Broker) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteBroker(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Broker](s, ctx, id)
}

func (s *Store) CountFirmsByBroker(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.countFirmLinks(ctx, "firm_brokers", "broker_id", id)
}

// Payout methods.

func (s *Store) ListPayoutMethods(ctx context.Context) ([]models.PayoutMethod, error) {
	return listAll[models.PayoutMethod](s, ctx, "name ASC")
}

func (s *Store) GetPayoutMethod(ctx context.Context, id uuid.UUID) (*models.PayoutMethod, error) {
	return getByID[models.PayoutMethod](s, ctx, id)
}

func (s *Store) CreatePayoutMethod(ctx context.Context, item *models.PayoutMethod) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SavePayoutMethod(ctx context.Context, item *models.PayoutMethod) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeletePayoutMethod(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.PayoutMethod](s, ctx, id)
}

func (s *Store) CountFirmsByPayoutMethod(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.countFirmLinks(ctx, "firm_payout_methods", "payout_method_id", id)
}

// Payment methods.

func (s *Store) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	return listAll[models.PaymentMethod](s, ctx, "name ASC")
}

func (s *Store) GetPaymentMethod(ctx context.Context, id uuid.UUID) (*models.PaymentMethod, error) {
	return getByID[models.PaymentMethod](s, ctx, id)
}

func (s *Store) CreatePaymentMethod(ctx context.Context, item *models.PaymentMethod) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SavePaymentMethod(ctx context.Context, item *models.PaymentMethod) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeletePaymentMethod(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.PaymentMethod](s, ctx, id)
}

func (s *Store) CountFirmsByPaymentMethod(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.countFirmLinks(ctx, "firm_payment_methods", "payment_method_id", id)
}

// Assets.

func (s *Store) ListAssets(ctx context.Context) ([]models.Asset, error) {
	return listAll[models.Asset](s, ctx, "name ASC")
}

func (s *Store) GetAsset(ctx context.Context, id uuid.UUID) (*models.Asset, error) {
	return getByID[models.Asset](s, ctx, id)
}

func (s *Store) CreateAsset(ctx context.Context, item *models.Asset) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SaveAsset(ctx context.Context, item *models.Asset) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Asset](s, ctx, id)
}

func (s *Store) CountFirmsByAsset(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.countFirmLinks(ctx, "firm_assets", "asset_id", id)
}

// Countries.

func (s *Store) ListCountries(ctx context.Context) ([]models.Country, error) {
	return listAll[models.Country](s, ctx, "name ASC")
}

func (s *Store) GetCountry(ctx context.Context, id uuid.UUID) (*models.Country, error) {
	return getByID[models.Country](s, ctx, id)
}

func (s *Store) CreateCountry(ctx context.Context, item *models.Country) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SaveCountry(ctx context.Context, item *models.Country) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Country](s, ctx, id)
}

func (s *Store) CountFirmsByCountry(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.countFirmLinks(ctx, "firm_restricted_countries", "country_id", id)
}

// Futures exchanges.

func (s *Store) ListFuturesExchanges(ctx context.Context) ([]models.FuturesExchange, error) {
	return listAll[models.FuturesExchange](s, ctx, "name ASC")
}

func (s *Store) GetFuturesExchange(ctx context.Context, id uuid.UUID) (*models.FuturesExchange, error) {
	return getByID[models.FuturesExchange](s, ctx, id)
}

func (s *Store) CreateFuturesExchange(ctx context.Context, item *models.FuturesExchange) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SaveFuturesExchange(ctx context.Context, item *models.FuturesExchange) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteFuturesExchange(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.FuturesExchange](s, ctx, id)
}

func (s *Store) CountFirmsByFuturesExchange(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.countFirmLinks(ctx, "firm_futures_exchanges", "futures_exchange_id", id)
}

// Instrument types.

func (s *Store) ListInstrumentTypes(ctx context.Context) ([]models.InstrumentType, error) {
	return listAll[models.InstrumentType](s, ctx, "name ASC")
}

func (s *Store) GetInstrumentType(ctx context.Context, id uuid.UUID) (*models.InstrumentType, error) {
	return getByID[models.InstrumentType](s, ctx, id)
}

func (s *Store) CreateInstrumentType(ctx context.Context, item *models.InstrumentType) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SaveInstrumentType(ctx context.Context, item *models.InstrumentType) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteInstrumentType(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.InstrumentType](s, ctx, id)
}
