package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"propdir/internal/models"
)

// FirmRef addresses a firm either by primary key or by public slug.
type FirmRef struct {
	ID   *uuid.UUID
	Slug *string
}

func FirmByID(id uuid.UUID) FirmRef  { return FirmRef{ID: &id} }
func FirmBySlug(slug string) FirmRef { return FirmRef{Slug: &slug} }

// ListFirmsParams drives the public catalog listing. OrderClauses are
// resolved in the handler layer against the preset/sort allow-list and
// applied verbatim, first to last.
type ListFirmsParams struct {
	FirmType     *string
	ActiveOnly   bool
	OrderClauses []OrderClause
	// PreloadAssociations preloads the firm-type-agnostic many-to-many
	// sets; when ActiveOnly is set the preloads are filtered to active
	// rows as well.
	PreloadAssociations bool
}

type OrderClause struct {
	Column string
	Desc   bool
}

// FirmAssociations carries the optional relation-replacement arrays of a
// firm update. A nil set means "leave the relation untouched"; an empty
// slice clears the relation.
type FirmAssociations struct {
	TradingPlatformIDs   *[]uuid.UUID
	BrokerIDs            *[]uuid.UUID
	PayoutMethodIDs      *[]uuid.UUID
	PaymentMethodIDs     *[]uuid.UUID
	AssetIDs             *[]uuid.UUID
	RestrictedCountryIDs *[]uuid.UUID
	FuturesExchangeIDs   *[]uuid.UUID
}

type ListCommissionsParams struct {
	AccountTypeID    *uuid.UUID
	FuturesProgramID *uuid.UUID
}

type CountFirmsParams struct {
	ActiveOnly bool
	FirmType   *string
}

type Repository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	// Users.
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, item *models.User) error
	SaveUser(ctx context.Context, item *models.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	CountUsers(ctx context.Context, role *string) (int64, error)

	// Firms.
	ListFirms(ctx context.Context, params ListFirmsParams) ([]models.Firm, error)
	GetFirmByID(ctx context.Context, id uuid.UUID) (*models.Firm, error)
	GetFirmDetail(ctx context.Context, ref FirmRef, publicOnly bool) (*models.Firm, error)
	CreateFirm(ctx context.Context, item *models.Firm) error
	UpdateFirm(ctx context.Context, id uuid.UUID, fields map[string]any, assoc FirmAssociations) error
	SaveFirm(ctx context.Context, item *models.Firm) error
	CountFirmDependents(ctx context.Context, id uuid.UUID) (map[string]int64, error)
	DeleteFirm(ctx context.Context, id uuid.UUID) error

	// Firm-scoped subtrees for the detail assembler.
	ListAccountTypesByFirm(ctx context.Context, firmID uuid.UUID) ([]models.AccountType, error)
	ListFuturesProgramsByFirm(ctx context.Context, firmID uuid.UUID) ([]models.FuturesProgram, error)
	ListFuturesExchangesByFirm(ctx context.Context, firmID uuid.UUID) ([]models.FuturesExchange, error)
	ListAssetsByFirm(ctx context.Context, firmID uuid.UUID) ([]models.Asset, error)

	// Trading platforms.
	ListTradingPlatforms(ctx context.Context) ([]models.TradingPlatform, error)
	GetTradingPlatform(ctx context.Context, id uuid.UUID) (*models.TradingPlatform, error)
	CreateTradingPlatform(ctx context.Context, item *models.TradingPlatform) error
	SaveTradingPlatform(ctx context.Context, item *models.TradingPlatform) error
	DeleteTradingPlatform(ctx context.Context, id uuid.UUID) error
	CountFirmsByTradingPlatform(ctx context.Context, id uuid.UUID) (int64, error)

	// Brokers.
	ListBrokers(ctx context.Context) ([]models.Broker, error)
	GetBroker(ctx context.Context, id uuid.UUID) (*models.Broker, error)
	CreateBroker(ctx context.Context, item *models.Broker) error
	SaveBroker(ctx context.Context, item *models.Broker) error
	DeleteBroker(ctx context.Context, id uuid.UUID) error
	CountFirmsByBroker(ctx context.Context, id uuid.UUID) (int64, error)

	// Payout methods.
	ListPayoutMethods(ctx context.Context) ([]models.PayoutMethod, error)
	GetPayoutMethod(ctx context.Context, id uuid.UUID) (*models.PayoutMethod, error)
	CreatePayoutMethod(ctx context.Context, item *models.PayoutMethod) error
	SavePayoutMethod(ctx context.Context, item *models.PayoutMethod) error
	DeletePayoutMethod(ctx context.Context, id uuid.UUID) error
	CountFirmsByPayoutMethod(ctx context.Context, id uuid.UUID) (int64, error)

	// Payment methods.
	ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	GetPaymentMethod(ctx context.Context, id uuid.UUID) (*models.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, item *models.PaymentMethod) error
	SavePaymentMethod(ctx context.Context, item *models.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, id uuid.UUID) error
	CountFirmsByPaymentMethod(ctx context.Context, id uuid.UUID) (int64, error)

	// Assets.
	ListAssets(ctx context.Context) ([]models.Asset, error)
	GetAsset(ctx context.Context, id uuid.UUID) (*models.Asset, error)
	CreateAsset(ctx context.Context, item *models.Asset) error
	SaveAsset(ctx context.Context, item *models.Asset) error
	DeleteAsset(ctx context.Context, id uuid.UUID) error
	CountFirmsByAsset(ctx context.Context, id uuid.UUID) (int64, error)

	// Countries.
	ListCountries(ctx context.Context) ([]models.Country, error)
	GetCountry(ctx context.Context, id uuid.UUID) (*models.Country, error)
	CreateCountry(ctx context.Context, item *models.Country) error
	SaveCountry(ctx context.Context, item *models.Country) error
	DeleteCountry(ctx context.Context, id uuid.UUID) error
	CountFirmsByCountry(ctx context.Context, id uuid.UUID) (int64, error)

	// Futures exchanges.
	ListFuturesExchanges(ctx context.Context) ([]models.FuturesExchange, error)
	GetFuturesExchange(ctx context.Context, id uuid.UUID) (*models.FuturesExchange, error)
	CreateFuturesExchange(ctx context.Context, item *models.FuturesExchange) error
	SaveFuturesExchange(ctx context.Context, item *models.FuturesExchange) error
	DeleteFuturesExchange(ctx context.Context, id uuid.UUID) error
	CountFirmsByFuturesExchange(ctx context.Context, id uuid.UUID) (int64, error)

	// Instrument types.
	ListInstrumentTypes(ctx context.Context) ([]models.InstrumentType, error)
	GetInstrumentType(ctx context.Context, id uuid.UUID) (*models.InstrumentType, error)
	CreateInstrumentType(ctx context.Context, item *models.InstrumentType) error
	SaveInstrumentType(ctx context.Context, item *models.InstrumentType) error
	DeleteInstrumentType(ctx context.Context, id uuid.UUID) error

	// Account types.
	ListAccountTypes(ctx context.Context, firmID *uuid.UUID) ([]models.AccountType, error)
	GetAccountType(ctx context.Context, id uuid.UUID) (*models.AccountType, error)
	CreateAccountType(ctx context.Context, item *models.AccountType) error
	SaveAccountType(ctx context.Context, item *models.AccountType) error
	DeleteAccountType(ctx context.Context, id uuid.UUID) error
	CountAccountTypeDependents(ctx context.Context, id uuid.UUID) (map[string]int64, error)

	// Evaluation stages.
	ListEvaluationStages(ctx context.Context, accountTypeID *uuid.UUID) ([]models.EvaluationStage, error)
	GetEvaluationStage(ctx context.Context, id uuid.UUID) (*models.EvaluationStage, error)
	CreateEvaluationStage(ctx context.Context, item *models.EvaluationStage) error
	SaveEvaluationStage(ctx context.Context, item *models.EvaluationStage) error
	DeleteEvaluationStage(ctx context.Context, id uuid.UUID) error

	// Futures programs.
	ListFuturesPrograms(ctx context.Context, firmID *uuid.UUID) ([]models.FuturesProgram, error)
	GetFuturesProgram(ctx context.Context, id uuid.UUID) (*models.FuturesProgram, error)
	CreateFuturesProgram(ctx context.Context, item *models.FuturesProgram) error
	SaveFuturesProgram(ctx context.Context, item *models.FuturesProgram) error
	DeleteFuturesProgram(ctx context.Context, id uuid.UUID) error

	// Commissions.
	ListCommissions(ctx context.Context, params ListCommissionsParams) ([]models.Commission, error)
	GetCommission(ctx context.Context, id uuid.UUID) (*models.Commission, error)
	CreateCommission(ctx context.Context, item *models.Commission) error
	SaveCommission(ctx context.Context, item *models.Commission) error
	DeleteCommission(ctx context.Context, id uuid.UUID) error

	// Rules.
	ListRules(ctx context.Context, firmID *uuid.UUID) ([]models.Rule, error)
	GetRule(ctx context.Context, id uuid.UUID) (*models.Rule, error)
	CreateRule(ctx context.Context, item *models.Rule) error
	SaveRule(ctx context.Context, item *models.Rule) error
	DeleteRule(ctx context.Context, id uuid.UUID) error

	// Payout policies.
	ListPayoutPolicies(ctx context.Context, firmID *uuid.UUID) ([]models.PayoutPolicy, error)
	GetPayoutPolicy(ctx context.Context, id uuid.UUID) (*models.PayoutPolicy, error)
	CreatePayoutPolicy(ctx context.Context, item *models.PayoutPolicy) error
	SavePayoutPolicy(ctx context.Context, item *models.PayoutPolicy) error
	DeletePayoutPolicy(ctx context.Context, id uuid.UUID) error

	// Coupons.
	ListCoupons(ctx context.Context) ([]models.Coupon, error)
	GetCoupon(ctx context.Context, id uuid.UUID) (*models.Coupon, error)
	CreateCoupon(ctx context.Context, item *models.Coupon) error
	SaveCoupon(ctx context.Context, item *models.Coupon) error
	DeleteCoupon(ctx context.Context, id uuid.UUID) error
	CountCouponDependents(ctx context.Context, id uuid.UUID) (map[string]int64, error)
	AssignCouponToFirm(ctx context.Context, item *models.FirmCoupon) error
	UnassignCouponFromFirm(ctx context.Context, firmID, couponID uuid.UUID) (int64, error)
	AssignCouponToAccountType(ctx context.Context, item *models.CouponAccountType) error
	UnassignCouponFromAccountType(ctx context.Context, couponID, accountTypeID uuid.UUID) (int64, error)

	// Dashboard.
	CountFirms(ctx context.Context, params CountFirmsParams) (int64, error)
	CountVisibleCoupons(ctx context.Context, now time.Time) (int64, error)
	CountTradingPlatforms(ctx context.Context) (int64, error)
	CountBrokers(ctx context.Context) (int64, error)
	ListRecentFirms(ctx context.Context, limit int) ([]models.Firm, error)
	ListFirmsWithDataGaps(ctx context.Context, limit int) ([]models.Firm, error)

	// Audit.
	InsertAuditLog(ctx context.Context, item *models.AuditLog) error
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (duplicate slug, email, coupon code, ...).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
