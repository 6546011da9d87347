package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	FirmTypeProp    = "prop_firm"
	FirmTypeFutures = "futures_firm"
)

// Firm is the aggregate root of the catalog. Child rows (rules, payout
// policies, account types, futures programs) block deletion while present.
type Firm struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string           `gorm:"type:varchar(255);not null" json:"name"`
	Slug          string           `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	FirmType      string           `gorm:"type:varchar(20);not null;index" json:"firm_type"`
	LogoURL       *string          `gorm:"type:text" json:"logo_url"`
	FoundedYear   *int             `json:"founded_year"`
	Rating        *decimal.Decimal `gorm:"type:decimal(3,2)" json:"rating"`
	ReviewCount   int              `gorm:"default:0" json:"review_count"`
	MaxAllocation *int             `json:"max_allocation"`
	Description   *string          `gorm:"type:text" json:"description"`
	Location      *string          `gorm:"type:varchar(255)" json:"location"`
	GuideVideoURL *string          `gorm:"type:text" json:"guide_video_url"`
	IsActive      bool             `gorm:"not null;default:true;index" json:"is_active"`

	TradingPlatforms    []TradingPlatform `gorm:"many2many:firm_trading_platforms" json:"trading_platforms,omitempty"`
	Brokers             []Broker          `gorm:"many2many:firm_brokers" json:"brokers,omitempty"`
	PayoutMethods       []PayoutMethod    `gorm:"many2many:firm_payout_methods" json:"payout_methods,omitempty"`
	PaymentMethods      []PaymentMethod   `gorm:"many2many:firm_payment_methods" json:"payment_methods,omitempty"`
	FuturesExchanges    []FuturesExchange `gorm:"many2many:firm_futures_exchanges" json:"futures_exchanges,omitempty"`
	Assets              []Asset           `gorm:"many2many:firm_assets" json:"assets,omitempty"`
	RestrictedCountries []Country         `gorm:"many2many:firm_restricted_countries" json:"restricted_countries,omitempty"`
	Coupons             []Coupon          `gorm:"many2many:firm_coupons" json:"coupons,omitempty"`

	Rules           []Rule           `gorm:"foreignKey:FirmID" json:"rules,omitempty"`
	PayoutPolicies  []PayoutPolicy   `gorm:"foreignKey:FirmID" json:"payout_policies,omitempty"`
	AccountTypes    []AccountType    `gorm:"foreignKey:FirmID" json:"account_types,omitempty"`
	FuturesPrograms []FuturesProgram `gorm:"foreignKey:FirmID" json:"futures_programs,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Firm) TableName() string {
	return "firms"
}
