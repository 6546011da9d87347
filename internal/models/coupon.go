package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Coupon is a discount code with an optional visibility window. StartDate
// is inclusive and EndDate exclusive when the window is evaluated.
type Coupon struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code         string           `gorm:"type:varchar(255);not null" json:"code"`
	DiscountText string           `gorm:"type:varchar(255);not null" json:"discount_text"`
	DiscountValue *decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_value"`
	DiscountType string           `gorm:"type:varchar(20);not null" json:"discount_type"`
	Description  *string          `gorm:"type:text" json:"description"`
	StartDate    *time.Time       `gorm:"type:timestamptz" json:"start_date"`
	EndDate      *time.Time       `gorm:"type:timestamptz" json:"end_date"`
	IsActive     bool             `gorm:"not null;default:true" json:"is_active"`

	Firms        []Firm        `gorm:"many2many:firm_coupons" json:"firms,omitempty"`
	AccountTypes []AccountType `gorm:"many2many:coupon_account_types" json:"account_types,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Coupon) TableName() string {
	return "coupons"
}

// FirmCoupon is the firm/coupon join row, addressable directly by the
// assignment endpoints.
type FirmCoupon struct {
	FirmID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"firm_id"`
	CouponID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"coupon_id"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (FirmCoupon) TableName() string {
	return "firm_coupons"
}

// CouponAccountType links a coupon to a specific account type.
type CouponAccountType struct {
	CouponID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"coupon_id"`
	AccountTypeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"account_type_id"`
	CreatedAt     time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (CouponAccountType) TableName() string {
	return "coupon_account_types"
}
