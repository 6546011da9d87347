package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType is a funded-account product offered by a prop firm.
type AccountType struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirmID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"firm_id"`
	Name               string          `gorm:"type:varchar(255);not null" json:"name"`
	StartingBalance    int             `gorm:"not null" json:"starting_balance"`
	Price              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ProfitTarget       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"profit_target"`
	DailyDrawdown      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"daily_drawdown"`
	MaxDrawdown        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"max_drawdown"`
	ProfitSplit        decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"profit_split"`
	EvaluationRequired bool            `gorm:"not null;default:true" json:"evaluation_required"`
	ProgramVariant     *string         `gorm:"type:varchar(255)" json:"program_variant"`
	ProgramName        *string         `gorm:"type:varchar(255)" json:"program_name"`
	IsActive           bool            `gorm:"not null;default:true" json:"is_active"`

	EvaluationStages []EvaluationStage `gorm:"foreignKey:AccountTypeID" json:"evaluation_stages,omitempty"`
	Commissions      []Commission      `gorm:"foreignKey:AccountTypeID" json:"commissions,omitempty"`
	Coupons          []Coupon          `gorm:"many2many:coupon_account_types" json:"coupons,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (AccountType) TableName() string {
	return "account_types"
}
