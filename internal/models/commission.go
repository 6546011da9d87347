package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CommissionTypePerLot     = "per_lot"
	CommissionTypePercentage = "percentage"
	CommissionTypeFixed      = "fixed"
	CommissionTypeNone       = "none"
)

// Commission is a per-asset trading cost. Exactly one of AccountTypeID and
// FuturesProgramID must be set; creation enforces this.
type Commission struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AccountTypeID    *uuid.UUID       `gorm:"type:uuid;index" json:"account_type_id"`
	FuturesProgramID *uuid.UUID       `gorm:"type:uuid;index" json:"futures_program_id"`
	AssetName        string           `gorm:"type:varchar(255);not null" json:"asset_name"`
	CommissionType   string           `gorm:"type:varchar(20);not null;default:none" json:"commission_type"`
	CommissionValue  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"commission_value"`
	CommissionText   *string          `gorm:"type:text" json:"commission_text"`
	Notes            *string          `gorm:"type:text" json:"notes"`

	AccountType    *AccountType    `gorm:"foreignKey:AccountTypeID" json:"account_type,omitempty"`
	FuturesProgram *FuturesProgram `gorm:"foreignKey:FuturesProgramID" json:"futures_program,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Commission) TableName() string {
	return "commissions"
}
