package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FuturesProgram is a funded-account product offered by a futures firm.
type FuturesProgram struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirmID            uuid.UUID        `gorm:"type:uuid;not null;index" json:"firm_id"`
	Name              string           `gorm:"type:varchar(255);not null" json:"name"`
	AccountSize       int              `gorm:"not null" json:"account_size"`
	Price             decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	ProfitTarget      decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"profit_target"`
	MaxDrawdown       decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"max_drawdown"`
	TrailingDrawdown  bool             `gorm:"not null;default:false" json:"trailing_drawdown"`
	ResetFee          *decimal.Decimal `gorm:"type:decimal(10,2)" json:"reset_fee"`
	Notes             *string          `gorm:"type:text" json:"notes"`

	Commissions []Commission `gorm:"foreignKey:FuturesProgramID" json:"commissions,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (FuturesProgram) TableName() string {
	return "futures_programs"
}
