package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EvaluationStage is one phase of a multi-phase trading challenge.
// StageNumber orders the stages within an account type.
type EvaluationStage struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AccountTypeID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_type_id"`
	StageNumber    int             `gorm:"not null" json:"stage_number"`
	ProfitTarget   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"profit_target"`
	MaxDailyLoss   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"max_daily_loss"`
	MaxTotalLoss   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"max_total_loss"`
	MinTradingDays int             `gorm:"not null" json:"min_trading_days"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (EvaluationStage) TableName() string {
	return "evaluation_stages"
}
