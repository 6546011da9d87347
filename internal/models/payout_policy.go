package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayoutPolicy describes how a firm pays traders. ProgramType is a
// free-text grouping key; nil or empty groups under "General" at read time.
type PayoutPolicy struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirmID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"firm_id"`
	PayoutFrequency    string          `gorm:"type:varchar(255);not null" json:"payout_frequency"`
	FirstPayoutDays    int             `gorm:"not null" json:"first_payout_days"`
	ProfitSplitInitial decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"profit_split_initial"`
	ProfitSplitMax     decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"profit_split_max"`
	Notes              *string         `gorm:"type:text" json:"notes"`
	ProgramType        *string         `gorm:"type:varchar(255)" json:"program_type"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (PayoutPolicy) TableName() string {
	return "payout_policies"
}
