package models

import (
	"time"

	"github.com/google/uuid"
)

const RuleCategoryConsistency = "consistency"

// Rule categories: trading, risk, consistency, payout. The consistency
// split surfaced by the detail view is computed at read time, not stored.
type Rule struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirmID      uuid.UUID `gorm:"type:uuid;not null;index" json:"firm_id"`
	Category    string    `gorm:"type:varchar(20);not null" json:"category"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Rule) TableName() string {
	return "rules"
}
