package models

import (
	"time"

	"github.com/google/uuid"
)

type PayoutMethod struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	LogoURL  *string   `gorm:"type:text" json:"logo_url"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (PayoutMethod) TableName() string {
	return "payout_methods"
}
