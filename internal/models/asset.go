package models

import (
	"time"

	"github.com/google/uuid"
)

// Asset is a tradable market offered by prop firms (forex, indices, ...).
type Asset struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Asset) TableName() string {
	return "assets"
}
