package models

import (
	"time"

	"github.com/google/uuid"
)

// Country is referenced by firms as a restricted jurisdiction.
type Country struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name    string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Code    string    `gorm:"type:varchar(2);uniqueIndex;not null" json:"code"`
	FlagURL *string   `gorm:"type:text" json:"flag_url"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Country) TableName() string {
	return "countries"
}
