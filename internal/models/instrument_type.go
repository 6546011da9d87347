package models

import (
	"time"

	"github.com/google/uuid"
)

// InstrumentType is a static lookup shared by all futures firms; it has no
// firm linkage.
type InstrumentType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (InstrumentType) TableName() string {
	return "instrument_types"
}
