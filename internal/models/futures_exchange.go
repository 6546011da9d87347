package models

import (
	"time"

	"github.com/google/uuid"
)

type FuturesExchange struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"type:varchar(255);not null" json:"name"`
	Code string    `gorm:"type:varchar(50);not null" json:"code"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (FuturesExchange) TableName() string {
	return "futures_exchanges"
}
