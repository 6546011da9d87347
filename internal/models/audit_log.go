package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog records admin write actions. Rows are written best effort after
// the response is committed; a failed insert never fails the request.
type AuditLog struct {
	ID         uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorID    *uuid.UUID     `gorm:"type:uuid;index" json:"actor_id"`
	ActorEmail string         `gorm:"type:varchar(255)" json:"actor_email"`
	Action     string         `gorm:"type:varchar(100);not null;index" json:"action"`
	Method     string         `gorm:"type:varchar(10);not null" json:"method"`
	Path       string         `gorm:"type:varchar(255);not null" json:"path"`
	Status     int            `gorm:"not null" json:"status"`
	DurationMs int64          `gorm:"not null" json:"duration_ms"`
	Details    datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
