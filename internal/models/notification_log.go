package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
	NotificationDropped = "dropped"
)

// NotificationLog records the outcome of every email dispatch attempt.
// Delivery is at-most-once; a failed row is never retried.
type NotificationLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Event     string         `gorm:"size:50;not null;index" json:"event"`
	Recipient string         `gorm:"size:255;not null" json:"recipient"`
	Subject   string         `gorm:"size:255" json:"subject"`
	Status    string         `gorm:"size:20;not null;index" json:"status"`
	Error     string         `gorm:"type:text" json:"error,omitempty"`
	Payload   datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"payload"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}
