package models

import "time"

// UsageEvent is a metering row written fire-and-forget after mutations.
type UsageEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	EventType string    `gorm:"size:64" json:"event_type"`
	CreatedAt time.Time `json:"created_at"`
}
