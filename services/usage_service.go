package services

import (
	"time"

	"healthtrack/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type usageDeps struct {
	db *gorm.DB
}

var _usage usageDeps

func InitUsage(db *gorm.DB) {
	_usage = usageDeps{db: db}
}

// EmitUsage records a metering event. Safe to call anywhere; failures are
// logged and never surface to the request that triggered them.
func EmitUsage(userID uint, eventType string) {
	if _usage.db == nil {
		return // not initialized
	}
	ev := &models.UsageEvent{UserID: userID, EventType: eventType, CreatedAt: time.Now()}
	if err := _usage.db.Create(ev).Error; err != nil {
		log.Warn().Err(err).Str("event", eventType).Uint("user", userID).Msg("usage event dropped")
	}
}
