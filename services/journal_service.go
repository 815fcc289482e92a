package services

import (
	"strings"
	"time"

	"healthtrack/config"
	"healthtrack/models"

	"gorm.io/gorm"
)

type JournalInput struct {
	Body    string
	NotedAt time.Time
	Tags    []string
}

func ListJournalEntries(userID uint, page, limit int) ([]models.JournalEntry, int64, error) {
	var total int64
	if err := config.DB.Model(&models.JournalEntry{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.JournalEntry
	err := config.DB.
		Preload("Tags").
		Where("user_id = ?", userID).
		Order("noted_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entries).Error
	return entries, total, err
}

func GetJournalEntry(userID, entryID uint) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := config.DB.
		Preload("Tags").
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &entry, nil
}

// resolveTags finds or creates the user's tags for the given names. Names are
// trimmed and de-duplicated case-insensitively.
func resolveTags(tx *gorm.DB, userID uint, names []string) ([]models.Tag, error) {
	seen := map[string]struct{}{}
	var tags []models.Tag
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		lower := strings.ToLower(name)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}

		var tag models.Tag
		err := tx.Where("user_id = ? AND name = ?", userID, name).
			Attrs(models.Tag{UserID: userID, Name: name}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func CreateJournalEntry(userID uint, in JournalInput) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		tags, err := resolveTags(tx, userID, in.Tags)
		if err != nil {
			return err
		}
		entry = models.JournalEntry{
			UserID:  userID,
			Body:    in.Body,
			NotedAt: in.NotedAt,
			Tags:    tags,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return GetJournalEntry(userID, entry.ID)
}

// UpdateJournalEntry replaces the body, timestamp, and the full tag set in one
// transaction.
func UpdateJournalEntry(userID, entryID uint, in JournalInput) (*models.JournalEntry, error) {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var entry models.JournalEntry
		if err := tx.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
			return notFoundOr(err)
		}

		entry.Body = in.Body
		entry.NotedAt = in.NotedAt
		if err := tx.Save(&entry).Error; err != nil {
			return err
		}

		tags, err := resolveTags(tx, userID, in.Tags)
		if err != nil {
			return err
		}
		return tx.Model(&entry).Association("Tags").Replace(tags)
	})
	if err != nil {
		return nil, err
	}
	return GetJournalEntry(userID, entryID)
}

func DeleteJournalEntry(userID, entryID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var entry models.JournalEntry
		if err := tx.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
			return notFoundOr(err)
		}
		if err := tx.Model(&entry).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&entry).Error
	})
}
