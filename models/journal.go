package models

import (
	"time"

	"gorm.io/gorm"
)

type JournalEntry struct {
	gorm.Model
	UserID  uint      `gorm:"index;not null" json:"user_id"`
	Body    string    `gorm:"type:text;not null" json:"body"`
	NotedAt time.Time `gorm:"index;not null" json:"noted_at"`
	Tags    []Tag     `gorm:"many2many:journal_entry_tags" json:"tags"`
}

// Tag names are unique per owner.
type Tag struct {
	gorm.Model
	UserID uint   `gorm:"index:idx_tag_owner_name,unique;not null" json:"user_id"`
	Name   string `gorm:"index:idx_tag_owner_name,unique;size:64;not null" json:"name"`
}
