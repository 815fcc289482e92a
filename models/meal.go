package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal is one logged eating event with per-category used slot counts.
type Meal struct {
	gorm.Model
	UserID  uint      `gorm:"index;not null" json:"user_id"`
	Name    string    `json:"name"`
	EatenAt time.Time `gorm:"index;not null" json:"eaten_at"`

	ProteinUsed int `json:"protein_used"`
	CarbsUsed   int `json:"carbs_used"`
	FatUsed     int `json:"fat_used"`
	VeggiesUsed int `json:"veggies_used"`
	JunkUsed    int `json:"junk_used"`

	// S3 object key of an optional photo, empty when none was attached.
	ImageKey string `json:"image_key,omitempty"`
}
