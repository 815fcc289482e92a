package models

import "gorm.io/gorm"

// Plan is a named daily macro budget expressed in whole "slots" per category.
type Plan struct {
	gorm.Model
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`

	ProteinSlots int `json:"protein_slots"`
	CarbSlots    int `json:"carb_slots"`
	FatSlots     int `json:"fat_slots"`
	VeggieSlots  int `json:"veggie_slots"`
	JunkSlots    int `json:"junk_slots"`
}
