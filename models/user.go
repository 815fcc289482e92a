package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	FullName string `json:"full_name"`

	// Weak back-references to the currently selected plans. There is no
	// DB-level cascade: deleting a plan must clear the matching pointer.
	ActivePlanID        *uint `json:"active_plan_id"`
	ActiveWorkoutPlanID *uint `json:"active_workout_plan_id"`
	ActiveWaterPlanID   *uint `json:"active_water_plan_id"`
}
