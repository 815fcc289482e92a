package models

import (
	"time"

	"gorm.io/gorm"
)

// Exercise is a user-defined movement ("Pushups", "Plank", ...). Quantities on
// join rows are counted in the exercise's own unit.
type Exercise struct {
	gorm.Model
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`
	Unit   string `json:"unit"` // "reps" | "seconds" | "minutes" | free text
}

// WorkoutPlan defines per-exercise daily targets.
type WorkoutPlan struct {
	gorm.Model
	UserID    uint                  `gorm:"index;not null" json:"user_id"`
	Name      string                `gorm:"not null" json:"name"`
	Exercises []WorkoutPlanExercise `json:"exercises"`
}

type WorkoutPlanExercise struct {
	gorm.Model
	WorkoutPlanID uint     `gorm:"index;not null" json:"workout_plan_id"`
	ExerciseID    uint     `gorm:"index;not null" json:"exercise_id"`
	Exercise      Exercise `json:"exercise"`
	DailyTarget   int      `json:"daily_target"`
}

// Workout is one performed session with per-exercise completed quantities.
type Workout struct {
	gorm.Model
	UserID      uint              `gorm:"index;not null" json:"user_id"`
	PerformedAt time.Time         `gorm:"index;not null" json:"performed_at"`
	Exercises   []WorkoutExercise `json:"exercises"`
}

type WorkoutExercise struct {
	gorm.Model
	WorkoutID  uint     `gorm:"index;not null" json:"workout_id"`
	ExerciseID uint     `gorm:"index;not null" json:"exercise_id"`
	Exercise   Exercise `json:"exercise"`
	Completed  int      `json:"completed"`
}
