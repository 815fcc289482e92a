package services

import (
	"time"

	"healthtrack/config"
	"healthtrack/models"

	"gorm.io/gorm"
)

type WorkoutExerciseInput struct {
	ExerciseID uint
	Completed  int
}

type WorkoutInput struct {
	PerformedAt time.Time
	Exercises   []WorkoutExerciseInput
}

func ListWorkouts(userID uint, page, limit int) ([]models.Workout, int64, error) {
	var total int64
	if err := config.DB.Model(&models.Workout{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var workouts []models.Workout
	err := config.DB.
		Preload("Exercises.Exercise").
		Where("user_id = ?", userID).
		Order("performed_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&workouts).Error
	return workouts, total, err
}

func GetWorkout(userID, workoutID uint) (*models.Workout, error) {
	var workout models.Workout
	err := config.DB.
		Preload("Exercises.Exercise").
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &workout, nil
}

func CreateWorkout(userID uint, in WorkoutInput) (*models.Workout, error) {
	var workout models.Workout
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		ids := make([]uint, 0, len(in.Exercises))
		for _, e := range in.Exercises {
			ids = append(ids, e.ExerciseID)
		}
		if err := ownedExerciseIDs(tx, userID, ids); err != nil {
			return err
		}

		workout = models.Workout{UserID: userID, PerformedAt: in.PerformedAt}
		if err := tx.Create(&workout).Error; err != nil {
			return err
		}
		for _, e := range in.Exercises {
			row := models.WorkoutExercise{
				WorkoutID:  workout.ID,
				ExerciseID: e.ExerciseID,
				Completed:  e.Completed,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetWorkout(userID, workout.ID)
}

// UpdateWorkout replaces the completed-exercise list atomically.
func UpdateWorkout(userID, workoutID uint, in WorkoutInput) (*models.Workout, error) {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var workout models.Workout
		if err := tx.Where("id = ? AND user_id = ?", workoutID, userID).First(&workout).Error; err != nil {
			return notFoundOr(err)
		}

		ids := make([]uint, 0, len(in.Exercises))
		for _, e := range in.Exercises {
			ids = append(ids, e.ExerciseID)
		}
		if err := ownedExerciseIDs(tx, userID, ids); err != nil {
			return err
		}

		workout.PerformedAt = in.PerformedAt
		if err := tx.Save(&workout).Error; err != nil {
			return err
		}

		if err := tx.Where("workout_id = ?", workout.ID).
			Delete(&models.WorkoutExercise{}).Error; err != nil {
			return err
		}
		for _, e := range in.Exercises {
			row := models.WorkoutExercise{
				WorkoutID:  workout.ID,
				ExerciseID: e.ExerciseID,
				Completed:  e.Completed,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetWorkout(userID, workoutID)
}

func DeleteWorkout(userID, workoutID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var workout models.Workout
		if err := tx.Where("id = ? AND user_id = ?", workoutID, userID).First(&workout).Error; err != nil {
			return notFoundOr(err)
		}
		if err := tx.Where("workout_id = ?", workout.ID).
			Delete(&models.WorkoutExercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&workout).Error
	})
}

// ---------- Exercises ----------

func ListExercises(userID uint) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := config.DB.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&exercises).Error
	return exercises, err
}

func CreateExercise(userID uint, name, unit string) (*models.Exercise, error) {
	ex := &models.Exercise{UserID: userID, Name: name, Unit: unit}
	if err := config.DB.Create(ex).Error; err != nil {
		return nil, err
	}
	return ex, nil
}
