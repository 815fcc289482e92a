package services

import (
	"healthtrack/config"
	"healthtrack/models"

	"gorm.io/gorm"
)

type PlanExerciseInput struct {
	ExerciseID  uint
	DailyTarget int
}

type WorkoutPlanInput struct {
	Name      string
	Exercises []PlanExerciseInput
}

func ListWorkoutPlans(userID uint, page, limit int) ([]models.WorkoutPlan, int64, error) {
	var total int64
	if err := config.DB.Model(&models.WorkoutPlan{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var plans []models.WorkoutPlan
	err := config.DB.
		Preload("Exercises.Exercise").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&plans).Error
	return plans, total, err
}

func GetWorkoutPlan(userID, planID uint) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := config.DB.
		Preload("Exercises.Exercise").
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &plan, nil
}

// ownedExerciseIDs fails with ErrNotFound when any referenced exercise does
// not belong to the user; cross-user references must look like missing rows.
func ownedExerciseIDs(tx *gorm.DB, userID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var count int64
	if err := tx.Model(&models.Exercise{}).
		Where("user_id = ? AND id IN ?", userID, ids).
		Distinct("id").
		Count(&count).Error; err != nil {
		return err
	}
	uniq := map[uint]struct{}{}
	for _, id := range ids {
		uniq[id] = struct{}{}
	}
	if count != int64(len(uniq)) {
		return ErrNotFound
	}
	return nil
}

func CreateWorkoutPlan(userID uint, in WorkoutPlanInput) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		ids := make([]uint, 0, len(in.Exercises))
		for _, e := range in.Exercises {
			ids = append(ids, e.ExerciseID)
		}
		if err := ownedExerciseIDs(tx, userID, ids); err != nil {
			return err
		}

		plan = models.WorkoutPlan{UserID: userID, Name: in.Name}
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}
		for _, e := range in.Exercises {
			row := models.WorkoutPlanExercise{
				WorkoutPlanID: plan.ID,
				ExerciseID:    e.ExerciseID,
				DailyTarget:   e.DailyTarget,
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
	return GetWorkoutPlan(userID, plan.ID)
}

// UpdateWorkoutPlan replaces the whole exercise-target list. Delete and
// recreate run in one transaction so readers never observe the empty state.
func UpdateWorkoutPlan(userID, planID uint, in WorkoutPlanInput) (*models.WorkoutPlan, error) {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var plan models.WorkoutPlan
		if err := tx.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error; err != nil {
			return notFoundOr(err)
		}

		ids := make([]uint, 0, len(in.Exercises))
		for _, e := range in.Exercises {
			ids = append(ids, e.ExerciseID)
		}
		if err := ownedExerciseIDs(tx, userID, ids); err != nil {
			return err
		}

		plan.Name = in.Name
		if err := tx.Save(&plan).Error; err != nil {
			return err
		}

		if err := tx.Where("workout_plan_id = ?", plan.ID).
			Delete(&models.WorkoutPlanExercise{}).Error; err != nil {
			return err
		}
		for _, e := range in.Exercises {
			row := models.WorkoutPlanExercise{
				WorkoutPlanID: plan.ID,
				ExerciseID:    e.ExerciseID,
				DailyTarget:   e.DailyTarget,
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
	return GetWorkoutPlan(userID, planID)
}

func DeleteWorkoutPlan(userID, planID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var plan models.WorkoutPlan
		if err := tx.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error; err != nil {
			return notFoundOr(err)
		}
		if err := tx.Where("workout_plan_id = ?", plan.ID).
			Delete(&models.WorkoutPlanExercise{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&plan).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ? AND active_workout_plan_id = ?", userID, planID).
			Update("active_workout_plan_id", nil).Error
	})
}

func ActivateWorkoutPlan(userID, planID uint) (*models.WorkoutPlan, error) {
	plan, err := GetWorkoutPlan(userID, planID)
	if err != nil {
		return nil, err
	}
	err = config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("active_workout_plan_id", planID).Error
	if err != nil {
		return nil, err
	}
	return plan, nil
}
