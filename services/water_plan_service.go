package services

import (
	"healthtrack/config"
	"healthtrack/models"

	"gorm.io/gorm"
)

type WaterPlanInput struct {
	Name        string
	DailyTarget float64
	Unit        models.WaterUnit
}

func ListWaterPlans(userID uint, page, limit int) ([]models.WaterPlan, int64, error) {
	var total int64
	if err := config.DB.Model(&models.WaterPlan{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var plans []models.WaterPlan
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&plans).Error
	return plans, total, err
}

func GetWaterPlan(userID, planID uint) (*models.WaterPlan, error) {
	var plan models.WaterPlan
	err := config.DB.
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &plan, nil
}

func CreateWaterPlan(userID uint, in WaterPlanInput) (*models.WaterPlan, error) {
	plan := &models.WaterPlan{
		UserID:      userID,
		Name:        in.Name,
		DailyTarget: in.DailyTarget,
		Unit:        in.Unit,
	}
	if err := config.DB.Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func UpdateWaterPlan(userID, planID uint, in WaterPlanInput) (*models.WaterPlan, error) {
	plan, err := GetWaterPlan(userID, planID)
	if err != nil {
		return nil, err
	}

	plan.Name = in.Name
	plan.DailyTarget = in.DailyTarget
	plan.Unit = in.Unit

	if err := config.DB.Save(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func DeleteWaterPlan(userID, planID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var plan models.WaterPlan
		if err := tx.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error; err != nil {
			return notFoundOr(err)
		}
		if err := tx.Delete(&plan).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ? AND active_water_plan_id = ?", userID, planID).
			Update("active_water_plan_id", nil).Error
	})
}

func ActivateWaterPlan(userID, planID uint) (*models.WaterPlan, error) {
	plan, err := GetWaterPlan(userID, planID)
	if err != nil {
		return nil, err
	}
	err = config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("active_water_plan_id", planID).Error
	if err != nil {
		return nil, err
	}
	return plan, nil
}
