package services

import (
	"healthtrack/config"
	"healthtrack/models"

	"gorm.io/gorm"
)

type PlanInput struct {
	Name         string
	ProteinSlots int
	CarbSlots    int
	FatSlots     int
	VeggieSlots  int
	JunkSlots    int
}

func ListPlans(userID uint, page, limit int) ([]models.Plan, int64, error) {
	var total int64
	if err := config.DB.Model(&models.Plan{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var plans []models.Plan
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&plans).Error
	return plans, total, err
}

func GetPlan(userID, planID uint) (*models.Plan, error) {
	var plan models.Plan
	err := config.DB.
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &plan, nil
}

func CreatePlan(userID uint, in PlanInput) (*models.Plan, error) {
	plan := &models.Plan{
		UserID:       userID,
		Name:         in.Name,
		ProteinSlots: in.ProteinSlots,
		CarbSlots:    in.CarbSlots,
		FatSlots:     in.FatSlots,
		VeggieSlots:  in.VeggieSlots,
		JunkSlots:    in.JunkSlots,
	}
	if err := config.DB.Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func UpdatePlan(userID, planID uint, in PlanInput) (*models.Plan, error) {
	plan, err := GetPlan(userID, planID)
	if err != nil {
		return nil, err
	}

	plan.Name = in.Name
	plan.ProteinSlots = in.ProteinSlots
	plan.CarbSlots = in.CarbSlots
	plan.FatSlots = in.FatSlots
	plan.VeggieSlots = in.VeggieSlots
	plan.JunkSlots = in.JunkSlots

	if err := config.DB.Save(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

// DeletePlan removes the plan and, in the same transaction, clears the owner's
// active pointer when it referenced the deleted plan. Nothing cascades at the
// DB level, so the clear must not be skipped.
func DeletePlan(userID, planID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var plan models.Plan
		if err := tx.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error; err != nil {
			return notFoundOr(err)
		}
		if err := tx.Delete(&plan).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ? AND active_plan_id = ?", userID, planID).
			Update("active_plan_id", nil).Error
	})
}

// ActivatePlan points the user at one of their own plans.
func ActivatePlan(userID, planID uint) (*models.Plan, error) {
	plan, err := GetPlan(userID, planID)
	if err != nil {
		return nil, err
	}
	err = config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("active_plan_id", planID).Error
	if err != nil {
		return nil, err
	}
	return plan, nil
}
