package services

import (
	"errors"
	"time"

	"healthtrack/config"
	"healthtrack/models"

	"gorm.io/gorm"
)

func ListWaterEntries(userID uint, page, limit int) ([]models.WaterEntry, int64, error) {
	var total int64
	if err := config.DB.Model(&models.WaterEntry{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.WaterEntry
	err := config.DB.
		Where("user_id = ?", userID).
		Order("drank_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entries).Error
	return entries, total, err
}

func AddWaterEntry(userID uint, amount float64, unit models.WaterUnit, drankAt time.Time) (*models.WaterEntry, error) {
	entry := &models.WaterEntry{
		UserID:  userID,
		Amount:  amount,
		Unit:    unit,
		DrankAt: drankAt,
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

type TodayIntake struct {
	Date        string  `json:"date"`
	FluidOunces float64 `json:"fluid_ounces"`
	TargetFlOz  float64 `json:"target_floz,omitempty"`
	HasTarget   bool    `json:"has_target"`
}

// GetTodayIntake sums today's entries in the client's timezone. Unlike the
// dashboard, water days are bucketed in loc, not the server zone.
func GetTodayIntake(userID uint, loc *time.Location) (*TodayIntake, error) {
	now := time.Now()
	start := dayStartIn(now, loc)
	end := start.Add(24 * time.Hour)

	var entries []models.WaterEntry
	if err := config.DB.
		Where("user_id = ? AND drank_at >= ? AND drank_at < ?", userID, start, end).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	out := &TodayIntake{Date: start.Format("2006-01-02")}
	for _, e := range entries {
		floz, err := e.Unit.ToFluidOunces(e.Amount)
		if err != nil {
			return nil, err
		}
		out.FluidOunces += floz
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, notFoundOr(err)
	}
	if user.ActiveWaterPlanID != nil {
		var plan models.WaterPlan
		err := config.DB.
			Where("id = ? AND user_id = ?", *user.ActiveWaterPlanID, userID).
			First(&plan).Error
		if err == nil {
			target, cerr := plan.Unit.ToFluidOunces(plan.DailyTarget)
			if cerr != nil {
				return nil, cerr
			}
			out.TargetFlOz = target
			out.HasTarget = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return out, nil
}
