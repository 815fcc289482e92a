package services

import (
	"time"

	"healthtrack/models"

	"gorm.io/gorm"
)

type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

type MealInput struct {
	Name        string
	EatenAt     time.Time
	ProteinUsed int
	CarbsUsed   int
	FatUsed     int
	VeggiesUsed int
	JunkUsed    int
	ImageKey    string
}

func (s *MealService) List(userID uint, page, limit int) ([]models.Meal, int64, error) {
	var total int64
	if err := s.db.Model(&models.Meal{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var meals []models.Meal
	err := s.db.
		Where("user_id = ?", userID).
		Order("eaten_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&meals).Error
	return meals, total, err
}

func (s *MealService) Get(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &meal, nil
}

func (s *MealService) Create(userID uint, in MealInput) (*models.Meal, error) {
	meal := &models.Meal{
		UserID:      userID,
		Name:        in.Name,
		EatenAt:     in.EatenAt,
		ProteinUsed: in.ProteinUsed,
		CarbsUsed:   in.CarbsUsed,
		FatUsed:     in.FatUsed,
		VeggiesUsed: in.VeggiesUsed,
		JunkUsed:    in.JunkUsed,
		ImageKey:    in.ImageKey,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Update(userID, mealID uint, in MealInput) (*models.Meal, error) {
	meal, err := s.Get(userID, mealID)
	if err != nil {
		return nil, err
	}

	meal.Name = in.Name
	meal.EatenAt = in.EatenAt
	meal.ProteinUsed = in.ProteinUsed
	meal.CarbsUsed = in.CarbsUsed
	meal.FatUsed = in.FatUsed
	meal.VeggiesUsed = in.VeggiesUsed
	meal.JunkUsed = in.JunkUsed
	if in.ImageKey != "" {
		meal.ImageKey = in.ImageKey
	}

	if err := s.db.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Delete(userID, mealID uint) error {
	meal, err := s.Get(userID, mealID)
	if err != nil {
		return err
	}
	return s.db.Delete(meal).Error
}
