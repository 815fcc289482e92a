package controllers

import (
	"net/http"
	"time"

	"healthtrack/config"
	"healthtrack/services"
	"healthtrack/utils"

	"github.com/gin-gonic/gin"
)

type mealRequest struct {
	Name        string     `json:"name" binding:"max=200"`
	EatenAt     *time.Time `json:"eaten_at"`
	ProteinUsed int        `json:"protein_used" binding:"gte=0"`
	CarbsUsed   int        `json:"carbs_used" binding:"gte=0"`
	FatUsed     int        `json:"fat_used" binding:"gte=0"`
	VeggiesUsed int        `json:"veggies_used" binding:"gte=0"`
	JunkUsed    int        `json:"junk_used" binding:"gte=0"`

	// optional "data:<mime>;base64,..." photo
	Image string `json:"image"`
}

func (r mealRequest) input(imageKey string) services.MealInput {
	eatenAt := time.Now()
	if r.EatenAt != nil {
		eatenAt = *r.EatenAt
	}
	return services.MealInput{
		Name:        r.Name,
		EatenAt:     eatenAt,
		ProteinUsed: r.ProteinUsed,
		CarbsUsed:   r.CarbsUsed,
		FatUsed:     r.FatUsed,
		VeggiesUsed: r.VeggiesUsed,
		JunkUsed:    r.JunkUsed,
		ImageKey:    imageKey,
	}
}

func uploadMealImage(c *gin.Context, base64Data string) (string, bool) {
	if base64Data == "" {
		return "", true
	}
	key, err := utils.UploadBase64Image(base64Data, "meal-images")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid image payload")
		return "", false
	}
	return key, true
}

func ListMeals(c *gin.Context) {
	page, limit := parsePagination(c)
	if serveListFromCache(c, services.ViewMeals, page, limit) {
		return
	}
	svc := services.NewMealService(config.DB)
	meals, total, err := svc.List(currentUserID(c), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCachedPage(c, services.ViewMeals, page, limit, meals, newMeta(page, limit, total))
}

func GetMeal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	svc := services.NewMealService(config.DB)
	meal, err := svc.Get(currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, meal)
}

func LogMeal(c *gin.Context) {
	var body mealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err)
		return
	}

	imageKey, ok := uploadMealImage(c, body.Image)
	if !ok {
		return
	}

	userID := currentUserID(c)
	svc := services.NewMealService(config.DB)
	meal, err := svc.Create(userID, body.input(imageKey))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.EmitUsage(userID, "meal.logged")
	services.InvalidateViews(userID, services.ViewMeals, services.ViewDashboard)
	respondData(c, http.StatusCreated, meal)
}

func UpdateMeal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body mealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err)
		return
	}

	imageKey, ok := uploadMealImage(c, body.Image)
	if !ok {
		return
	}

	userID := currentUserID(c)
	svc := services.NewMealService(config.DB)
	meal, err := svc.Update(userID, id, body.input(imageKey))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.InvalidateViews(userID, services.ViewMeals, services.ViewDashboard)
	respondData(c, http.StatusOK, meal)
}

func DeleteMeal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID := currentUserID(c)
	svc := services.NewMealService(config.DB)
	if err := svc.Delete(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	services.InvalidateViews(userID, services.ViewMeals, services.ViewDashboard)
	respondData(c, http.StatusOK, gin.H{"id": id})
}
