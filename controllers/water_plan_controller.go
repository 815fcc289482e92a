package controllers

import (
	"net/http"

	"healthtrack/models"
	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

type waterPlanRequest struct {
	Name        string  `json:"name" binding:"max=100"`
	DailyTarget float64 `json:"daily_target" binding:"required,gt=0"`
	Unit        string  `json:"unit" binding:"required,oneof=ml l floz cup pint"`
}

func (r waterPlanRequest) input() services.WaterPlanInput {
	return services.WaterPlanInput{
		Name:        r.Name,
		DailyTarget: r.DailyTarget,
		Unit:        models.WaterUnit(r.Unit),
	}
}

func ListWaterPlans(c *gin.Context) {
	page, limit := parsePagination(c)
	if serveListFromCache(c, services.ViewWaterPlans, page, limit) {
		return
	}
	plans, total, err := services.ListWaterPlans(currentUserID(c), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCachedPage(c, services.ViewWaterPlans, page, limit, plans, newMeta(page, limit, total))
}

func GetWaterPlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	plan, err := services.GetWaterPlan(currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, plan)
}

func CreateWaterPlan(c *gin.Context) {
	var body waterPlanRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err)
		return
	}

	userID := currentUserID(c)
	plan, err := services.CreateWaterPlan(userID, body.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.EmitUsage(userID, "water_plan.created")
	services.InvalidateViews(userID, services.ViewWaterPlans, services.ViewWater)
	respondData(c, http.StatusCreated, plan)
}

func UpdateWaterPlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body waterPlanRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err)
		return
	}

	userID := currentUserID(c)
	plan, err := services.UpdateWaterPlan(userID, id, body.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.InvalidateViews(userID, services.ViewWaterPlans, services.ViewWater)
	respondData(c, http.StatusOK, plan)
}

func DeleteWaterPlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID := currentUserID(c)
	if err := services.DeleteWaterPlan(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	services.InvalidateViews(userID, services.ViewWaterPlans, services.ViewWater)
	respondData(c, http.StatusOK, gin.H{"id": id})
}

func ActivateWaterPlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID := currentUserID(c)
	plan, err := services.ActivateWaterPlan(userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.InvalidateViews(userID, services.ViewWaterPlans, services.ViewWater)
	respondData(c, http.StatusOK, plan)
}
