package controllers

import (
	"net/http"

	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

type planRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	ProteinSlots int    `json:"protein_slots" binding:"gte=0"`
	CarbSlots    int    `json:"carb_slots" binding:"gte=0"`
	FatSlots     int    `json:"fat_slots" binding:"gte=0"`
	VeggieSlots  int    `json:"veggie_slots" binding:"gte=0"`
	JunkSlots    int    `json:"junk_slots" binding:"gte=0"`
}

func (r planRequest) input() services.PlanInput {
	return services.PlanInput{
		Name:         r.Name,
		ProteinSlots: r.ProteinSlots,
		CarbSlots:    r.CarbSlots,
		FatSlots:     r.FatSlots,
		VeggieSlots:  r.VeggieSlots,
		JunkSlots:    r.JunkSlots,
	}
}

func ListPlans(c *gin.Context) {
	page, limit := parsePagination(c)
	if serveListFromCache(c, services.ViewPlans, page, limit) {
		return
	}
	plans, total, err := services.ListPlans(currentUserID(c), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCachedPage(c, services.ViewPlans, page, limit, plans, newMeta(page, limit, total))
}

func GetPlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	plan, err := services.GetPlan(currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, plan)
}

func CreatePlan(c *gin.Context) {
	var body planRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err)
		return
	}

	userID := currentUserID(c)
	plan, err := services.CreatePlan(userID, body.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.EmitUsage(userID, "plan.created")
	services.InvalidateViews(userID, services.ViewPlans, services.ViewDashboard)
	respondData(c, http.StatusCreated, plan)
}

func UpdatePlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body planRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err)
		return
	}

	userID := currentUserID(c)
	plan, err := services.UpdatePlan(userID, id, body.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.InvalidateViews(userID, services.ViewPlans, services.ViewDashboard)
	respondData(c, http.StatusOK, plan)
}

func DeletePlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID := currentUserID(c)
	if err := services.DeletePlan(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	services.InvalidateViews(userID, services.ViewPlans, services.ViewDashboard)
	respondData(c, http.StatusOK, gin.H{"id": id})
}

func ActivatePlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID := currentUserID(c)
	plan, err := services.ActivatePlan(userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.InvalidateViews(userID, services.ViewPlans, services.ViewDashboard)
	respondData(c, http.StatusOK, plan)
}
