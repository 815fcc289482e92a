package controllers

import (
	"net/http"
	"time"

	"healthtrack/middlewares"
	"healthtrack/models"
	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

func ListWaterEntries(c *gin.Context) {
	page, limit := parsePagination(c)
	if serveListFromCache(c, services.ViewWater, page, limit) {
		return
	}
	entries, total, err := services.ListWaterEntries(currentUserID(c), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCachedPage(c, services.ViewWater, page, limit, entries, newMeta(page, limit, total))
}

func AddWaterEntry(c *gin.Context) {
	var body struct {
		Amount  float64    `json:"amount" binding:"required,gt=0"`
		Unit    string     `json:"unit" binding:"required,oneof=ml l floz cup pint"`
		DrankAt *time.Time `json:"drank_at"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err)
		return
	}

	drankAt := time.Now()
	if body.DrankAt != nil {
		drankAt = *body.DrankAt
	}

	userID := currentUserID(c)
	entry, err := services.AddWaterEntry(userID, body.Amount, models.WaterUnit(body.Unit), drankAt)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.EmitUsage(userID, "water.logged")
	services.InvalidateViews(userID, services.ViewWater, services.ViewDashboard)
	respondData(c, http.StatusCreated, entry)
}

// GetTodayWater reports today's intake against the active plan target, with
// "today" resolved in the client's tz cookie location.
func GetTodayWater(c *gin.Context) {
	loc := middlewares.LocationFromContext(c)
	intake, err := services.GetTodayIntake(currentUserID(c), loc)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, intake)
}
