package controllers

import (
	"encoding/json"
	"net/http"

	"healthtrack/config"
	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

// GetDashboard serves the aggregated views, from the view cache when a fresh
// render survives since the last mutation.
func GetDashboard(c *gin.Context) {
	userID := currentUserID(c)

	if cached, ok := services.GetCachedView(c.Request.Context(), services.ViewDashboard, userID); ok {
		c.Data(http.StatusOK, jsonContentType, cached)
		return
	}

	svc := services.NewDashboardService(config.DB)
	dashboard, err := svc.Build(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	payload, err := json.Marshal(gin.H{"data": dashboard})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.SetCachedView(c.Request.Context(), services.ViewDashboard, userID, payload)
	c.Data(http.StatusOK, jsonContentType, payload)
}
