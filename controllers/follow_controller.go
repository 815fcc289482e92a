package controllers

import (
	"net/http"
	"strings"
	"time"

	"healthtrack/config"
	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

// FollowRequestTTL is how long an invitation stays acceptable; set from
// configuration at startup.
var FollowRequestTTL = 72 * time.Hour

func CreateFollowRequest(c *gin.Context) {
	var body struct {
		TargetEmail string `json:"target_email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err)
		return
	}

	if strings.EqualFold(body.TargetEmail, c.GetString("email")) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": gin.H{"target_email": "cannot follow yourself"},
		})
		return
	}

	userID := currentUserID(c)
	svc := services.NewFollowService(config.DB)
	req, err := svc.CreateRequest(userID, body.TargetEmail, FollowRequestTTL)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.EmitUsage(userID, "follow_request.created")
	respondData(c, http.StatusCreated, req)
}

func ListFollowRequests(c *gin.Context) {
	svc := services.NewFollowService(config.DB)
	reqs, err := svc.ListIncoming(c.GetString("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, reqs)
}

func AcceptFollowRequest(c *gin.Context) {
	token := c.Param("token")
	svc := services.NewFollowService(config.DB)
	userID := currentUserID(c)
	req, err := svc.Accept(token, userID, c.GetString("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.EmitUsage(userID, "follow_request.accepted")
	respondData(c, http.StatusOK, req)
}

func RejectFollowRequest(c *gin.Context) {
	token := c.Param("token")
	svc := services.NewFollowService(config.DB)
	userID := currentUserID(c)
	req, err := svc.Reject(token, userID, c.GetString("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.EmitUsage(userID, "follow_request.rejected")
	respondData(c, http.StatusOK, req)
}

func ListFollowers(c *gin.Context) {
	svc := services.NewFollowService(config.DB)
	followers, err := svc.Followers(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, followers)
}

func RemoveFollower(c *gin.Context) {
	followerID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	svc := services.NewFollowService(config.DB)
	if err := svc.RemoveFollower(currentUserID(c), followerID); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"id": followerID})
}
