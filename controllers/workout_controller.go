package controllers

import (
	"net/http"
	"time"

	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

type workoutExerciseRequest struct {
	ExerciseID uint `json:"exercise_id" binding:"required"`
	Completed  int  `json:"completed" binding:"gte=0"`
}

type workoutRequest struct {
	PerformedAt time.Time                `json:"performed_at" binding:"required"`
	Exercises   []workoutExerciseRequest `json:"exercises" binding:"dive"`
}

func (r workoutRequest) input() services.WorkoutInput {
	in := services.WorkoutInput{PerformedAt: r.PerformedAt}
	for _, e := range r.Exercises {
		in.Exercises = append(in.Exercises, services.WorkoutExerciseInput{
			ExerciseID: e.ExerciseID,
			Completed:  e.Completed,
		})
	}
	return in
}

func ListWorkouts(c *gin.Context) {
	page, limit := parsePagination(c)
	if serveListFromCache(c, services.ViewWorkouts, page, limit) {
		return
	}
	workouts, total, err := services.ListWorkouts(currentUserID(c), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCachedPage(c, services.ViewWorkouts, page, limit, workouts, newMeta(page, limit, total))
}

func GetWorkout(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	workout, err := services.GetWorkout(currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, workout)
}

func CreateWorkout(c *gin.Context) {
	var body workoutRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err)
		return
	}

	userID := currentUserID(c)
	workout, err := services.CreateWorkout(userID, body.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.EmitUsage(userID, "workout.logged")
	services.InvalidateViews(userID, services.ViewWorkouts, services.ViewDashboard)
	respondData(c, http.StatusCreated, workout)
}

func UpdateWorkout(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body workoutRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err)
		return
	}

	userID := currentUserID(c)
	workout, err := services.UpdateWorkout(userID, id, body.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.InvalidateViews(userID, services.ViewWorkouts, services.ViewDashboard)
	respondData(c, http.StatusOK, workout)
}

func DeleteWorkout(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID := currentUserID(c)
	if err := services.DeleteWorkout(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	services.InvalidateViews(userID, services.ViewWorkouts, services.ViewDashboard)
	respondData(c, http.StatusOK, gin.H{"id": id})
}
