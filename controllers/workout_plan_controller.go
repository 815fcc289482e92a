package controllers

import (
	"net/http"

	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

type planExerciseRequest struct {
	ExerciseID  uint `json:"exercise_id" binding:"required"`
	DailyTarget int  `json:"daily_target" binding:"gte=0"`
}

type workoutPlanRequest struct {
	Name      string                `json:"name" binding:"required,max=100"`
	Exercises []planExerciseRequest `json:"exercises" binding:"dive"`
}

func (r workoutPlanRequest) input() services.WorkoutPlanInput {
	in := services.WorkoutPlanInput{Name: r.Name}
	for _, e := range r.Exercises {
		in.Exercises = append(in.Exercises, services.PlanExerciseInput{
			ExerciseID:  e.ExerciseID,
			DailyTarget: e.DailyTarget,
		})
	}
	return in
}

func ListWorkoutPlans(c *gin.Context) {
	page, limit := parsePagination(c)
	if serveListFromCache(c, services.ViewWorkoutPlans, page, limit) {
		return
	}
	plans, total, err := services.ListWorkoutPlans(currentUserID(c), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCachedPage(c, services.ViewWorkoutPlans, page, limit, plans, newMeta(page, limit, total))
}

func GetWorkoutPlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	plan, err := services.GetWorkoutPlan(currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, plan)
}

func CreateWorkoutPlan(c *gin.Context) {
	var body workoutPlanRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err)
		return
	}

	userID := currentUserID(c)
	plan, err := services.CreateWorkoutPlan(userID, body.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.EmitUsage(userID, "workout_plan.created")
	services.InvalidateViews(userID, services.ViewWorkoutPlans, services.ViewWorkouts)
	respondData(c, http.StatusCreated, plan)
}

func UpdateWorkoutPlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body workoutPlanRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err)
		return
	}

	userID := currentUserID(c)
	plan, err := services.UpdateWorkoutPlan(userID, id, body.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.InvalidateViews(userID, services.ViewWorkoutPlans, services.ViewWorkouts)
	respondData(c, http.StatusOK, plan)
}

func DeleteWorkoutPlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID := currentUserID(c)
	if err := services.DeleteWorkoutPlan(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	services.InvalidateViews(userID, services.ViewWorkoutPlans, services.ViewWorkouts)
	respondData(c, http.StatusOK, gin.H{"id": id})
}

func ActivateWorkoutPlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID := currentUserID(c)
	plan, err := services.ActivateWorkoutPlan(userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.InvalidateViews(userID, services.ViewWorkoutPlans, services.ViewWorkouts)
	respondData(c, http.StatusOK, plan)
}

// ---------- Exercises ----------

func ListExercises(c *gin.Context) {
	exercises, err := services.ListExercises(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, exercises)
}

func CreateExercise(c *gin.Context) {
	var body struct {
		Name string `json:"name" binding:"required,max=100"`
		Unit string `json:"unit" binding:"max=32"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err)
		return
	}

	ex, err := services.CreateExercise(currentUserID(c), body.Name, body.Unit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, ex)
}
