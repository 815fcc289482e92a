package routes

import (
	"healthtrack/controllers"
	"healthtrack/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Public image proxy
	r.GET("/images/*path", controllers.ProxyImage)

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	api.Use(middlewares.ClientTimezone())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)

		api.GET("/dashboard", controllers.GetDashboard)

		plans := api.Group("/plans")
		{
			plans.GET("", controllers.ListPlans)
			plans.POST("", controllers.CreatePlan)
			plans.GET("/:id", controllers.GetPlan)
			plans.PUT("/:id", controllers.UpdatePlan)
			plans.PATCH("/:id", controllers.UpdatePlan)
			plans.DELETE("/:id", controllers.DeletePlan)
			plans.POST("/:id/activate", controllers.ActivatePlan)
		}

		waterPlans := api.Group("/water-plans")
		{
			waterPlans.GET("", controllers.ListWaterPlans)
			waterPlans.POST("", controllers.CreateWaterPlan)
			waterPlans.GET("/:id", controllers.GetWaterPlan)
			waterPlans.PATCH("/:id", controllers.UpdateWaterPlan)
			waterPlans.DELETE("/:id", controllers.DeleteWaterPlan)
			waterPlans.POST("/:id/activate", controllers.ActivateWaterPlan)
		}

		workoutPlans := api.Group("/workout-plans")
		{
			workoutPlans.GET("", controllers.ListWorkoutPlans)
			workoutPlans.POST("", controllers.CreateWorkoutPlan)
			workoutPlans.GET("/:id", controllers.GetWorkoutPlan)
			workoutPlans.PUT("/:id", controllers.UpdateWorkoutPlan)
			workoutPlans.PATCH("/:id", controllers.UpdateWorkoutPlan)
			workoutPlans.DELETE("/:id", controllers.DeleteWorkoutPlan)
			workoutPlans.POST("/:id/activate", controllers.ActivateWorkoutPlan)
		}

		workouts := api.Group("/workouts")
		{
			workouts.GET("", controllers.ListWorkouts)
			workouts.POST("", controllers.CreateWorkout)
			workouts.GET("/:id", controllers.GetWorkout)
			workouts.PUT("/:id", controllers.UpdateWorkout)
			workouts.PATCH("/:id", controllers.UpdateWorkout)
			workouts.DELETE("/:id", controllers.DeleteWorkout)
		}

		api.GET("/exercises", controllers.ListExercises)
		api.POST("/exercises", controllers.CreateExercise)

		api.GET("/water", controllers.ListWaterEntries)
		api.POST("/water", controllers.AddWaterEntry)
		api.GET("/water/today", controllers.GetTodayWater)

		meals := api.Group("/meals")
		{
			meals.GET("", controllers.ListMeals)
			meals.POST("", controllers.LogMeal)
			meals.GET("/:id", controllers.GetMeal)
			meals.PUT("/:id", controllers.UpdateMeal)
			meals.DELETE("/:id", controllers.DeleteMeal)
		}

		journal := api.Group("/journal")
		{
			journal.GET("", controllers.ListJournalEntries)
			journal.POST("", controllers.CreateJournalEntry)
			journal.GET("/:id", controllers.GetJournalEntry)
			journal.PUT("/:id", controllers.UpdateJournalEntry)
			journal.DELETE("/:id", controllers.DeleteJournalEntry)
		}

		api.GET("/followers", controllers.ListFollowers)
		api.DELETE("/followers/:userId", controllers.RemoveFollower)

		followRequests := api.Group("/follow-requests")
		{
			followRequests.GET("", controllers.ListFollowRequests)
			followRequests.POST("", controllers.CreateFollowRequest)
			followRequests.POST("/:token/accept", controllers.AcceptFollowRequest)
			followRequests.POST("/:token/reject", controllers.RejectFollowRequest)
		}
	}

	return r
}
