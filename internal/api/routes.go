package api

import (
	"fitlog/fitness-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRoutes wires middleware and all endpoint groups onto the engine.
func SetupRoutes(
	router *gin.Engine,
	dbClient *mongo.Client,
	dbName string,
	exerciseService service.ExerciseService,
	workoutService service.WorkoutService,
	sessionService service.SessionService,
) {
	statusHandler := NewStatusHandler(dbClient, dbName)
	exerciseHandler := NewExerciseHandler(exerciseService)
	workoutHandler := NewWorkoutHandler(workoutService)
	sessionHandler := NewSessionHandler(sessionService)

	router.Use(CORSMiddleware())
	router.Use(RequestIDMiddleware())

	// Diagnostics
	router.GET("/", statusHandler.Root)
	router.GET("/test", statusHandler.TestDatabase)

	apiGroup := router.Group("/api")
	{
		exerciseGroup := apiGroup.Group("/exercises")
		{
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("", exerciseHandler.ListExercises)
		}

		workoutGroup := apiGroup.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("", workoutHandler.ListWorkouts)
		}

		sessionGroup := apiGroup.Group("/sessions")
		{
			sessionGroup.POST("", sessionHandler.LogSession)
			sessionGroup.GET("", sessionHandler.ListSessions)
		}
	}
}
