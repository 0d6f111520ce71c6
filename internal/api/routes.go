package api

import (
	"alcyxob/periodization-engine/internal/domain"
	"alcyxob/periodization-engine/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	fatigueScale string,
	authService service.AuthService,
	planningService service.PlanningService,
	assessmentService service.AssessmentService,
	exerciseService service.ExerciseService,
) {
	authHandler := NewAuthHandler(authService)
	planHandler := NewPlanHandler(planningService)
	assessmentHandler := NewAssessmentHandler(assessmentService, fatigueScale)
	exerciseHandler := NewExerciseHandler(exerciseService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Profile ---
		protected.PUT("/profile", assessmentHandler.UpdateProfile)

		// --- Plan Routes ---
		planGroup := protected.Group("/plans")
		{
			planGroup.POST("", planHandler.GeneratePlan)
			planGroup.GET("", planHandler.ListPlans)
			planGroup.GET("/:planId", planHandler.GetPlan)
			planGroup.DELETE("/:planId", planHandler.DeletePlan)
			planGroup.GET("/:planId/snapshot-url", planHandler.GetSnapshotURL)
		}

		// POST /api/v1/workout-days - exercise selection for a single day
		protected.POST("/workout-days", planHandler.BuildWorkoutDay)

		// --- Assessment Routes ---
		assessmentGroup := protected.Group("/assessments")
		{
			assessmentGroup.POST("", assessmentHandler.LogAssessment)
			assessmentGroup.GET("", assessmentHandler.GetHistory)
			assessmentGroup.GET("/state", assessmentHandler.GetCurrentState)
			assessmentGroup.GET("/deload-check", assessmentHandler.CheckDeload)
		}

		// --- Exercise Routes ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.GetCatalog)
			exerciseGroup.GET("/mine", RoleMiddleware(domain.RoleTrainer), exerciseHandler.GetMyExercises)
			exerciseGroup.GET("/:exerciseId", exerciseHandler.GetExercise)
			exerciseGroup.POST("", RoleMiddleware(domain.RoleTrainer), exerciseHandler.CreateExercise)
			exerciseGroup.PUT("/:exerciseId", RoleMiddleware(domain.RoleTrainer), exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:exerciseId", RoleMiddleware(domain.RoleTrainer), exerciseHandler.DeleteExercise)
		}
	}
}
