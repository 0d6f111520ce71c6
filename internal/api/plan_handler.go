package api

import (
	"alcyxob/periodization-engine/internal/domain"
	"alcyxob/periodization-engine/internal/engine"
	"alcyxob/periodization-engine/internal/service"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanHandler serves plan generation and retrieval.
type PlanHandler struct {
	planningService service.PlanningService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planningService service.PlanningService) *PlanHandler {
	return &PlanHandler{planningService: planningService}
}

// --- Request/Response Structs ---

type GeneratePlanRequest struct {
	Level         domain.TrainingLevel `json:"level" binding:"omitempty,oneof=beginner intermediate advanced elite"`
	Goal          domain.TrainingGoal  `json:"goal"`
	Frequency     int                  `json:"frequency" binding:"required,min=1,max=7"`
	StartDate     time.Time            `json:"startDate" binding:"required"`
	DurationWeeks int                  `json:"durationWeeks" binding:"required,min=1,max=52"`
}

type WorkoutDayRequest struct {
	TargetMuscleGroups []domain.MuscleGroup `json:"targetMuscleGroups" binding:"required,min=1"`
	DayType            domain.DayType       `json:"dayType" binding:"required"`
}

type SnapshotURLResponse struct {
	URL string `json:"url"`
}

// --- Handler Methods ---

// GeneratePlan creates a new training plan for the authenticated user.
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	params := domain.PlanParams{
		Level:         req.Level,
		Goal:          req.Goal,
		Frequency:     req.Frequency,
		StartDate:     req.StartDate,
		DurationWeeks: req.DurationWeeks,
	}

	plan, err := h.planningService.GeneratePlan(c.Request.Context(), userID, params)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// ListPlans returns the user's plans, newest first.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plans, err := h.planningService.ListPlans(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list plans")
		return
	}
	if plans == nil {
		plans = []domain.Plan{}
	}
	c.JSON(http.StatusOK, plans)
}

// GetPlan returns one plan owned by the user.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathObjectID(c, "planId")
	if !ok {
		return
	}

	plan, err := h.planningService.GetPlan(c.Request.Context(), userID, planID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to get plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeletePlan removes a plan owned by the user.
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathObjectID(c, "planId")
	if !ok {
		return
	}

	if err := h.planningService.DeletePlan(c.Request.Context(), userID, planID); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete plan")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSnapshotURL returns a presigned download URL for the archived plan JSON.
func (h *PlanHandler) GetSnapshotURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathObjectID(c, "planId")
	if !ok {
		return
	}

	url, err := h.planningService.GetSnapshotURL(c.Request.Context(), userID, planID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to generate snapshot URL")
		return
	}
	c.JSON(http.StatusOK, SnapshotURLResponse{URL: url})
}

// BuildWorkoutDay selects exercises for one training day.
func (h *PlanHandler) BuildWorkoutDay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req WorkoutDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	day, err := h.planningService.BuildWorkoutDay(c.Request.Context(), userID, req.TargetMuscleGroups, req.DayType)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// --- Helpers ---

// currentUserID extracts the authenticated user's ObjectID from the context.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	idStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Authentication required")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity")
		return primitive.NilObjectID, false
	}
	return id, true
}

// pathObjectID parses an ObjectID path parameter.
func pathObjectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s format", name))
		return primitive.NilObjectID, false
	}
	return id, true
}

// abortWithEngineError maps engine error classes onto HTTP statuses.
func abortWithEngineError(c *gin.Context, err error) {
	var missing *engine.MissingConfigError
	var validation *engine.ValidationError
	var integrity *engine.ConfigIntegrityError
	var insufficient *engine.InsufficientExerciseDataError

	switch {
	case errors.As(err, &missing):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &validation):
		abortWithError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &insufficient):
		abortWithError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &integrity):
		abortWithError(c, http.StatusInternalServerError, err.Error())
	case errors.Is(err, service.ErrProfileRequired):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
