package api

import (
	"alcyxob/periodization-engine/internal/domain"
	"alcyxob/periodization-engine/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler serves the exercise catalog.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- Request/Response Structs ---

type ExerciseRequest struct {
	Name              string                    `json:"name" binding:"required"`
	Category          string                    `json:"category"`
	PrimaryMuscles    []domain.MuscleGroup      `json:"primaryMuscles" binding:"required,min=1"`
	SecondaryMuscles  []domain.MuscleGroup      `json:"secondaryMuscles"`
	Equipment         []string                  `json:"equipment"`
	Difficulty        domain.ExerciseDifficulty `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	IsCompound        bool                      `json:"isCompound"`
	Contraindications []string                  `json:"contraindications"`
}

func (r ExerciseRequest) toDomain() domain.Exercise {
	return domain.Exercise{
		Name:              r.Name,
		Category:          r.Category,
		PrimaryMuscles:    r.PrimaryMuscles,
		SecondaryMuscles:  r.SecondaryMuscles,
		Equipment:         r.Equipment,
		Difficulty:        r.Difficulty,
		IsCompound:        r.IsCompound,
		Contraindications: r.Contraindications,
	}
}

// --- Handler Methods ---

// CreateExercise adds a new exercise to the catalog. Trainer only.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	trainerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), trainerID, req.toDomain())
	if err != nil {
		abortWithExerciseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// GetCatalog lists the full exercise catalog.
func (h *ExerciseHandler) GetCatalog(c *gin.Context) {
	exercises, err := h.exerciseService.GetCatalog(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load exercise catalog")
		return
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}

// GetMyExercises lists exercises owned by the authenticated trainer.
func (h *ExerciseHandler) GetMyExercises(c *gin.Context) {
	trainerID, ok := currentUserID(c)
	if !ok {
		return
	}

	exercises, err := h.exerciseService.GetExercisesByTrainer(c.Request.Context(), trainerID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load exercises")
		return
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise returns one exercise by ID.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exerciseID, ok := pathObjectID(c, "exerciseId")
	if !ok {
		return
	}

	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), exerciseID)
	if err != nil {
		abortWithExerciseError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// UpdateExercise modifies an exercise owned by the trainer.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	trainerID, ok := currentUserID(c)
	if !ok {
		return
	}
	exerciseID, ok := pathObjectID(c, "exerciseId")
	if !ok {
		return
	}

	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercise := req.toDomain()
	exercise.ID = exerciseID

	updated, err := h.exerciseService.UpdateExercise(c.Request.Context(), trainerID, exercise)
	if err != nil {
		abortWithExerciseError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteExercise removes an exercise owned by the trainer.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	trainerID, ok := currentUserID(c)
	if !ok {
		return
	}
	exerciseID, ok := pathObjectID(c, "exerciseId")
	if !ok {
		return
	}

	if err := h.exerciseService.DeleteExercise(c.Request.Context(), trainerID, exerciseID); err != nil {
		abortWithExerciseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// abortWithExerciseError maps exercise service errors onto HTTP statuses.
func abortWithExerciseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrExerciseForbidden):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidExercise):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
