package api

import (
	"alcyxob/periodization-engine/internal/domain"
	"alcyxob/periodization-engine/internal/service"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// percentScale marks deployments whose clients submit 0-100 marker values.
const percentScale = "0-100"

// AssessmentHandler serves fatigue/recovery logging and deload checks.
type AssessmentHandler struct {
	assessmentService service.AssessmentService
	fatigueScale      string
}

// NewAssessmentHandler creates a new AssessmentHandler. fatigueScale is the
// scale clients submit on: "0-10" (canonical) or "0-100".
func NewAssessmentHandler(assessmentService service.AssessmentService, fatigueScale string) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
		fatigueScale:      fatigueScale,
	}
}

// --- Request/Response Structs ---

type LogAssessmentRequest struct {
	Fatigue  domain.FatigueMarkers    `json:"fatigue" binding:"required"`
	Recovery domain.RecoveryMarkers   `json:"recovery" binding:"required"`
	Response *domain.TrainingResponse `json:"response,omitempty"`
}

type LogAssessmentResponse struct {
	Entry *domain.FatigueLogEntry        `json:"entry"`
	State *domain.FatigueManagementState `json:"state"`
}

type UpdateProfileRequest struct {
	Level               domain.TrainingLevel `json:"level" binding:"required,oneof=beginner intermediate advanced elite"`
	Goal                domain.TrainingGoal  `json:"goal" binding:"required"`
	Limitations         []string             `json:"limitations"`
	IndividualTolerance float64              `json:"individualTolerance" binding:"omitempty,gt=0,lte=2"`
}

// --- Handler Methods ---

// LogAssessment validates, scores and stores a set of markers.
func (h *AssessmentHandler) LogAssessment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req LogAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	fatigue := req.Fatigue
	recovery := req.Recovery
	if h.fatigueScale == percentScale {
		fatigue = normalizeFatigueMarkers(fatigue)
		recovery = normalizeRecoveryMarkers(recovery)
	}

	response := domain.NeutralTrainingResponse()
	if req.Response != nil {
		response = *req.Response
	}

	entry, state, err := h.assessmentService.LogAssessment(c.Request.Context(), userID, fatigue, recovery, response)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, LogAssessmentResponse{Entry: entry, State: state})
}

// GetCurrentState returns the readiness snapshot for the latest assessment.
func (h *AssessmentHandler) GetCurrentState(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	state, err := h.assessmentService.GetCurrentState(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoAssessments) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load fatigue state")
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetHistory returns recent assessments, newest first.
func (h *AssessmentHandler) GetHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			abortWithError(c, http.StatusBadRequest, "limit must be an integer between 1 and 100")
			return
		}
		limit = parsed
	}

	entries, err := h.assessmentService.GetHistory(c.Request.Context(), userID, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load assessment history")
		return
	}
	if entries == nil {
		entries = []domain.FatigueLogEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// CheckDeload evaluates whether the user needs a deload now.
func (h *AssessmentHandler) CheckDeload(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recommendation, err := h.assessmentService.CheckDeload(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoAssessments) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, recommendation)
}

// UpdateProfile stores the training profile used by generation and scoring.
func (h *AssessmentHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.assessmentService.UpdateTrainingProfile(c.Request.Context(), userID, req.Level, req.Goal, req.Limitations, req.IndividualTolerance)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Scale Normalization ---

// normalizeFatigueMarkers maps percent-scale submissions onto the canonical
// marker ranges. StrengthDecrease and RestingHeartRateDelta are already
// absolute quantities and pass through unchanged.
func normalizeFatigueMarkers(m domain.FatigueMarkers) domain.FatigueMarkers {
	m.RPEIncrease = m.RPEIncrease / 10
	m.Soreness = m.Soreness / 10
	m.SleepQuality = m.SleepQuality / 10
	m.Motivation = m.Motivation / 10
	m.MoodScore = m.MoodScore / 10
	m.StressScore = m.StressScore / 10
	m.AppetiteChange = m.AppetiteChange / 10
	m.TechnicalProficiency = m.TechnicalProficiency / 10
	return m
}

// normalizeRecoveryMarkers maps percent-scale submissions onto the canonical
// marker ranges. SleepHours is absolute and passes through unchanged.
func normalizeRecoveryMarkers(m domain.RecoveryMarkers) domain.RecoveryMarkers {
	m.SleepQuality = m.SleepQuality / 10
	m.Nutrition = m.Nutrition / 10
	m.Hydration = m.Hydration / 10
	m.StressManagement = m.StressManagement / 10
	return m
}
