package service

import (
	"alcyxob/periodization-engine/internal/domain"
	"alcyxob/periodization-engine/internal/engine"
	"alcyxob/periodization-engine/internal/repository"
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNoAssessments = errors.New("no fatigue assessments logged for user")

// DeloadRecommendation is the outcome of a deload check.
type DeloadRecommendation struct {
	Needed   bool                   `json:"needed"`
	Strategy *domain.DeloadStrategy `json:"strategy,omitempty"`
}

// AssessmentService scores fatigue and recovery markers, maintains the
// per-user fatigue log and answers deload checks against it.
type AssessmentService interface {
	LogAssessment(ctx context.Context, userID primitive.ObjectID, fatigue domain.FatigueMarkers, recovery domain.RecoveryMarkers, response domain.TrainingResponse) (*domain.FatigueLogEntry, *domain.FatigueManagementState, error)
	GetCurrentState(ctx context.Context, userID primitive.ObjectID) (*domain.FatigueManagementState, error)
	GetHistory(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.FatigueLogEntry, error)
	CheckDeload(ctx context.Context, userID primitive.ObjectID) (*DeloadRecommendation, error)
	UpdateTrainingProfile(ctx context.Context, userID primitive.ObjectID, level domain.TrainingLevel, goal domain.TrainingGoal, limitations []string, tolerance float64) error
}

type assessmentService struct {
	fatigueRepo repository.FatigueLogRepository
	userRepo    repository.UserRepository
}

// NewAssessmentService creates a new AssessmentService.
func NewAssessmentService(fatigueRepo repository.FatigueLogRepository, userRepo repository.UserRepository) AssessmentService {
	return &assessmentService{
		fatigueRepo: fatigueRepo,
		userRepo:    userRepo,
	}
}

// LogAssessment validates and scores the submitted markers, appends a log
// entry and returns the resulting readiness state.
func (s *assessmentService) LogAssessment(ctx context.Context, userID primitive.ObjectID, fatigue domain.FatigueMarkers, recovery domain.RecoveryMarkers, response domain.TrainingResponse) (*domain.FatigueLogEntry, *domain.FatigueManagementState, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	level := user.Level
	if level == "" {
		level = domain.LevelBeginner
	}

	fatigueScore, err := engine.ScoreFatigue(fatigue, level, user.Goal, user.Tolerance())
	if err != nil {
		return nil, nil, err
	}
	recoveryScore, err := engine.ScoreRecovery(recovery)
	if err != nil {
		return nil, nil, err
	}

	entry := &domain.FatigueLogEntry{
		UserID:        userID,
		Fatigue:       fatigue,
		Recovery:      recovery,
		Response:      response,
		FatigueScore:  fatigueScore,
		RecoveryScore: recoveryScore,
		LoggedAt:      time.Now().UTC(),
	}

	entryID, err := s.fatigueRepo.Append(ctx, entry)
	if err != nil {
		return nil, nil, err
	}
	entry.ID = entryID

	state := engine.AssessFatigueState(fatigueScore, recoveryScore)

	log.Printf("INFO: Logged assessment for user %s: fatigue=%.2f recovery=%.2f action=%s",
		userID.Hex(), fatigueScore, recoveryScore, state.RecommendedAction)
	return entry, &state, nil
}

// GetCurrentState re-derives the readiness snapshot from the latest log entry.
func (s *assessmentService) GetCurrentState(ctx context.Context, userID primitive.ObjectID) (*domain.FatigueManagementState, error) {
	entry, err := s.fatigueRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoAssessments
		}
		return nil, err
	}
	state := engine.AssessFatigueState(entry.FatigueScore, entry.RecoveryScore)
	return &state, nil
}

// GetHistory returns recent log entries, newest first.
func (s *assessmentService) GetHistory(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.FatigueLogEntry, error) {
	return s.fatigueRepo.GetRecentByUserID(ctx, userID, limit)
}

// CheckDeload evaluates the deload decision against the user's latest logged
// state and, when positive, returns a personalized strategy.
func (s *assessmentService) CheckDeload(ctx context.Context, userID primitive.ObjectID) (*DeloadRecommendation, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Level == "" || user.Goal == "" {
		return nil, ErrProfileRequired
	}

	cfg, err := engine.LookupConfig(user.Level, user.Goal)
	if err != nil {
		return nil, err
	}

	entries, err := s.fatigueRepo.GetRecentByUserID(ctx, userID, recentLogWindow)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoAssessments
	}

	consecutive := 0
	for _, e := range entries {
		if e.FatigueScore <= cfg.FatigueThreshold {
			break
		}
		consecutive++
	}

	latest := entries[0]
	needed := engine.NeedsDeload(latest.FatigueScore, latest.RecoveryScore, latest.Response, cfg, consecutive)
	if !needed {
		return &DeloadRecommendation{Needed: false}, nil
	}

	base := engine.BaseDeloadStrategy(cfg.RecommendedDeload)
	strategy, err := engine.PersonalizeDeload(latest.FatigueScore, latest.RecoveryScore, user.Level, user.Goal, base)
	if err != nil {
		return nil, err
	}
	strategy.Timing = domain.TimingAutoregulated

	return &DeloadRecommendation{Needed: true, Strategy: &strategy}, nil
}

// UpdateTrainingProfile stores the fields that seed generation and scoring.
func (s *assessmentService) UpdateTrainingProfile(ctx context.Context, userID primitive.ObjectID, level domain.TrainingLevel, goal domain.TrainingGoal, limitations []string, tolerance float64) error {
	// The pair must exist in the catalog before it is stored.
	if _, err := engine.LookupConfig(level, goal); err != nil {
		return err
	}
	return s.userRepo.UpdateTrainingProfile(ctx, userID, level, goal, limitations, tolerance)
}
