package service

import (
	"alcyxob/periodization-engine/internal/domain"
	"alcyxob/periodization-engine/internal/engine"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedUser(t *testing.T, users *fakeUserRepo, level domain.TrainingLevel, goal domain.TrainingGoal) primitive.ObjectID {
	t.Helper()
	id, err := users.Create(context.Background(), &domain.User{
		Name:         "Test Client",
		Email:        "client@example.com",
		PasswordHash: "x",
		Role:         domain.RoleClient,
	})
	require.NoError(t, err)
	if level != "" || goal != "" {
		require.NoError(t, users.UpdateTrainingProfile(context.Background(), id, level, goal, nil, 1.0))
	}
	return id
}

func neutralAssessmentMarkers() (domain.FatigueMarkers, domain.RecoveryMarkers) {
	fatigue := domain.FatigueMarkers{
		Soreness: 5, SleepQuality: 5, Motivation: 5,
		MoodScore: 5, StressScore: 5, TechnicalProficiency: 5,
	}
	recovery := domain.RecoveryMarkers{
		SleepHours: 7, SleepQuality: 5, Nutrition: 5, Hydration: 5, StressManagement: 5,
	}
	return fatigue, recovery
}

func TestLogAssessment_ScoresAndAppends(t *testing.T) {
	users := newFakeUserRepo()
	logs := newFakeFatigueLogRepo()
	userID := seedUser(t, users, domain.LevelIntermediate, domain.GoalHypertrophy)
	svc := NewAssessmentService(logs, users)

	fatigue, recovery := neutralAssessmentMarkers()
	entry, state, err := svc.LogAssessment(context.Background(), userID, fatigue, recovery, domain.NeutralTrainingResponse())
	require.NoError(t, err)
	require.NotNil(t, entry)
	require.NotNil(t, state)

	assert.False(t, entry.ID.IsZero())
	assert.Equal(t, userID, entry.UserID)
	assert.Greater(t, entry.FatigueScore, 0.0)
	assert.Greater(t, entry.RecoveryScore, 0.0)
	assert.Equal(t, entry.FatigueScore, state.CurrentFatigue)

	stored, err := logs.GetLatestByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, stored.ID)
}

func TestLogAssessment_InvalidMarkersRejected(t *testing.T) {
	users := newFakeUserRepo()
	logs := newFakeFatigueLogRepo()
	userID := seedUser(t, users, domain.LevelIntermediate, domain.GoalHypertrophy)
	svc := NewAssessmentService(logs, users)

	fatigue, recovery := neutralAssessmentMarkers()
	fatigue.Soreness = 11

	_, _, err := svc.LogAssessment(context.Background(), userID, fatigue, recovery, domain.NeutralTrainingResponse())
	require.Error(t, err)

	var validation *engine.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Empty(t, logs.entries)
}

func TestGetCurrentState_NoEntries(t *testing.T) {
	users := newFakeUserRepo()
	logs := newFakeFatigueLogRepo()
	userID := seedUser(t, users, domain.LevelIntermediate, domain.GoalHypertrophy)
	svc := NewAssessmentService(logs, users)

	_, err := svc.GetCurrentState(context.Background(), userID)
	require.ErrorIs(t, err, ErrNoAssessments)
}

func TestGetCurrentState_MatchesLatestEntry(t *testing.T) {
	users := newFakeUserRepo()
	logs := newFakeFatigueLogRepo()
	userID := seedUser(t, users, domain.LevelIntermediate, domain.GoalHypertrophy)
	svc := NewAssessmentService(logs, users)

	fatigue, recovery := neutralAssessmentMarkers()
	entry, logged, err := svc.LogAssessment(context.Background(), userID, fatigue, recovery, domain.NeutralTrainingResponse())
	require.NoError(t, err)

	state, err := svc.GetCurrentState(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, logged.RecommendedAction, state.RecommendedAction)
	assert.Equal(t, entry.FatigueScore, state.CurrentFatigue)
}

func TestCheckDeload_NoEntries(t *testing.T) {
	users := newFakeUserRepo()
	logs := newFakeFatigueLogRepo()
	userID := seedUser(t, users, domain.LevelIntermediate, domain.GoalHypertrophy)
	svc := NewAssessmentService(logs, users)

	_, err := svc.CheckDeload(context.Background(), userID)
	require.ErrorIs(t, err, ErrNoAssessments)
}

func TestCheckDeload_SevereFatigueRecommendsStrategy(t *testing.T) {
	users := newFakeUserRepo()
	logs := newFakeFatigueLogRepo()
	// Intermediate hypertrophy carries a 7.0 threshold; 9.0 trips the severe check.
	userID := seedUser(t, users, domain.LevelIntermediate, domain.GoalHypertrophy)
	svc := NewAssessmentService(logs, users)

	_, err := logs.Append(context.Background(), &domain.FatigueLogEntry{
		UserID:        userID,
		Response:      domain.NeutralTrainingResponse(),
		FatigueScore:  9.0,
		RecoveryScore: 3.0,
		LoggedAt:      time.Now().UTC(),
	})
	require.NoError(t, err)

	rec, err := svc.CheckDeload(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, rec.Needed)
	require.NotNil(t, rec.Strategy)
	assert.Equal(t, domain.TimingAutoregulated, rec.Strategy.Timing)
	assert.GreaterOrEqual(t, rec.Strategy.DurationDays, 3)
}

func TestCheckDeload_FreshTraineeNotNeeded(t *testing.T) {
	users := newFakeUserRepo()
	logs := newFakeFatigueLogRepo()
	userID := seedUser(t, users, domain.LevelIntermediate, domain.GoalHypertrophy)
	svc := NewAssessmentService(logs, users)

	_, err := logs.Append(context.Background(), &domain.FatigueLogEntry{
		UserID:        userID,
		Response:      domain.NeutralTrainingResponse(),
		FatigueScore:  2.0,
		RecoveryScore: 8.0,
		LoggedAt:      time.Now().UTC(),
	})
	require.NoError(t, err)

	rec, err := svc.CheckDeload(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, rec.Needed)
	assert.Nil(t, rec.Strategy)
}

func TestCheckDeload_RequiresProfile(t *testing.T) {
	users := newFakeUserRepo()
	logs := newFakeFatigueLogRepo()
	userID := seedUser(t, users, "", "")
	svc := NewAssessmentService(logs, users)

	_, err := svc.CheckDeload(context.Background(), userID)
	require.ErrorIs(t, err, ErrProfileRequired)
}

func TestUpdateTrainingProfile_RejectsUnknownPair(t *testing.T) {
	users := newFakeUserRepo()
	logs := newFakeFatigueLogRepo()
	userID := seedUser(t, users, "", "")
	svc := NewAssessmentService(logs, users)

	err := svc.UpdateTrainingProfile(context.Background(), userID, domain.LevelIntermediate, "marathon_prep", nil, 1.0)
	require.Error(t, err)

	var missing *engine.MissingConfigError
	require.ErrorAs(t, err, &missing)
}

func TestUpdateTrainingProfile_StoresProfile(t *testing.T) {
	users := newFakeUserRepo()
	logs := newFakeFatigueLogRepo()
	userID := seedUser(t, users, "", "")
	svc := NewAssessmentService(logs, users)

	err := svc.UpdateTrainingProfile(context.Background(), userID, domain.LevelAdvanced, domain.GoalStrength, []string{"knee_pain"}, 1.2)
	require.NoError(t, err)

	user, err := users.GetByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.LevelAdvanced, user.Level)
	assert.Equal(t, domain.GoalStrength, user.Goal)
	assert.Equal(t, []string{"knee_pain"}, user.Limitations)
	assert.InDelta(t, 1.2, user.IndividualTolerance, 1e-9)
}
