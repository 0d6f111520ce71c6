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

type planningFixture struct {
	users     *fakeUserRepo
	plans     *fakePlanRepo
	logs      *fakeFatigueLogRepo
	exercises *fakeExerciseRepo
	snapshots *fakeSnapshotStorage
	svc       PlanningService
}

func newPlanningFixture(t *testing.T) *planningFixture {
	t.Helper()
	f := &planningFixture{
		users:     newFakeUserRepo(),
		plans:     newFakePlanRepo(),
		logs:      newFakeFatigueLogRepo(),
		exercises: newFakeExerciseRepo(),
		snapshots: newFakeSnapshotStorage(),
	}
	f.svc = NewPlanningService(f.plans, f.logs, f.users, f.exercises, f.snapshots, engine.GeneratorOptions{})
	return f
}

func planRequest() domain.PlanParams {
	return domain.PlanParams{
		Frequency:     4,
		StartDate:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		DurationWeeks: 8,
	}
}

func TestGeneratePlan_UsesStoredProfile(t *testing.T) {
	f := newPlanningFixture(t)
	userID := seedUser(t, f.users, domain.LevelIntermediate, domain.GoalHypertrophy)

	plan, err := f.svc.GeneratePlan(context.Background(), userID, planRequest())
	require.NoError(t, err)

	assert.Equal(t, userID, plan.UserID)
	assert.Equal(t, domain.LevelIntermediate, plan.Level)
	assert.Equal(t, domain.GoalHypertrophy, plan.Goal)
	assert.Len(t, plan.MicroCycles(), 8)
	assert.False(t, plan.ID.IsZero())
}

func TestGeneratePlan_RequiresProfile(t *testing.T) {
	f := newPlanningFixture(t)
	userID := seedUser(t, f.users, "", "")

	_, err := f.svc.GeneratePlan(context.Background(), userID, planRequest())
	require.ErrorIs(t, err, ErrProfileRequired)
}

func TestGeneratePlan_RequestOverridesProfile(t *testing.T) {
	f := newPlanningFixture(t)
	userID := seedUser(t, f.users, domain.LevelIntermediate, domain.GoalHypertrophy)

	params := planRequest()
	params.Level = domain.LevelAdvanced
	params.Goal = domain.GoalStrength

	plan, err := f.svc.GeneratePlan(context.Background(), userID, params)
	require.NoError(t, err)
	assert.Equal(t, domain.LevelAdvanced, plan.Level)
	assert.Equal(t, domain.GoalStrength, plan.Goal)
}

func TestGeneratePlan_ArchivesSnapshot(t *testing.T) {
	f := newPlanningFixture(t)
	userID := seedUser(t, f.users, domain.LevelIntermediate, domain.GoalHypertrophy)

	plan, err := f.svc.GeneratePlan(context.Background(), userID, planRequest())
	require.NoError(t, err)

	require.NotEmpty(t, plan.SnapshotKey)
	assert.Contains(t, f.snapshots.objects, plan.SnapshotKey)

	stored, err := f.svc.GetPlan(context.Background(), userID, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.SnapshotKey, stored.SnapshotKey)
}

func TestGeneratePlan_HighLoggedFatigueForcesEarlyDeload(t *testing.T) {
	f := newPlanningFixture(t)
	// Intermediate hypertrophy autoregulates at a 7.0 threshold.
	userID := seedUser(t, f.users, domain.LevelIntermediate, domain.GoalHypertrophy)

	_, err := f.logs.Append(context.Background(), &domain.FatigueLogEntry{
		UserID:        userID,
		Response:      domain.NeutralTrainingResponse(),
		FatigueScore:  9.0,
		RecoveryScore: 3.0,
		LoggedAt:      time.Now().UTC(),
	})
	require.NoError(t, err)

	plan, err := f.svc.GeneratePlan(context.Background(), userID, planRequest())
	require.NoError(t, err)

	weeks := plan.MicroCycles()
	require.NotEmpty(t, weeks)
	assert.True(t, weeks[0].IsDeload, "week 1 should be a deload after a high fatigue reading")
}

func TestGeneratePlan_LowLoggedFatigueKeepsSchedule(t *testing.T) {
	f := newPlanningFixture(t)
	userID := seedUser(t, f.users, domain.LevelIntermediate, domain.GoalHypertrophy)

	_, err := f.logs.Append(context.Background(), &domain.FatigueLogEntry{
		UserID:        userID,
		Response:      domain.NeutralTrainingResponse(),
		FatigueScore:  3.0,
		RecoveryScore: 8.0,
		LoggedAt:      time.Now().UTC(),
	})
	require.NoError(t, err)

	plan, err := f.svc.GeneratePlan(context.Background(), userID, planRequest())
	require.NoError(t, err)

	weeks := plan.MicroCycles()
	require.NotEmpty(t, weeks)
	assert.False(t, weeks[0].IsDeload)
}

func TestGetPlan_OwnershipEnforced(t *testing.T) {
	f := newPlanningFixture(t)
	ownerID := seedUser(t, f.users, domain.LevelIntermediate, domain.GoalHypertrophy)

	plan, err := f.svc.GeneratePlan(context.Background(), ownerID, planRequest())
	require.NoError(t, err)

	otherID := primitive.NewObjectID()
	_, err = f.svc.GetPlan(context.Background(), otherID, plan.ID)
	require.ErrorIs(t, err, ErrPlanNotFound)
}

func TestDeletePlan_RemovesSnapshot(t *testing.T) {
	f := newPlanningFixture(t)
	userID := seedUser(t, f.users, domain.LevelIntermediate, domain.GoalHypertrophy)

	plan, err := f.svc.GeneratePlan(context.Background(), userID, planRequest())
	require.NoError(t, err)
	require.Contains(t, f.snapshots.objects, plan.SnapshotKey)

	require.NoError(t, f.svc.DeletePlan(context.Background(), userID, plan.ID))

	assert.NotContains(t, f.snapshots.objects, plan.SnapshotKey)
	_, err = f.svc.GetPlan(context.Background(), userID, plan.ID)
	require.ErrorIs(t, err, ErrPlanNotFound)
}

func TestGetSnapshotURL(t *testing.T) {
	f := newPlanningFixture(t)
	userID := seedUser(t, f.users, domain.LevelIntermediate, domain.GoalHypertrophy)

	plan, err := f.svc.GeneratePlan(context.Background(), userID, planRequest())
	require.NoError(t, err)

	url, err := f.svc.GetSnapshotURL(context.Background(), userID, plan.ID)
	require.NoError(t, err)
	assert.Contains(t, url, plan.SnapshotKey)
}

func TestListPlans_NewestFirst(t *testing.T) {
	f := newPlanningFixture(t)
	userID := seedUser(t, f.users, domain.LevelIntermediate, domain.GoalHypertrophy)

	_, err := f.svc.GeneratePlan(context.Background(), userID, planRequest())
	require.NoError(t, err)
	_, err = f.svc.GeneratePlan(context.Background(), userID, planRequest())
	require.NoError(t, err)

	plans, err := f.svc.ListPlans(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, plans, 2)
}

func TestBuildWorkoutDay_UsesUserLimitations(t *testing.T) {
	f := newPlanningFixture(t)
	userID := seedUser(t, f.users, domain.LevelIntermediate, domain.GoalHypertrophy)
	require.NoError(t, f.users.UpdateTrainingProfile(context.Background(), userID, domain.LevelIntermediate, domain.GoalHypertrophy, []string{"shoulder_pain"}, 1.0))

	trainerID := primitive.NewObjectID()
	catalog := []domain.Exercise{
		{TrainerID: trainerID, Name: "Barbell Bench Press", PrimaryMuscles: []domain.MuscleGroup{domain.MuscleChest}, Difficulty: domain.DifficultyIntermediate, IsCompound: true},
		{TrainerID: trainerID, Name: "Incline Dumbbell Press", PrimaryMuscles: []domain.MuscleGroup{domain.MuscleChest}, Difficulty: domain.DifficultyIntermediate, IsCompound: true},
		{TrainerID: trainerID, Name: "Weighted Dip", PrimaryMuscles: []domain.MuscleGroup{domain.MuscleChest}, Difficulty: domain.DifficultyIntermediate, IsCompound: true, Contraindications: []string{"shoulder_pain"}},
		{TrainerID: trainerID, Name: "Cable Fly", PrimaryMuscles: []domain.MuscleGroup{domain.MuscleChest}, Difficulty: domain.DifficultyBeginner, IsCompound: false},
		{TrainerID: trainerID, Name: "Push-Up", PrimaryMuscles: []domain.MuscleGroup{domain.MuscleChest}, Difficulty: domain.DifficultyBeginner, IsCompound: true},
		{TrainerID: trainerID, Name: "Machine Chest Press", PrimaryMuscles: []domain.MuscleGroup{domain.MuscleChest}, Difficulty: domain.DifficultyBeginner, IsCompound: true},
		{TrainerID: trainerID, Name: "Decline Press", PrimaryMuscles: []domain.MuscleGroup{domain.MuscleChest}, Difficulty: domain.DifficultyIntermediate, IsCompound: true},
		{TrainerID: trainerID, Name: "Overhead Press", PrimaryMuscles: []domain.MuscleGroup{domain.MuscleShoulders}, Difficulty: domain.DifficultyIntermediate, IsCompound: true},
		{TrainerID: trainerID, Name: "Lateral Raise", PrimaryMuscles: []domain.MuscleGroup{domain.MuscleShoulders}, Difficulty: domain.DifficultyBeginner, IsCompound: false},
	}
	for i := range catalog {
		ex := catalog[i]
		_, err := f.exercises.Create(context.Background(), &ex)
		require.NoError(t, err)
	}

	day, err := f.svc.BuildWorkoutDay(context.Background(), userID, []domain.MuscleGroup{domain.MuscleChest}, domain.DayHypertrophy)
	require.NoError(t, err)
	require.NotEmpty(t, day.Exercises)

	for _, we := range day.Exercises {
		assert.NotContains(t, we.Exercise.Contraindications, "shoulder_pain", we.Exercise.Name)
	}
}
