package service

import (
	"alcyxob/periodization-engine/internal/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedTrainer(t *testing.T, users *fakeUserRepo, email string) primitive.ObjectID {
	t.Helper()
	id, err := users.Create(context.Background(), &domain.User{
		Name:         "Coach",
		Email:        email,
		PasswordHash: "x",
		Role:         domain.RoleTrainer,
	})
	require.NoError(t, err)
	return id
}

func benchPress() domain.Exercise {
	return domain.Exercise{
		Name:           "Barbell Bench Press",
		Category:       "push",
		PrimaryMuscles: []domain.MuscleGroup{domain.MuscleChest},
		Difficulty:     domain.DifficultyIntermediate,
		IsCompound:     true,
	}
}

func TestCreateExercise_TrainerOnly(t *testing.T) {
	users := newFakeUserRepo()
	exercises := newFakeExerciseRepo()
	svc := NewExerciseService(exercises, users)

	clientID := seedUser(t, users, domain.LevelBeginner, domain.GoalGeneralFitness)
	_, err := svc.CreateExercise(context.Background(), clientID, benchPress())
	require.ErrorIs(t, err, ErrExerciseForbidden)

	trainerID := seedTrainer(t, users, "coach@example.com")
	created, err := svc.CreateExercise(context.Background(), trainerID, benchPress())
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, trainerID, created.TrainerID)
}

func TestCreateExercise_RequiresNameAndMuscles(t *testing.T) {
	users := newFakeUserRepo()
	exercises := newFakeExerciseRepo()
	svc := NewExerciseService(exercises, users)
	trainerID := seedTrainer(t, users, "coach@example.com")

	invalid := benchPress()
	invalid.PrimaryMuscles = nil
	_, err := svc.CreateExercise(context.Background(), trainerID, invalid)
	require.ErrorIs(t, err, ErrInvalidExercise)
}

func TestUpdateExercise_OwnershipEnforced(t *testing.T) {
	users := newFakeUserRepo()
	exercises := newFakeExerciseRepo()
	svc := NewExerciseService(exercises, users)

	ownerID := seedTrainer(t, users, "owner@example.com")
	otherID := seedTrainer(t, users, "other@example.com")

	created, err := svc.CreateExercise(context.Background(), ownerID, benchPress())
	require.NoError(t, err)

	update := *created
	update.Name = "Paused Bench Press"
	_, err = svc.UpdateExercise(context.Background(), otherID, update)
	require.ErrorIs(t, err, ErrExerciseForbidden)

	updated, err := svc.UpdateExercise(context.Background(), ownerID, update)
	require.NoError(t, err)
	assert.Equal(t, "Paused Bench Press", updated.Name)
	assert.Equal(t, ownerID, updated.TrainerID)
}

func TestDeleteExercise(t *testing.T) {
	users := newFakeUserRepo()
	exercises := newFakeExerciseRepo()
	svc := NewExerciseService(exercises, users)
	trainerID := seedTrainer(t, users, "coach@example.com")

	created, err := svc.CreateExercise(context.Background(), trainerID, benchPress())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExercise(context.Background(), trainerID, created.ID))

	_, err = svc.GetExerciseByID(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrExerciseNotFound)

	err = svc.DeleteExercise(context.Background(), trainerID, created.ID)
	require.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestGetCatalog_ReturnsAll(t *testing.T) {
	users := newFakeUserRepo()
	exercises := newFakeExerciseRepo()
	svc := NewExerciseService(exercises, users)
	trainerID := seedTrainer(t, users, "coach@example.com")

	_, err := svc.CreateExercise(context.Background(), trainerID, benchPress())
	require.NoError(t, err)

	squat := benchPress()
	squat.Name = "Back Squat"
	squat.Category = "squat"
	squat.PrimaryMuscles = []domain.MuscleGroup{domain.MuscleQuads}
	_, err = svc.CreateExercise(context.Background(), trainerID, squat)
	require.NoError(t, err)

	catalog, err := svc.GetCatalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog, 2)
}
