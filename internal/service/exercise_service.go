package service

import (
	"alcyxob/periodization-engine/internal/domain"
	"alcyxob/periodization-engine/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrExerciseForbidden = errors.New("user does not have permission for this exercise")
	ErrInvalidExercise   = errors.New("invalid exercise data")
)

// ExerciseService manages the exercise catalog that plan generation and
// exercise selection draw from.
type ExerciseService interface {
	CreateExercise(ctx context.Context, trainerID primitive.ObjectID, exercise domain.Exercise) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetExercisesByTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Exercise, error)
	GetCatalog(ctx context.Context) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, trainerID primitive.ObjectID, exercise domain.Exercise) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, trainerID, exerciseID primitive.ObjectID) error
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	userRepo     repository.UserRepository
}

// NewExerciseService creates a new ExerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, userRepo repository.UserRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		userRepo:     userRepo,
	}
}

// CreateExercise adds a new exercise to the catalog, owned by the trainer.
func (s *exerciseService) CreateExercise(ctx context.Context, trainerID primitive.ObjectID, exercise domain.Exercise) (*domain.Exercise, error) {
	trainer, err := s.userRepo.GetByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if !trainer.IsTrainer() {
		return nil, ErrExerciseForbidden
	}

	if exercise.Name == "" || len(exercise.PrimaryMuscles) == 0 {
		return nil, ErrInvalidExercise
	}
	if exercise.Difficulty == "" {
		exercise.Difficulty = domain.DifficultyIntermediate
	}

	exercise.TrainerID = trainerID
	id, err := s.exerciseRepo.Create(ctx, &exercise)
	if err != nil {
		return nil, err
	}
	exercise.ID = id
	return &exercise, nil
}

func (s *exerciseService) GetExerciseByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) GetExercisesByTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetByTrainerID(ctx, trainerID)
}

// GetCatalog returns the full catalog used by exercise selection.
func (s *exerciseService) GetCatalog(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetAll(ctx)
}

// UpdateExercise modifies an exercise after verifying ownership.
func (s *exerciseService) UpdateExercise(ctx context.Context, trainerID primitive.ObjectID, exercise domain.Exercise) (*domain.Exercise, error) {
	existing, err := s.GetExerciseByID(ctx, exercise.ID)
	if err != nil {
		return nil, err
	}
	if existing.TrainerID != trainerID {
		return nil, ErrExerciseForbidden
	}

	if exercise.Name == "" || len(exercise.PrimaryMuscles) == 0 {
		return nil, ErrInvalidExercise
	}

	exercise.TrainerID = existing.TrainerID
	if err := s.exerciseRepo.Update(ctx, &exercise); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return s.GetExerciseByID(ctx, exercise.ID)
}

// DeleteExercise removes an exercise owned by the trainer.
func (s *exerciseService) DeleteExercise(ctx context.Context, trainerID, exerciseID primitive.ObjectID) error {
	err := s.exerciseRepo.Delete(ctx, exerciseID, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}
