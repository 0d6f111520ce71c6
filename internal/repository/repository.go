package repository

import (
	"alcyxob/periodization-engine/internal/domain" // Import our defined domain models
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive" // For using ObjectIDs
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateTrainingProfile(ctx context.Context, userID primitive.ObjectID, level domain.TrainingLevel, goal domain.TrainingGoal, limitations []string, tolerance float64) error
}

// ExerciseRepository defines the interface for interacting with the
// exercise catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Exercise, error)
	// GetAll returns the full catalog consumed by exercise selection.
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id primitive.ObjectID, trainerID primitive.ObjectID) error // Ensure trainer owns the exercise
}

// PlanRepository defines the interface for interacting with generated plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Plan, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Plan, error)
	Delete(ctx context.Context, planID, userID primitive.ObjectID) error
}

// FatigueLogRepository defines the interface for the per-user fatigue
// history. Entries are append-only; generation reads recent entries to
// derive the consecutive-high-fatigue count and the latest reading.
type FatigueLogRepository interface {
	Append(ctx context.Context, entry *domain.FatigueLogEntry) (primitive.ObjectID, error)
	// GetRecentByUserID returns up to limit entries, newest first.
	GetRecentByUserID(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.FatigueLogEntry, error)
	GetLatestByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.FatigueLogEntry, error)
}
