package service

import (
	"alcyxob/periodization-engine/internal/domain"
	"alcyxob/periodization-engine/internal/engine"
	"alcyxob/periodization-engine/internal/repository"
	"alcyxob/periodization-engine/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrPlanNotFound    = errors.New("plan not found")
	ErrProfileRequired = errors.New("user has no training profile: level and goal must be set before generating a plan")
)

// recentLogWindow is how many fatigue log entries generation reads to derive
// the consecutive-high-fatigue count.
const recentLogWindow = 8

// PlanningService generates, stores and serves training plans.
type PlanningService interface {
	GeneratePlan(ctx context.Context, userID primitive.ObjectID, params domain.PlanParams) (*domain.Plan, error)
	GetPlan(ctx context.Context, userID, planID primitive.ObjectID) (*domain.Plan, error)
	ListPlans(ctx context.Context, userID primitive.ObjectID) ([]domain.Plan, error)
	DeletePlan(ctx context.Context, userID, planID primitive.ObjectID) error
	GetSnapshotURL(ctx context.Context, userID, planID primitive.ObjectID) (string, error)
	BuildWorkoutDay(ctx context.Context, userID primitive.ObjectID, targetGroups []domain.MuscleGroup, dayType domain.DayType) (*domain.WorkoutDayPlan, error)
}

type planningService struct {
	planRepo     repository.PlanRepository
	fatigueRepo  repository.FatigueLogRepository
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	snapshots    storage.SnapshotStorage
	selector     *engine.Selector
	opts         engine.GeneratorOptions

	// userLocks serializes generation per user so concurrent requests cannot
	// interleave reads of the fatigue log with plan writes.
	mu        sync.Mutex
	userLocks map[primitive.ObjectID]*sync.Mutex
}

// NewPlanningService creates a new PlanningService. snapshots may be nil to
// disable plan archiving.
func NewPlanningService(
	planRepo repository.PlanRepository,
	fatigueRepo repository.FatigueLogRepository,
	userRepo repository.UserRepository,
	exerciseRepo repository.ExerciseRepository,
	snapshots storage.SnapshotStorage,
	opts engine.GeneratorOptions,
) PlanningService {
	return &planningService{
		planRepo:     planRepo,
		fatigueRepo:  fatigueRepo,
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		snapshots:    snapshots,
		selector:     engine.NewSelector(nil),
		opts:         opts,
		userLocks:    make(map[primitive.ObjectID]*sync.Mutex),
	}
}

func (s *planningService) lockFor(userID primitive.ObjectID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userID] = l
	}
	return l
}

// GeneratePlan builds a new plan for the user, seeding autoregulation from
// the fatigue log, and persists it. The previous plans are kept; regeneration
// always produces a new document.
func (s *planningService) GeneratePlan(ctx context.Context, userID primitive.ObjectID, params domain.PlanParams) (*domain.Plan, error) {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Request params win; unset fields fall back to the stored profile.
	if params.Level == "" {
		params.Level = user.Level
	}
	if params.Goal == "" {
		params.Goal = user.Goal
	}
	if params.Level == "" || params.Goal == "" {
		return nil, ErrProfileRequired
	}
	if params.IndividualTolerance <= 0 {
		params.IndividualTolerance = user.Tolerance()
	}

	external, err := s.externalState(ctx, userID, params.Level, params.Goal)
	if err != nil {
		return nil, err
	}

	plan, err := engine.GeneratePlan(params, external, s.opts)
	if err != nil {
		return nil, err
	}
	plan.UserID = userID

	if s.snapshots != nil {
		key := fmt.Sprintf("plans/%s/%s.json", userID.Hex(), uuid.NewString())
		body, marshalErr := json.Marshal(plan)
		if marshalErr == nil {
			if upErr := s.snapshots.UploadSnapshot(ctx, key, "application/json", body); upErr == nil {
				plan.SnapshotKey = key
			} else {
				// Archiving is best effort; the plan is still served from Mongo.
				log.Printf("ERROR: Failed to archive plan snapshot for user %s: %v", userID.Hex(), upErr)
			}
		}
	}

	planID, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = planID

	log.Printf("INFO: Generated %d-week plan %s for user %s (%s/%s)",
		params.DurationWeeks, planID.Hex(), userID.Hex(), params.Level, params.Goal)
	return plan, nil
}

// externalState derives the autoregulation inputs from the fatigue log.
// Returns nil when the user has never logged markers.
func (s *planningService) externalState(ctx context.Context, userID primitive.ObjectID, level domain.TrainingLevel, goal domain.TrainingGoal) (*engine.ExternalFatigueState, error) {
	entries, err := s.fatigueRepo.GetRecentByUserID(ctx, userID, recentLogWindow)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	cfg, err := engine.LookupConfig(level, goal)
	if err != nil {
		return nil, err
	}

	// Entries are newest first; the streak stops at the first week at or
	// under the threshold.
	consecutive := 0
	for _, e := range entries {
		if e.FatigueScore <= cfg.FatigueThreshold {
			break
		}
		consecutive++
	}

	latest := entries[0]
	return &engine.ExternalFatigueState{
		FatigueScore:                latest.FatigueScore,
		RecoveryScore:               latest.RecoveryScore,
		Response:                    latest.Response,
		ConsecutiveHighFatigueWeeks: consecutive,
	}, nil
}

func (s *planningService) GetPlan(ctx context.Context, userID, planID primitive.ObjectID) (*domain.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if plan.UserID != userID {
		// Ownership failure presents as not-found.
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *planningService) ListPlans(ctx context.Context, userID primitive.ObjectID) ([]domain.Plan, error) {
	return s.planRepo.GetByUserID(ctx, userID)
}

// DeletePlan removes the plan document and its archived snapshot.
func (s *planningService) DeletePlan(ctx context.Context, userID, planID primitive.ObjectID) error {
	plan, err := s.GetPlan(ctx, userID, planID)
	if err != nil {
		return err
	}

	if err := s.planRepo.Delete(ctx, planID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}

	if s.snapshots != nil && plan.SnapshotKey != "" {
		if err := s.snapshots.DeleteObject(ctx, plan.SnapshotKey); err != nil {
			log.Printf("ERROR: Failed to delete snapshot '%s': %v", plan.SnapshotKey, err)
		}
	}
	return nil
}

// GetSnapshotURL returns a presigned download URL for the archived plan JSON.
func (s *planningService) GetSnapshotURL(ctx context.Context, userID, planID primitive.ObjectID) (string, error) {
	if s.snapshots == nil {
		return "", errors.New("snapshot storage is not configured")
	}
	plan, err := s.GetPlan(ctx, userID, planID)
	if err != nil {
		return "", err
	}
	if plan.SnapshotKey == "" {
		return "", ErrPlanNotFound
	}
	return s.snapshots.GeneratePresignedDownloadURL(ctx, plan.SnapshotKey, storage.DefaultPresignedURLExpiry)
}

// BuildWorkoutDay selects exercises for one training day from the stored
// catalog, respecting the user's level and limitations.
func (s *planningService) BuildWorkoutDay(ctx context.Context, userID primitive.ObjectID, targetGroups []domain.MuscleGroup, dayType domain.DayType) (*domain.WorkoutDayPlan, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	level := user.Level
	if level == "" {
		level = domain.LevelBeginner
	}

	catalog, err := s.exerciseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return s.selector.BuildWorkoutDay(catalog, targetGroups, level, user.Limitations, dayType)
}
