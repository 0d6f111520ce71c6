package service

import (
	"alcyxob/periodization-engine/internal/domain"
	"alcyxob/periodization-engine/internal/repository"
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. Not safe for concurrent use; each test builds
// its own set.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrUpdateFailed
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	copied := *user
	r.users[user.ID] = &copied
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) UpdateTrainingProfile(ctx context.Context, userID primitive.ObjectID, level domain.TrainingLevel, goal domain.TrainingGoal, limitations []string, tolerance float64) error {
	u, ok := r.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.Level = level
	u.Goal = goal
	u.Limitations = limitations
	u.IndividualTolerance = tolerance
	return nil
}

type fakePlanRepo struct {
	plans map[primitive.ObjectID]*domain.Plan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[primitive.ObjectID]*domain.Plan)}
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *domain.Plan) (primitive.ObjectID, error) {
	plan.ID = primitive.NewObjectID()
	plan.CreatedAt = time.Now().UTC()
	copied := *plan
	r.plans[plan.ID] = &copied
	return plan.ID, nil
}

func (r *fakePlanRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Plan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePlanRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Plan, error) {
	var out []domain.Plan
	for _, p := range r.plans {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePlanRepo) Delete(ctx context.Context, planID, userID primitive.ObjectID) error {
	p, ok := r.plans[planID]
	if !ok || p.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.plans, planID)
	return nil
}

type fakeFatigueLogRepo struct {
	entries []domain.FatigueLogEntry
}

func newFakeFatigueLogRepo() *fakeFatigueLogRepo {
	return &fakeFatigueLogRepo{}
}

func (r *fakeFatigueLogRepo) Append(ctx context.Context, entry *domain.FatigueLogEntry) (primitive.ObjectID, error) {
	entry.ID = primitive.NewObjectID()
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = time.Now().UTC()
	}
	r.entries = append(r.entries, *entry)
	return entry.ID, nil
}

func (r *fakeFatigueLogRepo) GetRecentByUserID(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.FatigueLogEntry, error) {
	var out []domain.FatigueLogEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LoggedAt.After(out[j].LoggedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeFatigueLogRepo) GetLatestByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.FatigueLogEntry, error) {
	entries, _ := r.GetRecentByUserID(ctx, userID, 1)
	if len(entries) == 0 {
		return nil, repository.ErrNotFound
	}
	return &entries[0], nil
}

type fakeExerciseRepo struct {
	exercises map[primitive.ObjectID]*domain.Exercise
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: make(map[primitive.ObjectID]*domain.Exercise)}
}

func (r *fakeExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = time.Now().UTC()
	copied := *exercise
	r.exercises[exercise.ID] = &copied
	return exercise.ID, nil
}

func (r *fakeExerciseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	e, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeExerciseRepo) GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for _, e := range r.exercises {
		if e.TrainerID == trainerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeExerciseRepo) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for _, e := range r.exercises {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeExerciseRepo) Update(ctx context.Context, exercise *domain.Exercise) error {
	existing, ok := r.exercises[exercise.ID]
	if !ok {
		return repository.ErrNotFound
	}
	copied := *exercise
	copied.TrainerID = existing.TrainerID
	r.exercises[exercise.ID] = &copied
	return nil
}

func (r *fakeExerciseRepo) Delete(ctx context.Context, id primitive.ObjectID, trainerID primitive.ObjectID) error {
	e, ok := r.exercises[id]
	if !ok || e.TrainerID != trainerID {
		return repository.ErrNotFound
	}
	delete(r.exercises, id)
	return nil
}

// fakeSnapshotStorage records uploads and deletes by key.
type fakeSnapshotStorage struct {
	objects map[string][]byte
}

func newFakeSnapshotStorage() *fakeSnapshotStorage {
	return &fakeSnapshotStorage{objects: make(map[string][]byte)}
}

func (s *fakeSnapshotStorage) UploadSnapshot(ctx context.Context, objectKey string, contentType string, body []byte) error {
	s.objects[objectKey] = body
	return nil
}

func (s *fakeSnapshotStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	return "https://snapshots.test/" + objectKey, nil
}

func (s *fakeSnapshotStorage) DeleteObject(ctx context.Context, objectKey string) error {
	delete(s.objects, objectKey)
	return nil
}
