package mongo

import (
	"alcyxob/periodization-engine/internal/domain"
	"alcyxob/periodization-engine/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const fatigueLogCollectionName = "fatigue_logs"

// mongoFatigueLogRepository implements repository.FatigueLogRepository
type mongoFatigueLogRepository struct {
	collection *mongo.Collection
}

// NewMongoFatigueLogRepository creates a new fatigue log repository.
func NewMongoFatigueLogRepository(db *mongo.Database) repository.FatigueLogRepository {
	return &mongoFatigueLogRepository{
		collection: db.Collection(fatigueLogCollectionName),
	}
}

// Append inserts a new log entry. Entries are never updated in place.
func (r *mongoFatigueLogRepository) Append(ctx context.Context, entry *domain.FatigueLogEntry) (primitive.ObjectID, error) {
	if entry.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("fatigue log entry requires a user ID")
	}

	entry.ID = primitive.NewObjectID()
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetRecentByUserID returns up to limit entries for the user, newest first.
func (r *mongoFatigueLogRepository) GetRecentByUserID(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.FatigueLogEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var entries []domain.FatigueLogEntry
	filter := bson.M{"userId": userID}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "loggedAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// GetLatestByUserID returns the newest log entry for the user.
func (r *mongoFatigueLogRepository) GetLatestByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.FatigueLogEntry, error) {
	var entry domain.FatigueLogEntry
	filter := bson.M{"userId": userID}

	findOptions := options.FindOne().SetSort(bson.D{{Key: "loggedAt", Value: -1}})

	err := r.collection.FindOne(ctx, filter, findOptions).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// EnsureFatigueLogIndexes creates necessary indexes. Call during startup.
func EnsureFatigueLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "loggedAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
