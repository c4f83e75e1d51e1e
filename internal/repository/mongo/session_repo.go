package mongo

import (
	"context"
	"errors"
	"log"
	"time"

	"fitlog/fitness-api/internal/domain"
	"fitlog/fitness-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollectionName = "sessions"

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	gateway collectionGateway[domain.WorkoutSession]
}

// NewMongoSessionRepository creates a new WorkoutSession repository backed by MongoDB.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		gateway: newCollectionGateway[domain.WorkoutSession](db, sessionCollectionName),
	}
}

// Create inserts a new logged session. The creation timestamp assigned here
// is what the listing endpoint sorts on.
func (r *mongoSessionRepository) Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	if session.DateStr == "" {
		return primitive.NilObjectID, errors.New("session date_str is required")
	}
	if session.Items == nil {
		session.Items = []domain.SessionItem{}
	}

	session.ID = primitive.NewObjectID()
	session.CreatedAt = time.Now().UTC()

	return r.gateway.insertOne(ctx, session)
}

// List retrieves sessions matching an exact date_str when dateStr is
// non-empty (all sessions otherwise), truncated to limit documents when
// limit > 0. Ordering is left to the caller.
func (r *mongoSessionRepository) List(ctx context.Context, dateStr string, limit int64) ([]domain.WorkoutSession, error) {
	filter := bson.M{}
	if dateStr != "" {
		filter["date_str"] = dateStr
	}
	return r.gateway.find(ctx, filter, limit)
}

// EnsureSessionIndexes creates necessary indexes for the sessions collection.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Supports the date_str equality filter with newest-first reads.
			Keys:    bson.D{{Key: "date_str", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index(),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
