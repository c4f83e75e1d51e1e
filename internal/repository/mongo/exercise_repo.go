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

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	gateway collectionGateway[domain.Exercise]
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		gateway: newCollectionGateway[domain.Exercise](db, exerciseCollectionName),
	}
}

// Create inserts a new exercise into the library. The entity is assumed to
// have passed schema validation already; only the identifier and creation
// timestamp are assigned here.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Name == "" {
		return primitive.NilObjectID, errors.New("exercise name is required")
	}

	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = time.Now().UTC()

	return r.gateway.insertOne(ctx, exercise)
}

// List retrieves every exercise in the library, in storage order.
func (r *mongoExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	return r.gateway.find(ctx, nil, 0)
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index(),
		},
	}

	// Index creation is best-effort at startup; queries work without it.
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
