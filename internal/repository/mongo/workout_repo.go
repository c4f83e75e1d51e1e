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

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	gateway collectionGateway[domain.Workout]
}

// NewMongoWorkoutRepository creates a new Workout repository backed by MongoDB.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		gateway: newCollectionGateway[domain.Workout](db, workoutCollectionName),
	}
}

// Create inserts a new workout template. Item order is preserved as given.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.Title == "" {
		return primitive.NilObjectID, errors.New("workout title is required")
	}
	if workout.Items == nil {
		workout.Items = []domain.WorkoutItem{}
	}

	workout.ID = primitive.NewObjectID()
	workout.CreatedAt = time.Now().UTC()

	return r.gateway.insertOne(ctx, workout)
}

// List retrieves every workout template, in storage order.
func (r *mongoWorkoutRepository) List(ctx context.Context) ([]domain.Workout, error) {
	return r.gateway.find(ctx, nil, 0)
}

// EnsureWorkoutIndexes creates necessary indexes for the workouts collection.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index(),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
