package repository

import (
	"context"

	"fitlog/fitness-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrInsertFailed = RepositoryError("insert failed")
)

// RepositoryError helps distinguish repository errors from driver errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseRepository defines the interface for interacting with the
// exercise library collection.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	List(ctx context.Context) ([]domain.Exercise, error)
}

// WorkoutRepository defines the interface for interacting with workout
// template documents.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	List(ctx context.Context) ([]domain.Workout, error)
}

// SessionRepository defines the interface for interacting with logged
// workout sessions. List applies an exact date_str equality filter when
// dateStr is non-empty and truncates to at most limit documents; it makes
// no ordering guarantee of its own — callers sort the returned snapshot.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	List(ctx context.Context, dateStr string, limit int64) ([]domain.WorkoutSession, error)
}
