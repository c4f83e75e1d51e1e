package service

import (
	"context"

	"fitlog/fitness-api/internal/domain"
	"fitlog/fitness-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutService exposes workout template operations.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
	}
}

// CreateWorkout persists a new template with its items in the given order.
func (s *workoutService) CreateWorkout(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout == nil || workout.Title == "" {
		return primitive.NilObjectID, ErrValidationFailed
	}
	return s.workoutRepo.Create(ctx, workout)
}

// ListWorkouts retrieves all templates in storage order.
func (s *workoutService) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.List(ctx)
}
