package service

import (
	"context"
	"errors"

	"fitlog/fitness-api/internal/domain"
	"fitlog/fitness-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrValidationFailed = errors.New("validation failed")
)

// ExerciseService exposes exercise library operations.
type ExerciseService interface {
	CreateExercise(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

// CreateExercise persists a new library entry. The handler has already
// bound and validated the payload; the required-name guard here is the
// last line before the repository.
func (s *exerciseService) CreateExercise(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise == nil || exercise.Name == "" {
		return primitive.NilObjectID, ErrValidationFailed
	}
	return s.exerciseRepo.Create(ctx, exercise)
}

// ListExercises retrieves the whole library in storage order.
func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}
