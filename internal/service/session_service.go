package service

import (
	"context"
	"sort"

	"fitlog/fitness-api/internal/domain"
	"fitlog/fitness-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultSessionLimit caps session listings when the caller does not ask
// for a specific limit.
const DefaultSessionLimit = 50

// SessionService exposes logged-session operations.
type SessionService interface {
	LogSession(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	ListSessions(ctx context.Context, dateStr string, limit int64) ([]domain.WorkoutSession, error)
}

// sessionService implements the SessionService interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
	}
}

// LogSession persists one logged training session.
func (s *sessionService) LogSession(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	if session == nil || session.DateStr == "" || session.WorkoutTitle == "" {
		return primitive.NilObjectID, ErrValidationFailed
	}
	return s.sessionRepo.Create(ctx, session)
}

// ListSessions queries sessions (exact date_str match when dateStr is
// non-empty) and sorts the returned snapshot newest-first by creation
// timestamp. Documents without a timestamp decode to the zero time and
// therefore sort last. The sort is per-request over this query's snapshot
// only; it makes no global ordering promise across concurrent writes.
func (s *sessionService) ListSessions(ctx context.Context, dateStr string, limit int64) ([]domain.WorkoutSession, error) {
	if limit <= 0 {
		limit = DefaultSessionLimit
	}

	sessions, err := s.sessionRepo.List(ctx, dateStr, limit)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}
