package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"fitlog/fitness-api/internal/domain"
	"fitlog/fitness-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Fake repositories ---

type fakeExerciseRepo struct {
	exercises []domain.Exercise
	createErr error
	listErr   error
}

func (f *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if f.createErr != nil {
		return primitive.NilObjectID, f.createErr
	}
	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = time.Now().UTC()
	f.exercises = append(f.exercises, *exercise)
	return exercise.ID, nil
}

func (f *fakeExerciseRepo) List(_ context.Context) ([]domain.Exercise, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Exercise{}, f.exercises...), nil
}

type fakeWorkoutRepo struct {
	workouts  []domain.Workout
	createErr error
	listErr   error
}

func (f *fakeWorkoutRepo) Create(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if f.createErr != nil {
		return primitive.NilObjectID, f.createErr
	}
	workout.ID = primitive.NewObjectID()
	workout.CreatedAt = time.Now().UTC()
	f.workouts = append(f.workouts, *workout)
	return workout.ID, nil
}

func (f *fakeWorkoutRepo) List(_ context.Context) ([]domain.Workout, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Workout{}, f.workouts...), nil
}

// fakeSessionRepo records the filter arguments it was called with so tests
// can assert the handler passed them through unchanged.
type fakeSessionRepo struct {
	sessions []domain.WorkoutSession

	lastDateStr string
	lastLimit   int64

	createErr error
	listErr   error
}

func (f *fakeSessionRepo) Create(_ context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	if f.createErr != nil {
		return primitive.NilObjectID, f.createErr
	}
	session.ID = primitive.NewObjectID()
	session.CreatedAt = time.Now().UTC()
	f.sessions = append(f.sessions, *session)
	return session.ID, nil
}

func (f *fakeSessionRepo) List(_ context.Context, dateStr string, limit int64) ([]domain.WorkoutSession, error) {
	f.lastDateStr = dateStr
	f.lastLimit = limit
	if f.listErr != nil {
		return nil, f.listErr
	}

	matched := []domain.WorkoutSession{}
	for _, s := range f.sessions {
		if dateStr != "" && s.DateStr != dateStr {
			continue
		}
		matched = append(matched, s)
		if limit > 0 && int64(len(matched)) == limit {
			break
		}
	}
	return matched, nil
}

// --- Router helper ---

type testEnv struct {
	router       *gin.Engine
	exerciseRepo *fakeExerciseRepo
	workoutRepo  *fakeWorkoutRepo
	sessionRepo  *fakeSessionRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		exerciseRepo: &fakeExerciseRepo{},
		workoutRepo:  &fakeWorkoutRepo{},
		sessionRepo:  &fakeSessionRepo{},
	}

	env.router = gin.New()
	SetupRoutes(
		env.router,
		nil, // no live database in handler tests; the probe reports Not Available
		"fitness_api_test",
		service.NewExerciseService(env.exerciseRepo),
		service.NewWorkoutService(env.workoutRepo),
		service.NewSessionService(env.sessionRepo),
	)
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
