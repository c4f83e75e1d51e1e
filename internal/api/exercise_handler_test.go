package api

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexIDPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

func TestCreateExercise(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/exercises", map[string]any{
		"name":         "Bench Press",
		"muscle_group": "Chest",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON[map[string]string](t, w)
	assert.Regexp(t, hexIDPattern, body["id"])
	require.Len(t, env.exerciseRepo.exercises, 1)
	assert.Equal(t, "Bench Press", env.exerciseRepo.exercises[0].Name)
	assert.Equal(t, "Chest", env.exerciseRepo.exercises[0].MuscleGroup)
}

func TestCreateExercise_MissingName(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/exercises", map[string]any{
		"muscle_group": "Back",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "error")
	assert.Empty(t, env.exerciseRepo.exercises, "nothing should be persisted on validation failure")
}

func TestCreateExercise_StoreFault(t *testing.T) {
	env := newTestEnv(t)
	env.exerciseRepo.createErr = assert.AnError

	w := env.do(t, http.MethodPost, "/api/exercises", map[string]any{"name": "Squat"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), assert.AnError.Error())
}

func TestListExercises_RoundTrip(t *testing.T) {
	env := newTestEnv(t)

	created := decodeJSON[map[string]string](t, env.do(t, http.MethodPost, "/api/exercises", map[string]any{
		"name":         "Bench Press",
		"muscle_group": "Chest",
	}))

	w := env.do(t, http.MethodGet, "/api/exercises", nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeJSON[[]map[string]any](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, created["id"], list[0]["id"])
	assert.Equal(t, "Bench Press", list[0]["name"])
	_, hasRawID := list[0]["_id"]
	assert.False(t, hasRawID, "raw _id must never leak into responses")
}

func TestListExercises_Empty(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/exercises", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestListExercises_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/exercises", map[string]any{"name": "Deadlift"})
	env.do(t, http.MethodPost, "/api/exercises", map[string]any{"name": "Row"})

	first := env.do(t, http.MethodGet, "/api/exercises", nil)
	second := env.do(t, http.MethodGet, "/api/exercises", nil)

	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestListExercises_StoreFault(t *testing.T) {
	env := newTestEnv(t)
	env.exerciseRepo.listErr = assert.AnError

	w := env.do(t, http.MethodGet, "/api/exercises", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
