package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON[map[string]string](t, w)
	assert.Equal(t, "Fitness API is running", body["message"])
}

func TestTestDatabase_NoClient(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/test", nil)

	require.Equal(t, http.StatusOK, w.Code, "the probe endpoint never fails")
	body := decodeJSON[StatusResponse](t, w)
	assert.Equal(t, "Running", body.Backend)
	assert.Equal(t, "Not Available", body.Database)
	assert.Equal(t, "Not Connected", body.ConnectionStatus)
	assert.Empty(t, body.Collections)
}

func TestTestDatabase_EnvPresence(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("DATABASE_URI", "mongodb://example:27017")
	t.Setenv("DATABASE_NAME", "")

	w := env.do(t, http.MethodGet, "/test", nil)

	body := decodeJSON[StatusResponse](t, w)
	assert.Equal(t, "Set", body.DatabaseURI)
	assert.Equal(t, "Not Set", body.DatabaseName)
	assert.NotContains(t, w.Body.String(), "example:27017", "values must never be revealed")
}

func TestRequestIDHeader(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/", nil)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
