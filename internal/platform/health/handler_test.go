package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.Register(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLiveness(t *testing.T) {
	w := serve(New("test"), "/health/live")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Run("ready when all checks pass", func(t *testing.T) {
		h := New("test")
		h.RegisterCheck("postgres", func(context.Context) error { return nil })

		w := serve(h, "/health/ready")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not ready when a check fails", func(t *testing.T) {
		h := New("test")
		h.RegisterCheck("postgres", func(context.Context) error { return nil })
		h.RegisterCheck("genai", func(context.Context) error { return errors.New("circuit open") })

		w := serve(h, "/health/ready")

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var body ReadinessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "not_ready", body.Status)
		assert.Equal(t, "up", body.Checks["postgres"].Status)
		assert.Equal(t, "down", body.Checks["genai"].Status)
		assert.Equal(t, "circuit open", body.Checks["genai"].Error)
	})
}

func TestStatus(t *testing.T) {
	w := serve(New("staging"), "/health")

	var body StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "staging", body.Environment)
	assert.Empty(t, body.Components)
}

func TestReadinessCheckTimeout(t *testing.T) {
	h := New("test")
	h.checkTimeout = 20 * time.Millisecond
	h.RegisterCheck("postgres", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	w := serve(h, "/health/ready")

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body ReadinessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "context deadline exceeded", body.Checks["postgres"].Error)
}

func TestStatusComponents(t *testing.T) {
	h := New("test")
	h.RegisterComponent("storage", func() string { return "memory" })
	h.RegisterComponent("enrichment", func() string { return "not_configured" })

	w := serve(h, "/health")

	var body StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"storage": "memory", "enrichment": "not_configured"}, body.Components)
}
