package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskdesk/internal/platform/authctx"
	"riskdesk/internal/platform/health"
	"riskdesk/pkg/platform/httputil"
)

type whoAmI struct{}

func (whoAmI) Register(r chi.Router) {
	r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		session, ok := authctx.SessionFrom(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"user_id": session.UserID.String()})
	})
	r.Post("/echo", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteNoContent(w)
	})
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
}

func newTestRouter(t *testing.T, auth func(http.Handler) http.Handler) http.Handler {
	t.Helper()
	return NewRouter(RouterConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Auth:   auth,
		Probes: []Registrar{health.New("test")},
		API:    []Registrar{whoAmI{}},
	})
}

func serve(h http.Handler, method, path, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouterDevSession(t *testing.T) {
	router := newTestRouter(t, AuthMiddleware(nil, slog.Default()))

	rec := serve(router, http.MethodGet, "/whoami", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), authctx.DevUserID.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouterProbesSkipAuth(t *testing.T) {
	router := newTestRouter(t, func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	})

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/health/live", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/metrics", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodGet, "/whoami", "").Code)
}

func TestRouterRejectsNonJSONBodies(t *testing.T) {
	router := newTestRouter(t, nil)

	assert.Equal(t, http.StatusUnsupportedMediaType, serve(router, http.MethodPost, "/echo", "text/plain").Code)
	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodPost, "/echo", "application/json; charset=utf-8").Code)
}

func TestRouterRecoversPanics(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := serve(router, http.MethodGet, "/boom", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
}
