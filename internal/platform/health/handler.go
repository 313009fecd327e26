// Package health serves the probes and a status document describing which
// backends the process is running on.
package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"riskdesk/pkg/platform/httputil"
)

// Version is set at build time via ldflags.
var Version = "dev"

const defaultCheckTimeout = 2 * time.Second

// CheckFunc reports nil when a dependency is healthy. Failing checks make the
// readiness probe answer 503.
type CheckFunc func(ctx context.Context) error

// ComponentFunc describes a component that never fails readiness, such as the
// storage mode or the enrichment breaker state.
type ComponentFunc func() string

type Handler struct {
	started      time.Time
	environment  string
	checkTimeout time.Duration

	mu         sync.RWMutex
	checks     map[string]CheckFunc
	components map[string]ComponentFunc
}

func New(environment string) *Handler {
	return &Handler{
		started:      time.Now(),
		environment:  environment,
		checkTimeout: defaultCheckTimeout,
		checks:       make(map[string]CheckFunc),
		components:   make(map[string]ComponentFunc),
	}
}

func (h *Handler) RegisterCheck(name string, check CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

func (h *Handler) RegisterComponent(name string, describe ComponentFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.components[name] = describe
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.HandleStatus)
	r.Get("/health/live", h.HandleLiveness)
	r.Get("/health/ready", h.HandleReadiness)
}

type LivenessResponse struct {
	Status string `json:"status"`
}

func (h *Handler) HandleLiveness(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, LivenessResponse{Status: "alive"})
}

type CheckResult struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
}

type ReadinessResponse struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

// HandleReadiness runs the registered checks concurrently, each bounded by the
// check timeout, and answers 503 when any of them fails.
func (h *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	results := h.runChecks(r.Context())

	resp := ReadinessResponse{Status: "ready", Checks: results}
	for _, res := range results {
		if res.Status != "up" {
			resp.Status = "not_ready"
		}
	}
	if resp.Status != "ready" {
		httputil.WriteJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) runChecks(ctx context.Context) map[string]CheckResult {
	h.mu.RLock()
	names := make([]string, 0, len(h.checks))
	checks := make([]CheckFunc, 0, len(h.checks))
	for name, check := range h.checks {
		names = append(names, name)
		checks = append(checks, check)
	}
	h.mu.RUnlock()

	out := make([]CheckResult, len(checks))
	var g errgroup.Group
	for i, check := range checks {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, h.checkTimeout)
			defer cancel()
			start := time.Now()
			err := check(cctx)
			out[i] = CheckResult{Status: "up", LatencyMs: time.Since(start).Milliseconds()}
			if err != nil {
				out[i].Status = "down"
				out[i].Error = err.Error()
			}
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // checks report through out

	results := make(map[string]CheckResult, len(names))
	for i, name := range names {
		results[name] = out[i]
	}
	return results
}

type StatusResponse struct {
	Status        string            `json:"status"`
	Version       string            `json:"version"`
	Environment   string            `json:"environment"`
	UptimeSeconds int64             `json:"uptime_seconds"`
	Timestamp     string            `json:"timestamp"`
	Components    map[string]string `json:"components"`
}

func (h *Handler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, StatusResponse{
		Status:        "healthy",
		Version:       Version,
		Environment:   h.environment,
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Components:    h.describe(),
	})
}

func (h *Handler) describe() map[string]string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make(map[string]string, len(h.components))
	for name, describe := range h.components {
		out[name] = describe()
	}
	return out
}
