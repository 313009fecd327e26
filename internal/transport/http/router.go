package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"riskdesk/internal/platform/authctx"
	"riskdesk/pkg/platform/middleware/request"
)

const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultBodyLimit      = 1 << 20
)

// Registrar is implemented by every module handler.
type Registrar interface {
	Register(r chi.Router)
}

// RouterConfig lists what the router mounts. Probes are served without
// authentication; API handlers sit behind Auth.
type RouterConfig struct {
	Logger  *slog.Logger
	Metrics *request.Metrics
	// Auth guards the API routes. Nil leaves them open.
	Auth func(http.Handler) http.Handler
	// RequestTimeout should exceed the enrichment timeout.
	RequestTimeout time.Duration
	Probes         []Registrar
	API            []Registrar
}

// NewRouter wires the middleware stack and every module's routes.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	r := chi.NewRouter()

	r.Use(request.Recovery(cfg.Logger))
	r.Use(request.RequestID)
	r.Use(request.RequestTime)
	r.Use(request.ClientIP)
	r.Use(request.Logger(cfg.Logger))
	r.Use(request.Latency(cfg.Metrics))

	for _, p := range cfg.Probes {
		p.Register(r)
	}
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(api chi.Router) {
		api.Use(request.Timeout(cfg.RequestTimeout))
		api.Use(request.BodyLimit(DefaultBodyLimit))
		api.Use(request.ContentTypeJSON)
		if cfg.Auth != nil {
			api.Use(cfg.Auth)
		}
		for _, h := range cfg.API {
			h.Register(api)
		}
	})

	return r
}

// AuthMiddleware picks bearer-token auth when a provider is configured and a
// fixed development session otherwise.
func AuthMiddleware(provider *authctx.Provider, logger *slog.Logger) func(http.Handler) http.Handler {
	if provider == nil {
		return authctx.DevSession(authctx.DevUserID)
	}
	return authctx.RequireAuth(provider, logger)
}
