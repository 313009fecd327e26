package service

import (
	"log/slog"
	"time"

	"riskdesk/internal/enrichment/metrics"
	"riskdesk/internal/enrichment/tracer"
	"riskdesk/pkg/platform/circuit"
)

const DefaultTimeout = 20 * time.Second

type serviceConfig struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  tracer.Tracer
	breaker *circuit.Breaker
	timeout time.Duration
	model   string
}

type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(c *serviceConfig) {
		c.tracer = t
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(c *serviceConfig) {
		c.breaker = b
	}
}

// WithTimeout bounds each model call. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *serviceConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithModel only labels traces; the generator decides which model answers.
func WithModel(model string) Option {
	return func(c *serviceConfig) {
		c.model = model
	}
}

func newConfig(opts []Option) *serviceConfig {
	cfg := &serviceConfig{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.tracer == nil {
		cfg.tracer = tracer.NewNoop()
	}
	if cfg.breaker == nil {
		cfg.breaker = circuit.New("enrichment")
	}
	return cfg
}
