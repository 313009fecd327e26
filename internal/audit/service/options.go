package service

import (
	"log/slog"

	auditmetrics "riskdesk/internal/audit/metrics"
	"riskdesk/internal/audit/plan"
)

type serviceConfig struct {
	logger    *slog.Logger
	metrics   *auditmetrics.Metrics
	companies CompanyChecker
	tx        StoreTx
	settings  plan.Settings
}

type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *auditmetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func WithCompanyChecker(companies CompanyChecker) Option {
	return func(c *serviceConfig) {
		c.companies = companies
	}
}

func WithTx(tx StoreTx) Option {
	return func(c *serviceConfig) {
		c.tx = tx
	}
}

// WithPlanSettings overrides plan.DefaultSettings.
func WithPlanSettings(settings plan.Settings) Option {
	return func(c *serviceConfig) {
		c.settings = settings
	}
}

func newConfig(opts []Option) *serviceConfig {
	cfg := &serviceConfig{settings: plan.DefaultSettings()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.tx == nil {
		cfg.tx = newInMemoryStoreTx()
	}
	return cfg
}
