package service

import (
	"log/slog"

	companymetrics "riskdesk/internal/company/metrics"
)

type serviceConfig struct {
	logger    *slog.Logger
	metrics   *companymetrics.Metrics
	tx        StoreTx
	audits    AuditLister
	scenarios ScenarioLister
	scales    ScaleCounter
}

type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *companymetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func WithTx(tx StoreTx) Option {
	return func(c *serviceConfig) {
		c.tx = tx
	}
}

// WithOverviewSources sets the stores read by Overview. Any of them may be
// nil, in which case that section of the overview is empty.
func WithOverviewSources(audits AuditLister, scenarios ScenarioLister, scales ScaleCounter) Option {
	return func(c *serviceConfig) {
		c.audits = audits
		c.scenarios = scenarios
		c.scales = scales
	}
}

func newConfig(opts []Option) *serviceConfig {
	cfg := &serviceConfig{}
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
