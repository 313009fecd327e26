package service

import (
	"log/slog"
	"time"

	riskmetrics "riskdesk/internal/risk/metrics"
)

// serviceConfig holds optional dependencies for services.
type serviceConfig struct {
	logger    *slog.Logger
	metrics   *riskmetrics.Metrics
	companies CompanyChecker
	tx        StoreTx
	cacheTTL  time.Duration
	cacheSize int
	locale    string
}

// Option configures a service.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *riskmetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

// WithCompanyChecker makes writes fail with not_found for unknown companies.
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

// WithTemplateCache sets the catalogue cache lifetime and capacity.
func WithTemplateCache(ttl time.Duration, size int) Option {
	return func(c *serviceConfig) {
		c.cacheTTL = ttl
		c.cacheSize = size
	}
}

// WithLocale sets the collation locale used to order template groups.
func WithLocale(locale string) Option {
	return func(c *serviceConfig) {
		c.locale = locale
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
