package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	riskmetrics "riskdesk/internal/risk/metrics"
	"riskdesk/internal/risk/models"
	"riskdesk/internal/risk/templates"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
)

const (
	defaultTemplateCacheTTL = 5 * time.Minute
	catalogueKey            = "catalogue"
)

// TemplateService searches the read-only scenario template catalogue.
// The catalogue is cached since it only changes through migrations.
type TemplateService struct {
	templates TemplateStore
	cache     *expirable.LRU[string, []*models.Template]
	locale    string
	logger    *slog.Logger
	metrics   *riskmetrics.Metrics
}

func NewTemplateService(store TemplateStore, opts ...Option) *TemplateService {
	cfg := newConfig(opts)
	ttl := cfg.cacheTTL
	if ttl <= 0 {
		ttl = defaultTemplateCacheTTL
	}
	size := cfg.cacheSize
	if size <= 0 {
		size = 1
	}
	locale := cfg.locale
	if locale == "" {
		locale = templates.DefaultLocale
	}
	return &TemplateService{
		templates: store,
		cache:     expirable.NewLRU[string, []*models.Template](size, nil, ttl),
		locale:    locale,
		logger:    cfg.logger,
		metrics:   cfg.metrics,
	}
}

// Search returns the catalogue grouped by domain, filtered by term.
func (s *TemplateService) Search(ctx context.Context, term string) ([]templates.DomainGroup, error) {
	catalogue, err := s.catalogue(ctx)
	if err != nil {
		return nil, err
	}
	return templates.Group(catalogue, term, templates.WithLocale(s.locale)), nil
}

func (s *TemplateService) Get(ctx context.Context, id domain.TemplateID) (*models.Template, error) {
	if id.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "template ID required")
	}
	t, err := s.templates.FindByID(ctx, id)
	if err != nil {
		return nil, wrapTemplateErr(err, "failed to load risk scenario template")
	}
	return t, nil
}

// Invalidate drops the cached catalogue.
func (s *TemplateService) Invalidate() {
	s.cache.Purge()
}

func (s *TemplateService) catalogue(ctx context.Context) ([]*models.Template, error) {
	if cached, ok := s.cache.Get(catalogueKey); ok {
		s.observeCache(true)
		return cached, nil
	}
	s.observeCache(false)

	list, err := s.templates.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load risk scenario templates")
	}
	s.cache.Add(catalogueKey, list)
	s.logger.DebugContext(ctx, "scenario template catalogue loaded", "templates", len(list))
	return list, nil
}

func (s *TemplateService) observeCache(hit bool) {
	if s.metrics != nil {
		s.metrics.ObserveTemplateCache(hit)
	}
}
