package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"riskdesk/internal/audit/catalogue"
	auditmetrics "riskdesk/internal/audit/metrics"
	"riskdesk/internal/audit/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/requestcontext"
)

// CatalogueService serves the shared theme and framework catalogues.
type CatalogueService struct {
	themes     ThemeStore
	frameworks FrameworkStore
	logger     *slog.Logger
	metrics    *auditmetrics.Metrics

	seedMu sync.Mutex
}

func NewCatalogueService(themes ThemeStore, frameworks FrameworkStore, opts ...Option) *CatalogueService {
	cfg := newConfig(opts)
	return &CatalogueService{
		themes:     themes,
		frameworks: frameworks,
		logger:     cfg.logger,
		metrics:    cfg.metrics,
	}
}

// EnsureDefaultThemes seeds the five default themes when the catalogue is
// empty and reports how many were inserted. A theme another process inserted
// first is skipped.
func (s *CatalogueService) EnsureDefaultThemes(ctx context.Context) (int, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	n, err := s.themes.Count(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count audit themes")
	}
	if n > 0 {
		return 0, nil
	}

	now := requestcontext.Now(ctx)
	created := 0
	for _, t := range catalogue.DefaultThemes() {
		t.CreatedAt = now
		if err := s.themes.Create(ctx, t); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyExists) {
				continue
			}
			return created, dErrors.Wrap(err, dErrors.CodeInternal, "failed to seed audit themes")
		}
		created++
	}
	if s.metrics != nil {
		s.metrics.AddThemesSeeded(created)
	}
	s.logger.InfoContext(ctx, "default audit themes seeded", "count", created)
	return created, nil
}

// ListThemes returns the catalogue, seeding the defaults on first use.
func (s *CatalogueService) ListThemes(ctx context.Context) ([]*models.Theme, error) {
	if _, err := s.EnsureDefaultThemes(ctx); err != nil {
		return nil, err
	}
	list, err := s.themes.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit themes")
	}
	return list, nil
}

func (s *CatalogueService) CreateTheme(ctx context.Context, name, description string, durationHours *float64) (*models.Theme, error) {
	theme := &models.Theme{
		ID:            domain.ThemeID(uuid.New()),
		Name:          strings.TrimSpace(name),
		Description:   strings.TrimSpace(description),
		DurationHours: durationHours,
		CreatedAt:     requestcontext.Now(ctx),
	}
	if theme.Name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if durationHours != nil && *durationHours <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "duration_hours must be positive")
	}
	if err := s.themes.Create(ctx, theme); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyExists) {
			return nil, dErrors.New(dErrors.CodeConflict, "an audit theme with this name already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create audit theme")
	}
	return theme, nil
}

func (s *CatalogueService) ListFrameworks(ctx context.Context) ([]*models.Framework, error) {
	list, err := s.frameworks.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list frameworks")
	}
	return list, nil
}
