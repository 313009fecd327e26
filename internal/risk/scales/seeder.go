// Package scales bootstraps the global risk scale catalogue and clones it
// into per-company scales.
package scales

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	riskmetrics "riskdesk/internal/risk/metrics"
	"riskdesk/internal/risk/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/platform/sync"
	"riskdesk/pkg/requestcontext"
)

type TemplateStore interface {
	CountTemplates(ctx context.Context) (int, error)
	CreateTemplate(ctx context.Context, t *models.ScaleTemplate) error
	ListTemplates(ctx context.Context) ([]*models.ScaleTemplate, error)
}

type TypeStore interface {
	FindType(ctx context.Context, name string, category models.ScaleCategory) (*models.ScaleType, error)
	CreateType(ctx context.Context, t *models.ScaleType) error
}

type CompanyScaleStore interface {
	ListCompanyScales(ctx context.Context, companyID domain.CompanyID) ([]*models.CompanyScale, error)
	CreateCompanyScale(ctx context.Context, s *models.CompanyScale) error
	CreateLevel(ctx context.Context, l *models.ScaleLevel) error
}

// Store is everything the seeder persists through.
type Store interface {
	TemplateStore
	TypeStore
	CompanyScaleStore
}

// SeedFailure records one template that could not be cloned.
type SeedFailure struct {
	Template string `json:"template"`
	Error    string `json:"error"`
}

// SeedReport summarises one EnsureCompanyScales run.
type SeedReport struct {
	CompanyID domain.CompanyID `json:"company_id"`
	Created   []string         `json:"created"`
	Skipped   []string         `json:"skipped"`
	Failed    []SeedFailure    `json:"failed"`
}

// Complete reports whether every missing template was cloned.
func (r *SeedReport) Complete() bool { return len(r.Failed) == 0 }

type Seeder struct {
	store   Store
	logger  *slog.Logger
	metrics *riskmetrics.Metrics
	locks   *sync.KeyedMutex
}

type Option func(*Seeder)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Seeder) { s.logger = logger }
}

func WithMetrics(m *riskmetrics.Metrics) Option {
	return func(s *Seeder) { s.metrics = m }
}

func New(store Store, opts ...Option) *Seeder {
	s := &Seeder{
		store:  store,
		logger: slog.Default(),
		locks:  sync.NewKeyedMutex(sync.DefaultShardCount),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureGlobalTemplates creates the built-in catalogue when no scale template
// exists at all. It returns the number of templates created.
func (s *Seeder) EnsureGlobalTemplates(ctx context.Context) (int, error) {
	var created int
	err := s.locks.With("global-templates", func() error {
		count, err := s.store.CountTemplates(ctx)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to count scale templates")
		}
		if count > 0 {
			return nil
		}
		for _, t := range DefaultTemplates() {
			t.ID = domain.ScaleTemplateID(uuid.New())
			if err := s.store.CreateTemplate(ctx, t); err != nil {
				if errors.Is(err, sentinel.ErrAlreadyExists) {
					continue
				}
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create scale template "+t.Name)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return created, err
	}
	if created > 0 {
		s.logger.InfoContext(ctx, "risk scale templates bootstrapped", "templates_created", created)
	}
	return created, nil
}

// EnsureCompanyScales clones every missing required template into scales for
// companyID. Each template is cloned independently: a failure is logged and
// recorded in the report, and the remaining templates are still attempted.
// Nothing is rolled back. Running it again never duplicates a scale type the
// company already holds.
func (s *Seeder) EnsureCompanyScales(ctx context.Context, companyID domain.CompanyID) (*SeedReport, error) {
	if companyID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "company ID required")
	}
	if _, err := s.EnsureGlobalTemplates(ctx); err != nil {
		return nil, err
	}

	report := &SeedReport{CompanyID: companyID, Created: []string{}, Skipped: []string{}, Failed: []SeedFailure{}}
	err := s.locks.With(companyID.String(), func() error {
		existing, err := s.store.ListCompanyScales(ctx, companyID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list company scales")
		}
		templates, err := s.store.ListTemplates(ctx)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list scale templates")
		}

		held := newHoldings(existing)
		for _, t := range held.missing(templates) {
			if err := s.cloneTemplate(ctx, companyID, t, held); err != nil {
				if errors.Is(err, errAlreadyHeld) {
					report.Skipped = append(report.Skipped, t.Name)
					continue
				}
				s.logger.WarnContext(ctx, "failed to clone risk scale template",
					"company_id", companyID,
					"template", t.Name,
					"error", err,
				)
				report.Failed = append(report.Failed, SeedFailure{Template: t.Name, Error: err.Error()})
				s.observeFailure()
				continue
			}
			report.Created = append(report.Created, t.Name)
			s.observeCreated()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "company risk scales ensured",
		"company_id", companyID,
		"created", len(report.Created),
		"skipped", len(report.Skipped),
		"failed", len(report.Failed),
	)
	return report, nil
}

var errAlreadyHeld = errors.New("company already holds this scale type")

func (s *Seeder) cloneTemplate(ctx context.Context, companyID domain.CompanyID, t *models.ScaleTemplate, held *holdings) error {
	scaleType, err := s.resolveType(ctx, t)
	if err != nil {
		return err
	}
	if held.hasType(scaleType.ID) {
		return errAlreadyHeld
	}

	scale := &models.CompanyScale{
		ID:          domain.CompanyScaleID(uuid.New()),
		CompanyID:   companyID,
		ScaleTypeID: scaleType.ID,
		IsActive:    true,
		CreatedAt:   requestcontext.Now(ctx),
		Type:        scaleType,
	}
	if err := s.store.CreateCompanyScale(ctx, scale); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyExists) {
			return errAlreadyHeld
		}
		return fmt.Errorf("create company scale: %w", err)
	}
	held.add(scale)

	for _, lt := range t.Levels {
		level := &models.ScaleLevel{
			ID:             domain.ScaleLevelID(uuid.New()),
			CompanyScaleID: scale.ID,
			LevelValue:     lt.LevelValue,
			Name:           lt.Name,
			Description:    lt.Description,
			Color:          lt.Color,
		}
		if err := s.store.CreateLevel(ctx, level); err != nil {
			return fmt.Errorf("create level %d: %w", lt.LevelValue, err)
		}
	}
	return nil
}

// resolveType finds the shared type for t by name and category, creating it
// when absent. A concurrent creator winning the race is resolved by re-reading.
func (s *Seeder) resolveType(ctx context.Context, t *models.ScaleTemplate) (*models.ScaleType, error) {
	found, err := s.store.FindType(ctx, t.Name, t.Category)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, fmt.Errorf("find scale type: %w", err)
	}

	created := &models.ScaleType{
		ID:          domain.ScaleTypeID(uuid.New()),
		Name:        t.Name,
		Category:    t.Category,
		Description: t.Description,
	}
	if err := s.store.CreateType(ctx, created); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyExists) {
			return s.store.FindType(ctx, t.Name, t.Category)
		}
		return nil, fmt.Errorf("create scale type: %w", err)
	}
	return created, nil
}

func (s *Seeder) observeCreated() {
	if s.metrics != nil {
		s.metrics.IncrementScalesSeeded()
	}
}

func (s *Seeder) observeFailure() {
	if s.metrics != nil {
		s.metrics.IncrementScaleSeedFailures()
	}
}

// holdings is the set of scales a company already has.
type holdings struct {
	typeIDs       map[domain.ScaleTypeID]struct{}
	impactNames   map[string]struct{}
	hasLikelihood bool
}

func newHoldings(existing []*models.CompanyScale) *holdings {
	h := &holdings{
		typeIDs:     make(map[domain.ScaleTypeID]struct{}, len(existing)),
		impactNames: make(map[string]struct{}, len(existing)),
	}
	for _, cs := range existing {
		h.add(cs)
	}
	return h
}

func (h *holdings) add(cs *models.CompanyScale) {
	h.typeIDs[cs.ScaleTypeID] = struct{}{}
	if cs.Type == nil {
		return
	}
	switch cs.Type.Category {
	case models.CategoryLikelihood:
		h.hasLikelihood = true
	case models.CategoryImpact:
		h.impactNames[cs.Type.Name] = struct{}{}
	}
}

func (h *holdings) hasType(id domain.ScaleTypeID) bool {
	_, ok := h.typeIDs[id]
	return ok
}

// missing returns the templates still required: the first likelihood template
// if the company has no likelihood scale, and every required impact template
// whose name the company does not hold.
func (h *holdings) missing(templates []*models.ScaleTemplate) []*models.ScaleTemplate {
	required := make(map[string]struct{}, len(ImpactNames))
	for _, n := range ImpactNames {
		required[n] = struct{}{}
	}

	out := make([]*models.ScaleTemplate, 0, len(templates))
	needLikelihood := !h.hasLikelihood
	for _, t := range templates {
		switch t.Category {
		case models.CategoryLikelihood:
			if needLikelihood {
				out = append(out, t)
				needLikelihood = false
			}
		case models.CategoryImpact:
			if _, ok := required[t.Name]; !ok {
				continue
			}
			if _, ok := h.impactNames[t.Name]; !ok {
				out = append(out, t)
			}
		}
	}
	return out
}
