package scale

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"riskdesk/internal/risk/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

type typeKey struct {
	name     string
	category models.ScaleCategory
}

type companyTypeKey struct {
	company domain.CompanyID
	typeID  domain.ScaleTypeID
}

// InMemory keeps the scale catalogue and company scales in process memory.
type InMemory struct {
	mu            sync.RWMutex
	templates     []*models.ScaleTemplate
	templateNames map[string]struct{}
	types         map[domain.ScaleTypeID]*models.ScaleType
	typeIdx       map[typeKey]domain.ScaleTypeID
	scales        map[domain.CompanyScaleID]*models.CompanyScale
	scaleIdx      map[companyTypeKey]domain.CompanyScaleID
	byCompany     map[domain.CompanyID][]domain.CompanyScaleID
	levels        map[domain.CompanyScaleID][]*models.ScaleLevel
}

func NewInMemory() *InMemory {
	return &InMemory{
		templateNames: make(map[string]struct{}),
		types:         make(map[domain.ScaleTypeID]*models.ScaleType),
		typeIdx:       make(map[typeKey]domain.ScaleTypeID),
		scales:        make(map[domain.CompanyScaleID]*models.CompanyScale),
		scaleIdx:      make(map[companyTypeKey]domain.CompanyScaleID),
		byCompany:     make(map[domain.CompanyID][]domain.CompanyScaleID),
		levels:        make(map[domain.CompanyScaleID][]*models.ScaleLevel),
	}
}

func (s *InMemory) CountTemplates(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.templates), nil
}

func (s *InMemory) CreateTemplate(_ context.Context, t *models.ScaleTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.templateNames[t.Name]; ok {
		return fmt.Errorf("scale template %q: %w", t.Name, sentinel.ErrAlreadyExists)
	}
	cp := *t
	cp.Levels = slices.Clone(t.Levels)
	s.templates = append(s.templates, &cp)
	s.templateNames[t.Name] = struct{}{}
	return nil
}

// ListTemplates returns templates in creation order with levels ascending.
func (s *InMemory) ListTemplates(_ context.Context) ([]*models.ScaleTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.ScaleTemplate, 0, len(s.templates))
	for _, t := range s.templates {
		cp := *t
		cp.Levels = slices.Clone(t.Levels)
		slices.SortFunc(cp.Levels, func(a, b models.LevelTemplate) int { return cmp.Compare(a.LevelValue, b.LevelValue) })
		out = append(out, &cp)
	}
	return out, nil
}

func (s *InMemory) FindType(_ context.Context, name string, category models.ScaleCategory) (*models.ScaleType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.typeIdx[typeKey{name: name, category: category}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *s.types[id]
	return &cp, nil
}

func (s *InMemory) CreateType(_ context.Context, t *models.ScaleType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := typeKey{name: t.Name, category: t.Category}
	if _, ok := s.typeIdx[key]; ok {
		return fmt.Errorf("scale type %q: %w", t.Name, sentinel.ErrAlreadyExists)
	}
	cp := *t
	s.types[t.ID] = &cp
	s.typeIdx[key] = t.ID
	return nil
}

func (s *InMemory) ListCompanyScales(_ context.Context, companyID domain.CompanyID) ([]*models.CompanyScale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byCompany[companyID]
	out := make([]*models.CompanyScale, 0, len(ids))
	for _, id := range ids {
		cp := *s.scales[id]
		if t, ok := s.types[cp.ScaleTypeID]; ok {
			tc := *t
			cp.Type = &tc
		}
		out = append(out, &cp)
	}
	return out, nil
}

func (s *InMemory) CreateCompanyScale(_ context.Context, cs *models.CompanyScale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := companyTypeKey{company: cs.CompanyID, typeID: cs.ScaleTypeID}
	if _, ok := s.scaleIdx[key]; ok {
		return fmt.Errorf("company scale: %w", sentinel.ErrAlreadyExists)
	}
	cp := *cs
	cp.Type = nil
	s.scales[cs.ID] = &cp
	s.scaleIdx[key] = cs.ID
	s.byCompany[cs.CompanyID] = append(s.byCompany[cs.CompanyID], cs.ID)
	return nil
}

func (s *InMemory) CreateLevel(_ context.Context, l *models.ScaleLevel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scales[l.CompanyScaleID]; !ok {
		return fmt.Errorf("company scale %s: %w", l.CompanyScaleID, sentinel.ErrNotFound)
	}
	cp := *l
	s.levels[l.CompanyScaleID] = append(s.levels[l.CompanyScaleID], &cp)
	return nil
}

// ListLevels returns the levels of one company scale in ascending value.
func (s *InMemory) ListLevels(_ context.Context, scaleID domain.CompanyScaleID) ([]*models.ScaleLevel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.ScaleLevel, 0, len(s.levels[scaleID]))
	for _, l := range s.levels[scaleID] {
		cp := *l
		out = append(out, &cp)
	}
	slices.SortFunc(out, func(a, b *models.ScaleLevel) int { return cmp.Compare(a.LevelValue, b.LevelValue) })
	return out, nil
}

// CountCompanyScales returns how many scales a company holds.
func (s *InMemory) CountCompanyScales(_ context.Context, companyID domain.CompanyID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byCompany[companyID]), nil
}
