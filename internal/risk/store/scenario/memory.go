package scenario

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"riskdesk/internal/risk/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

// InMemory is a thread-safe scenario store for tests and the database-less demo mode.
type InMemory struct {
	mu        sync.RWMutex
	scenarios map[domain.ScenarioID]*models.RiskScenario
}

func NewInMemory() *InMemory {
	return &InMemory{scenarios: make(map[domain.ScenarioID]*models.RiskScenario)}
}

func (s *InMemory) Create(_ context.Context, scenario *models.RiskScenario) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scenarios[scenario.ID]; ok {
		return sentinel.ErrAlreadyExists
	}
	s.scenarios[scenario.ID] = clone(scenario)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id domain.ScenarioID) (*models.RiskScenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found, ok := s.scenarios[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(found), nil
}

// ListByCompany returns the company's scenarios, newest first.
func (s *InMemory) ListByCompany(_ context.Context, companyID domain.CompanyID) ([]*models.RiskScenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.RiskScenario, 0)
	for _, sc := range s.scenarios {
		if sc.CompanyID == companyID {
			out = append(out, clone(sc))
		}
	}
	slices.SortFunc(out, func(a, b *models.RiskScenario) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

// Update replaces the stored scenario with merged. The column changes are
// only needed by the SQL store.
func (s *InMemory) Update(_ context.Context, merged *models.RiskScenario, _ map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scenarios[merged.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.scenarios[merged.ID] = clone(merged)
	return nil
}

func (s *InMemory) Delete(_ context.Context, id domain.ScenarioID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scenarios[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.scenarios, id)
	return nil
}

func clone(s *models.RiskScenario) *models.RiskScenario {
	cp := *s
	if s.TemplateID != nil {
		id := *s.TemplateID
		cp.TemplateID = &id
	}
	if s.Perimeter != nil {
		p := *s.Perimeter
		cp.Perimeter = &p
	}
	return &cp
}
