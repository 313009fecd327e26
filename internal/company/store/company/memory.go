package company

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"riskdesk/internal/company/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

// InMemory is a thread-safe company store for tests and the database-less demo mode.
type InMemory struct {
	mu        sync.RWMutex
	companies map[domain.CompanyID]*models.Company
}

func NewInMemory() *InMemory {
	return &InMemory{companies: make(map[domain.CompanyID]*models.Company)}
}

func (s *InMemory) Create(_ context.Context, c *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[c.ID]; ok {
		return sentinel.ErrAlreadyExists
	}
	s.companies[c.ID] = clone(c)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id domain.CompanyID) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.companies[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(c), nil
}

// List orders companies by name, ignoring case.
func (s *InMemory) List(_ context.Context) ([]*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Company, 0, len(s.companies))
	for _, c := range s.companies {
		out = append(out, clone(c))
	}
	slices.SortFunc(out, func(a, b *models.Company) int {
		if c := cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

func (s *InMemory) Update(_ context.Context, merged *models.Company, _ map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[merged.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.companies[merged.ID] = clone(merged)
	return nil
}

func (s *InMemory) Exists(_ context.Context, id domain.CompanyID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.companies[id]
	return ok, nil
}

func clone(c *models.Company) *models.Company {
	cp := *c
	if c.CreationYear != nil {
		y := *c.CreationYear
		cp.CreationYear = &y
	}
	if c.LastAuditDate != nil {
		d := *c.LastAuditDate
		cp.LastAuditDate = &d
	}
	return &cp
}
