package theme

import (
	"context"
	"slices"
	"strings"
	"sync"

	"riskdesk/internal/audit/models"
	"riskdesk/internal/sentinel"
)

type InMemory struct {
	mu     sync.RWMutex
	themes []*models.Theme
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

// Create enforces the unique theme name.
func (s *InMemory) Create(_ context.Context, t *models.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.themes {
		if existing.ID == t.ID || existing.Name == t.Name {
			return sentinel.ErrAlreadyExists
		}
	}
	s.themes = append(s.themes, clone(t))
	return nil
}

// List returns themes ordered by name.
func (s *InMemory) List(_ context.Context) ([]*models.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Theme, 0, len(s.themes))
	for _, t := range s.themes {
		out = append(out, clone(t))
	}
	slices.SortFunc(out, func(a, b *models.Theme) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.themes), nil
}

func clone(t *models.Theme) *models.Theme {
	cp := *t
	if t.DurationHours != nil {
		h := *t.DurationHours
		cp.DurationHours = &h
	}
	return &cp
}
