package framework

import (
	"context"
	"slices"
	"strings"

	"riskdesk/internal/audit/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

// InMemory serves a fixed framework catalogue. It is read-only, so no lock is needed.
type InMemory struct {
	frameworks []*models.Framework
}

func NewInMemory(frameworks ...*models.Framework) *InMemory {
	sorted := slices.Clone(frameworks)
	slices.SortFunc(sorted, func(a, b *models.Framework) int { return strings.Compare(a.Name, b.Name) })
	return &InMemory{frameworks: sorted}
}

func (s *InMemory) List(_ context.Context) ([]*models.Framework, error) {
	out := make([]*models.Framework, 0, len(s.frameworks))
	for _, f := range s.frameworks {
		cp := *f
		out = append(out, &cp)
	}
	return out, nil
}

func (s *InMemory) FindByID(_ context.Context, id domain.FrameworkID) (*models.Framework, error) {
	for _, f := range s.frameworks {
		if f.ID == id {
			cp := *f
			return &cp, nil
		}
	}
	return nil, sentinel.ErrNotFound
}
