package template

import (
	"context"
	"sync"

	"riskdesk/internal/risk/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

// InMemory serves a fixed scenario template catalogue.
type InMemory struct {
	mu        sync.RWMutex
	templates []*models.Template
}

// NewInMemory keeps the given templates in order. Nil entries are kept too,
// since the grouper is responsible for filtering them.
func NewInMemory(templates ...*models.Template) *InMemory {
	s := &InMemory{templates: make([]*models.Template, 0, len(templates))}
	for _, t := range templates {
		s.templates = append(s.templates, copyTemplate(t))
	}
	return s
}

func (s *InMemory) List(_ context.Context) ([]*models.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Template, 0, len(s.templates))
	for _, t := range s.templates {
		out = append(out, copyTemplate(t))
	}
	return out, nil
}

func (s *InMemory) FindByID(_ context.Context, id domain.TemplateID) (*models.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.templates {
		if t != nil && t.ID == id {
			return copyTemplate(t), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func copyTemplate(t *models.Template) *models.Template {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}
