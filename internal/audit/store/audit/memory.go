package audit

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"riskdesk/internal/audit/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

// InMemory is a thread-safe audit store for tests and the database-less demo mode.
type InMemory struct {
	mu     sync.RWMutex
	audits map[domain.AuditID]*models.Audit
	users  map[domain.AuditID]map[domain.UserID]*models.AuditUser
}

func NewInMemory() *InMemory {
	return &InMemory{
		audits: make(map[domain.AuditID]*models.Audit),
		users:  make(map[domain.AuditID]map[domain.UserID]*models.AuditUser),
	}
}

func (s *InMemory) Create(_ context.Context, a *models.Audit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.audits[a.ID]; ok {
		return sentinel.ErrAlreadyExists
	}
	s.audits[a.ID] = clone(a)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id domain.AuditID) (*models.Audit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found, ok := s.audits[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(found), nil
}

// ListByCompany returns the company's audits, newest first.
func (s *InMemory) ListByCompany(_ context.Context, companyID domain.CompanyID) ([]*models.Audit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Audit, 0)
	for _, a := range s.audits {
		if a.CompanyID == companyID {
			out = append(out, clone(a))
		}
	}
	slices.SortFunc(out, func(a, b *models.Audit) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

func (s *InMemory) Update(_ context.Context, merged *models.Audit, _ map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.audits[merged.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.audits[merged.ID] = clone(merged)
	return nil
}

// Delete removes the audit and its user assignments.
func (s *InMemory) Delete(_ context.Context, id domain.AuditID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.audits[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.audits, id)
	delete(s.users, id)
	return nil
}

// AssignUsers upserts assignments; assigning a user again replaces the role.
func (s *InMemory) AssignUsers(_ context.Context, auditID domain.AuditID, assignments []*models.AuditUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.audits[auditID]; !ok {
		return sentinel.ErrNotFound
	}
	byUser, ok := s.users[auditID]
	if !ok {
		byUser = make(map[domain.UserID]*models.AuditUser)
		s.users[auditID] = byUser
	}
	for _, u := range assignments {
		cp := *u
		if existing, ok := byUser[u.UserID]; ok {
			cp.CreatedAt = existing.CreatedAt
		}
		byUser[u.UserID] = &cp
	}
	return nil
}

func (s *InMemory) ListUsers(_ context.Context, auditID domain.AuditID) ([]*models.AuditUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.AuditUser, 0, len(s.users[auditID]))
	for _, u := range s.users[auditID] {
		cp := *u
		out = append(out, &cp)
	}
	slices.SortFunc(out, func(a, b *models.AuditUser) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID.String(), b.UserID.String())
	})
	return out, nil
}

func clone(a *models.Audit) *models.Audit {
	cp := *a
	if a.StartDate != nil {
		d := *a.StartDate
		cp.StartDate = &d
	}
	if a.EndDate != nil {
		d := *a.EndDate
		cp.EndDate = &d
	}
	if a.Scope != nil {
		sc := *a.Scope
		cp.Scope = &sc
	}
	if a.CreatedBy != nil {
		u := *a.CreatedBy
		cp.CreatedBy = &u
	}
	return &cp
}
