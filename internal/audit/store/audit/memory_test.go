package audit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"riskdesk/internal/audit/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

type InMemorySuite struct {
	suite.Suite
	store     *InMemory
	ctx       context.Context
	companyID domain.CompanyID
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.companyID = domain.CompanyID(uuid.New())
}

func (s *InMemorySuite) newAudit(name string, created time.Time) *models.Audit {
	a := &models.Audit{
		ID:          domain.AuditID(uuid.New()),
		CompanyID:   s.companyID,
		FrameworkID: domain.FrameworkID(uuid.New()),
		Name:        name,
		Status:      models.StatusDraft,
		CreatedAt:   created,
	}
	s.Require().NoError(s.store.Create(s.ctx, a))
	return a
}

func (s *InMemorySuite) TestCreateAndFind() {
	a := s.newAudit("ISO", time.Now())
	s.ErrorIs(s.store.Create(s.ctx, a), sentinel.ErrAlreadyExists)

	got, err := s.store.FindByID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(a, got)

	got.Name = "mutated"
	again, err := s.store.FindByID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal("ISO", again.Name)

	_, err = s.store.FindByID(s.ctx, domain.AuditID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemorySuite) TestListByCompanyNewestFirst() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	older := s.newAudit("older", base)
	newer := s.newAudit("newer", base.Add(time.Hour))
	other := &models.Audit{ID: domain.AuditID(uuid.New()), CompanyID: domain.CompanyID(uuid.New())}
	s.Require().NoError(s.store.Create(s.ctx, other))

	list, err := s.store.ListByCompany(s.ctx, s.companyID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(newer.ID, list[0].ID)
	s.Equal(older.ID, list[1].ID)
}

func (s *InMemorySuite) TestUpdateAndDelete() {
	a := s.newAudit("ISO", time.Now())
	a.Status = models.StatusReview
	s.Require().NoError(s.store.Update(s.ctx, a, map[string]any{"status": "review"}))

	got, err := s.store.FindByID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusReview, got.Status)

	s.Require().NoError(s.store.AssignUsers(s.ctx, a.ID, []*models.AuditUser{{AuditID: a.ID, UserID: domain.UserID(uuid.New()), Role: models.RoleAuditor}}))
	s.Require().NoError(s.store.Delete(s.ctx, a.ID))
	s.ErrorIs(s.store.Delete(s.ctx, a.ID), sentinel.ErrNotFound)
	s.ErrorIs(s.store.Update(s.ctx, a, nil), sentinel.ErrNotFound)

	users, err := s.store.ListUsers(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Empty(users)
}

func (s *InMemorySuite) TestAssignUsersReplacesRole() {
	a := s.newAudit("ISO", time.Now())
	user := domain.UserID(uuid.New())
	first := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	s.Require().NoError(s.store.AssignUsers(s.ctx, a.ID, []*models.AuditUser{{AuditID: a.ID, UserID: user, Role: models.RoleAuditor, CreatedAt: first}}))
	s.Require().NoError(s.store.AssignUsers(s.ctx, a.ID, []*models.AuditUser{{AuditID: a.ID, UserID: user, Role: models.RoleLeadAuditor, CreatedAt: first.Add(time.Hour)}}))

	users, err := s.store.ListUsers(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal(models.RoleLeadAuditor, users[0].Role)
	s.Equal(first, users[0].CreatedAt)

	s.ErrorIs(s.store.AssignUsers(s.ctx, domain.AuditID(uuid.New()), nil), sentinel.ErrNotFound)
}
