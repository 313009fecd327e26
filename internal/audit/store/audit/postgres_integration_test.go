//go:build integration

package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"riskdesk/internal/audit/models"
	auditstore "riskdesk/internal/audit/store/audit"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
	"riskdesk/pkg/testutil/containers"
)

// Seeded by the catalogue migration.
var iso27001 = domain.FrameworkID(uuid.MustParse("0b7f5c10-0000-4000-8000-000000000001"))

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *auditstore.PostgresStore
	now      time.Time
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = auditstore.NewPostgres(s.postgres.DB)
	s.now = time.Date(2024, 4, 10, 14, 0, 0, 0, time.UTC)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateModuleTables(context.Background()))
}

func (s *PostgresStoreSuite) createAudit(ctx context.Context) *models.Audit {
	companyID := s.postgres.CreateTestCompany(ctx, s.T())
	start := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	a := &models.Audit{
		ID:          domain.AuditID(uuid.New()),
		CompanyID:   companyID,
		FrameworkID: iso27001,
		Name:        "ISO surveillance",
		Status:      models.StatusPlanned,
		StartDate:   &start,
		CreatedAt:   s.now,
		UpdatedAt:   s.now,
	}
	s.Require().NoError(s.store.Create(ctx, a))
	return a
}

func (s *PostgresStoreSuite) TestCreateAndFind() {
	ctx := context.Background()
	a := s.createAudit(ctx)

	got, err := s.store.FindByID(ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(a.Name, got.Name)
	s.Equal(models.StatusPlanned, got.Status)
	s.Equal(iso27001, got.FrameworkID)
	s.Nil(got.Scope)
	s.Nil(got.EndDate)
	s.Require().NotNil(got.StartDate)
	s.Equal("2024-05-06", got.StartDate.Format("2006-01-02"))

	list, err := s.store.ListByCompany(ctx, a.CompanyID)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *PostgresStoreSuite) TestAssignUsersUpserts() {
	ctx := context.Background()
	a := s.createAudit(ctx)
	lead := domain.UserID(uuid.New())
	auditee := domain.UserID(uuid.New())

	s.Require().NoError(s.store.AssignUsers(ctx, a.ID, []*models.AuditUser{
		{AuditID: a.ID, UserID: lead, Role: models.RoleAuditor, CreatedAt: s.now},
		{AuditID: a.ID, UserID: auditee, Role: models.RoleAuditee, CreatedAt: s.now.Add(time.Second)},
	}))
	s.Require().NoError(s.store.AssignUsers(ctx, a.ID, []*models.AuditUser{
		{AuditID: a.ID, UserID: lead, Role: models.RoleLeadAuditor, CreatedAt: s.now.Add(time.Minute)},
	}))

	users, err := s.store.ListUsers(ctx, a.ID)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal(lead, users[0].UserID)
	s.Equal(models.RoleLeadAuditor, users[0].Role)
	s.Equal(models.RoleAuditee, users[1].Role)
}

func (s *PostgresStoreSuite) TestAssignUsersUnknownAudit() {
	ctx := context.Background()
	missing := domain.AuditID(uuid.New())

	err := s.store.AssignUsers(ctx, missing, []*models.AuditUser{
		{AuditID: missing, UserID: domain.UserID(uuid.New()), Role: models.RoleObserver, CreatedAt: s.now},
	})

	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDeleteCascadesAssignments() {
	ctx := context.Background()
	a := s.createAudit(ctx)
	s.Require().NoError(s.store.AssignUsers(ctx, a.ID, []*models.AuditUser{
		{AuditID: a.ID, UserID: domain.UserID(uuid.New()), Role: models.RoleAuditor, CreatedAt: s.now},
	}))

	s.Require().NoError(s.store.Delete(ctx, a.ID))

	_, err := s.store.FindByID(ctx, a.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
	users, err := s.store.ListUsers(ctx, a.ID)
	s.Require().NoError(err)
	s.Empty(users)
	s.ErrorIs(s.store.Delete(ctx, a.ID), sentinel.ErrNotFound)
}
