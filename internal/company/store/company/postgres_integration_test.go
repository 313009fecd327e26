//go:build integration

package company_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"riskdesk/internal/company/fieldmap"
	"riskdesk/internal/company/models"
	companystore "riskdesk/internal/company/store/company"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
	"riskdesk/pkg/optional"
	"riskdesk/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *companystore.PostgresStore
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
	s.store = companystore.NewPostgres(s.postgres.DB)
	s.now = time.Date(2024, 6, 3, 8, 30, 0, 0, time.UTC)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateModuleTables(context.Background()))
}

func (s *PostgresStoreSuite) newCompany(name string) *models.Company {
	c, err := models.NewCompany(domain.CompanyID(uuid.New()), name, s.now)
	s.Require().NoError(err)
	return c
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	c := s.newCompany("Acme Logistics")
	year := 1987
	c.CreationYear = &year
	c.Activity = "Freight"

	s.Require().NoError(s.store.Create(ctx, c))

	got, err := s.store.FindByID(ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(c.Name, got.Name)
	s.Equal("acme-logistics", got.Slug)
	s.Equal("Freight", got.Activity)
	s.Equal("", got.Description)
	s.Require().NotNil(got.CreationYear)
	s.Equal(1987, *got.CreationYear)
	s.True(c.CreatedAt.Equal(got.CreatedAt))

	exists, err := s.store.Exists(ctx, c.ID)
	s.Require().NoError(err)
	s.True(exists)

	s.ErrorIs(s.store.Create(ctx, c), sentinel.ErrAlreadyExists)
}

func (s *PostgresStoreSuite) TestListOrdersByName() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, s.newCompany("zeta")))
	s.Require().NoError(s.store.Create(ctx, s.newCompany("Alpha")))

	list, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Alpha", list[0].Name)
}

func (s *PostgresStoreSuite) TestUpdateWritesChangedColumns() {
	ctx := context.Background()
	c := s.newCompany("Acme")
	c.MarketScope = "local"
	s.Require().NoError(s.store.Create(ctx, c))

	patch := fieldmap.Patch{
		Name:          optional.Of("Acme Group"),
		LastAuditDate: optional.Of("2024-05-02"),
	}
	merged, err := fieldmap.Apply(c, patch)
	s.Require().NoError(err)
	merged.UpdatedAt = s.now.Add(time.Hour)

	s.Require().NoError(s.store.Update(ctx, merged, fieldmap.ToUpdate(patch)))

	got, err := s.store.FindByID(ctx, c.ID)
	s.Require().NoError(err)
	s.Equal("Acme Group", got.Name)
	s.Equal("acme-group", got.Slug)
	s.Equal("local", got.MarketScope)
	s.Require().NotNil(got.LastAuditDate)
	s.Equal("2024-05-02", got.LastAuditDate.Format("2006-01-02"))
	s.True(s.now.Add(time.Hour).Equal(got.UpdatedAt))
}

func (s *PostgresStoreSuite) TestMissingCompany() {
	ctx := context.Background()
	id := domain.CompanyID(uuid.New())

	_, err := s.store.FindByID(ctx, id)
	s.ErrorIs(err, sentinel.ErrNotFound)

	exists, err := s.store.Exists(ctx, id)
	s.Require().NoError(err)
	s.False(exists)

	ghost := s.newCompany("Ghost")
	ghost.ID = id
	err = s.store.Update(ctx, ghost, map[string]any{"activity": "x"})
	s.ErrorIs(err, sentinel.ErrNotFound)
}
