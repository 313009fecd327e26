package company

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"riskdesk/internal/company/fieldmap"
	"riskdesk/internal/company/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

type InMemorySuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemorySuite) newCompany(name string) *models.Company {
	c, err := models.NewCompany(domain.CompanyID(uuid.New()), name, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(s.ctx, c))
	return c
}

func (s *InMemorySuite) TestCreateFindExists() {
	c := s.newCompany("Acme")
	s.ErrorIs(s.store.Create(s.ctx, c), sentinel.ErrAlreadyExists)

	got, err := s.store.FindByID(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(c, got)

	ok, err := s.store.Exists(s.ctx, c.ID)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.store.Exists(s.ctx, domain.CompanyID(uuid.New()))
	s.Require().NoError(err)
	s.False(ok)

	_, err = s.store.FindByID(s.ctx, domain.CompanyID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemorySuite) TestListIsOrderedByName() {
	s.newCompany("zeta")
	s.newCompany("Alpha")
	s.newCompany("beta")

	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal([]string{"Alpha", "beta", "zeta"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func (s *InMemorySuite) TestUpdate() {
	c := s.newCompany("Acme")
	year := 1990
	c.CreationYear = &year
	s.Require().NoError(s.store.Update(s.ctx, c, nil))

	year = 2000
	got, err := s.store.FindByID(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(1990, *got.CreationYear, "stored copy is isolated from the caller")

	missing := &models.Company{ID: domain.CompanyID(uuid.New())}
	s.ErrorIs(s.store.Update(s.ctx, missing, nil), sentinel.ErrNotFound)
}

func newMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgres(db), mock
}

func TestPostgres_Create(t *testing.T) {
	store, mock := newMock(t)
	args := make([]driver.Value, len(fieldmap.Columns))
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO companies (id, name, slug")).
		WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, err := models.NewCompany(domain.CompanyID(uuid.New()), "Acme", time.Now())
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_FindByID(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("maps nullable columns", func(t *testing.T) {
		store, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM companies WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(fieldmap.Columns).AddRow(
				id.String(), "Acme", "acme", nil, "Retail", int64(1975),
				nil, "national", nil,
				created, created,
			))

		got, err := store.FindByID(context.Background(), domain.CompanyID(id))

		require.NoError(t, err)
		assert.Equal(t, "Acme", got.Name)
		assert.Empty(t, got.Description)
		assert.Equal(t, "Retail", got.Activity)
		require.NotNil(t, got.CreationYear)
		assert.Equal(t, 1975, *got.CreationYear)
		assert.Nil(t, got.LastAuditDate)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		store, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM companies WHERE id = $1")).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := store.FindByID(context.Background(), domain.CompanyID(id))
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}

func TestPostgres_Update(t *testing.T) {
	id := uuid.New()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	merged := &models.Company{ID: domain.CompanyID(id), Name: "Acme Group", UpdatedAt: now}

	t.Run("writes changed columns", func(t *testing.T) {
		store, mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE companies SET name = $1, slug = $2, updated_at = $3 WHERE id = $4")).
			WithArgs("Acme Group", "acme-group", now, id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Update(context.Background(), merged, map[string]any{"name": "Acme Group", "slug": "acme-group"})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows is not found", func(t *testing.T) {
		store, mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE companies SET")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := store.Update(context.Background(), merged, map[string]any{"activity": nil})
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("immutable columns are rejected", func(t *testing.T) {
		store, _ := newMock(t)
		err := store.Update(context.Background(), merged, map[string]any{"created_at": now})
		assert.Error(t, err)
	})
}

func TestPostgres_Exists(t *testing.T) {
	store, mock := newMock(t)
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1)")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := store.Exists(context.Background(), domain.CompanyID(id))

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPostgres_List(t *testing.T) {
	store, mock := newMock(t)
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM companies ORDER BY lower(name), id")).
		WillReturnRows(sqlmock.NewRows(fieldmap.Columns).
			AddRow(uuid.NewString(), "Acme", "acme", nil, nil, nil, nil, nil, nil, created, created).
			AddRow(uuid.NewString(), "Beta", "beta", nil, nil, nil, nil, nil, nil, created, created))

	list, err := store.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Beta", list[1].Name)
}
