package scenario

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

	"riskdesk/internal/risk/models"
	"riskdesk/internal/risk/scenario/fieldmap"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

func newMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgres(db), mock
}

func TestBuildUpdate(t *testing.T) {
	updatedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()

	t.Run("columns are sorted and updated_at appended", func(t *testing.T) {
		query, args, err := buildUpdate(map[string]any{"status": "treated", "name": "Renamed", "threat": nil}, updatedAt, id)

		require.NoError(t, err)
		assert.Equal(t, "UPDATE risk_scenarios SET name = $1, status = $2, threat = $3, updated_at = $4 WHERE id = $5", query)
		assert.Equal(t, []any{"Renamed", "treated", nil, updatedAt, id}, args)
	})

	t.Run("unknown and immutable columns are rejected", func(t *testing.T) {
		_, _, err := buildUpdate(map[string]any{"name; DROP TABLE": "x"}, updatedAt, id)
		assert.Error(t, err)
		_, _, err = buildUpdate(map[string]any{"company_id": uuid.New()}, updatedAt, id)
		assert.Error(t, err)
	})
}

func TestPostgres_CreateWritesEveryColumn(t *testing.T) {
	store, mock := newMock(t)
	sc := &models.RiskScenario{
		ID:        domain.ScenarioID(uuid.New()),
		CompanyID: domain.CompanyID(uuid.New()),
		Name:      "Supplier compromise",
		Status:    models.StatusIdentified,
	}
	args := make([]driver.Value, len(fieldmap.Columns))
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO risk_scenarios (id, company_id, template_id")).
		WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Create(context.Background(), sc))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_FindByID(t *testing.T) {
	id := uuid.New()
	companyID := uuid.New()
	created := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("maps nullable columns", func(t *testing.T) {
		store, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM risk_scenarios WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(fieldmap.Columns).AddRow(
				id.String(), companyID.String(), nil, "Data leak", nil, "human", "organization", "treated",
				3, 2, "medium", nil, nil, nil,
				"Fines", nil, nil, nil,
				created, created,
			))

		got, err := store.FindByID(context.Background(), domain.ScenarioID(id))

		require.NoError(t, err)
		assert.Equal(t, "Data leak", got.Name)
		assert.Equal(t, models.ScopeHuman, got.Scope)
		require.NotNil(t, got.Perimeter)
		assert.Equal(t, models.PerimeterOrganization, *got.Perimeter)
		assert.Equal(t, models.Assessment{Impact: 3, Likelihood: 2, RiskLevel: models.LevelMedium}, got.Raw)
		assert.Equal(t, models.Assessment{}, got.Residual)
		assert.Nil(t, got.TemplateID)
		assert.Empty(t, got.Description)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		store, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM risk_scenarios WHERE id = $1")).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := store.FindByID(context.Background(), domain.ScenarioID(id))
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}

func TestPostgres_DeleteMissingIsNotFound(t *testing.T) {
	store, mock := newMock(t)
	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM risk_scenarios")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Delete(context.Background(), domain.ScenarioID(id))

	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestPostgres_UpdateSendsOnlyChanges(t *testing.T) {
	store, mock := newMock(t)
	sc := &models.RiskScenario{ID: domain.ScenarioID(uuid.New()), UpdatedAt: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)}
	mock.ExpectExec(regexp.QuoteMeta("UPDATE risk_scenarios SET measures = $1, updated_at = $2 WHERE id = $3")).
		WithArgs("MFA everywhere", sc.UpdatedAt, uuid.UUID(sc.ID)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Update(context.Background(), sc, map[string]any{"measures": "MFA everywhere"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
