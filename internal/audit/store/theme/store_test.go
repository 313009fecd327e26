package theme

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskdesk/internal/audit/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

func TestInMemory(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	hours := 2.5

	require.NoError(t, store.Create(ctx, &models.Theme{ID: domain.ThemeID(uuid.New()), Name: "Governance", DurationHours: &hours}))
	require.NoError(t, store.Create(ctx, &models.Theme{ID: domain.ThemeID(uuid.New()), Name: "Access management"}))
	assert.ErrorIs(t, store.Create(ctx, &models.Theme{ID: domain.ThemeID(uuid.New()), Name: "Governance"}), sentinel.ErrAlreadyExists)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Access management", list[0].Name)
	assert.Nil(t, list[0].DurationHours)
	require.NotNil(t, list[1].DurationHours)
	assert.Equal(t, 2.5, *list[1].DurationHours)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func newMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgres(db), mock
}

func TestPostgres_List(t *testing.T) {
	store, mock := newMock(t)
	id := uuid.New()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM audit_themes ORDER BY name")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "duration_hours", "created_at"}).
			AddRow(id.String(), "Governance", nil, 1.5, at).
			AddRow(uuid.NewString(), "Physical security", "Sites", nil, at))

	list, err := store.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.ThemeID(id), list[0].ID)
	assert.Empty(t, list[0].Description)
	require.NotNil(t, list[0].DurationHours)
	assert.Equal(t, 1.5, *list[0].DurationHours)
	assert.Nil(t, list[1].DurationHours)
	assert.Equal(t, "Sites", list[1].Description)
}

func TestPostgres_CreateDuplicateName(t *testing.T) {
	store, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO audit_themes")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := store.Create(context.Background(), &models.Theme{ID: domain.ThemeID(uuid.New()), Name: "Governance"})

	assert.ErrorIs(t, err, sentinel.ErrAlreadyExists)
}
