package database

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskdesk/internal/sentinel"
)

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", Placeholders(3))
	assert.Equal(t, "", Placeholders(0))
}

func TestUpdateByID(t *testing.T) {
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	allowed := []string{"id", "name", "status", "end_date"}

	query, args, err := UpdateByID("audits", allowed, []string{"id"}, map[string]any{"status": "review", "end_date": nil}, at, "a1")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE audits SET end_date = $1, status = $2, updated_at = $3 WHERE id = $4", query)
	assert.Equal(t, []any{nil, "review", at, "a1"}, args)

	_, _, err = UpdateByID("audits", allowed, []string{"id"}, map[string]any{"id": "other"}, at, "a1")
	assert.Error(t, err)
	_, _, err = UpdateByID("audits", allowed, nil, map[string]any{"name = name; --": "x"}, at, "a1")
	assert.Error(t, err)
}

func TestRequireAffected(t *testing.T) {
	assert.NoError(t, RequireAffected(sqlmock.NewResult(0, 1)))
	assert.ErrorIs(t, RequireAffected(sqlmock.NewResult(0, 0)), sentinel.ErrNotFound)
	assert.Error(t, RequireAffected(sqlmock.NewErrorResult(errors.New("driver gone"))))
}
