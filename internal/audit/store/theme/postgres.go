package theme

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"riskdesk/internal/audit/models"
	"riskdesk/internal/platform/database"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, t *models.Theme) error {
	var description sql.NullString
	if t.Description != "" {
		description = sql.NullString{String: t.Description, Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO audit_themes (id, name, description, duration_hours, created_at) VALUES ($1, $2, $3, $4, $5)`,
		uuid.UUID(t.ID), t.Name, description, t.DurationHours, t.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("audit theme %q: %w", t.Name, sentinel.ErrAlreadyExists)
		}
		return fmt.Errorf("insert audit theme: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Theme, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, duration_hours, created_at FROM audit_themes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list audit themes: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Theme, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			description sql.NullString
			hours       sql.NullFloat64
			t           = &models.Theme{}
		)
		if err := rows.Scan(&id, &t.Name, &description, &hours, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit theme: %w", err)
		}
		t.ID = domain.ThemeID(id)
		t.Description = description.String
		if hours.Valid {
			h := hours.Float64
			t.DurationHours = &h
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit themes: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_themes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count audit themes: %w", err)
	}
	return n, nil
}
