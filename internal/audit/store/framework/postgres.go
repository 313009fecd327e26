package framework

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"riskdesk/internal/audit/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Framework, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, version FROM frameworks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list frameworks: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Framework, 0)
	for rows.Next() {
		var (
			id uuid.UUID
			f  = &models.Framework{}
		)
		if err := rows.Scan(&id, &f.Name, &f.Version); err != nil {
			return nil, fmt.Errorf("scan framework: %w", err)
		}
		f.ID = domain.FrameworkID(id)
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate frameworks: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.FrameworkID) (*models.Framework, error) {
	var (
		raw uuid.UUID
		f   = &models.Framework{}
	)
	err := s.db.QueryRowContext(ctx, `SELECT id, name, version FROM frameworks WHERE id = $1`, uuid.UUID(id)).
		Scan(&raw, &f.Name, &f.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find framework: %w", err)
	}
	f.ID = domain.FrameworkID(raw)
	return f, nil
}
