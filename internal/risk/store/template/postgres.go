package template

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"riskdesk/internal/risk/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

// PostgresStore reads the read-only risk_scenario_templates catalogue.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const templateColumns = `id, domain, scenario_description, threat, vulnerability`

func (s *PostgresStore) List(ctx context.Context) ([]*models.Template, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+templateColumns+` FROM risk_scenario_templates ORDER BY domain, scenario_description`)
	if err != nil {
		return nil, fmt.Errorf("list scenario templates: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Template, 0)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scenario templates: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.TemplateID) (*models.Template, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+templateColumns+` FROM risk_scenario_templates WHERE id = $1`, uuid.UUID(id))
	t, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row scanner) (*models.Template, error) {
	var (
		id                    uuid.UUID
		t                     models.Template
		threat, vulnerability sql.NullString
	)
	if err := row.Scan(&id, &t.Domain, &t.ScenarioDescription, &threat, &vulnerability); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan scenario template: %w", err)
	}
	t.ID = domain.TemplateID(id)
	t.Threat = threat.String
	t.Vulnerability = vulnerability.String
	return &t, nil
}
