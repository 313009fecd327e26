package scenario

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"riskdesk/internal/platform/database"
	"riskdesk/internal/risk/models"
	"riskdesk/internal/risk/scenario/fieldmap"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

// PostgresStore persists risk scenarios through the field mapper.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

var (
	selectColumns = strings.Join(fieldmap.Columns, ", ")
	insertQuery   = fmt.Sprintf(`INSERT INTO risk_scenarios (%s) VALUES (%s)`, selectColumns, database.Placeholders(len(fieldmap.Columns)))
)

func (s *PostgresStore) Create(ctx context.Context, scenario *models.RiskScenario) error {
	row := fieldmap.ToRow(scenario)
	if _, err := s.db.ExecContext(ctx, insertQuery, row.Values()...); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("risk scenario %s: %w", scenario.ID, sentinel.ErrAlreadyExists)
		}
		return fmt.Errorf("insert risk scenario: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.ScenarioID) (*models.RiskScenario, error) {
	var row fieldmap.Row
	err := s.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM risk_scenarios WHERE id = $1`,
		uuid.UUID(id),
	).Scan(row.Targets()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find risk scenario: %w", err)
	}
	return fieldmap.FromRow(row), nil
}

func (s *PostgresStore) ListByCompany(ctx context.Context, companyID domain.CompanyID) ([]*models.RiskScenario, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM risk_scenarios WHERE company_id = $1 ORDER BY created_at DESC, id`,
		uuid.UUID(companyID),
	)
	if err != nil {
		return nil, fmt.Errorf("list risk scenarios: %w", err)
	}
	defer rows.Close()

	out := make([]*models.RiskScenario, 0)
	for rows.Next() {
		var row fieldmap.Row
		if err := rows.Scan(row.Targets()...); err != nil {
			return nil, fmt.Errorf("scan risk scenario: %w", err)
		}
		out = append(out, fieldmap.FromRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate risk scenarios: %w", err)
	}
	return out, nil
}

// Update writes only the changed columns plus updated_at.
func (s *PostgresStore) Update(ctx context.Context, merged *models.RiskScenario, changes map[string]any) error {
	query, args, err := buildUpdate(changes, merged.UpdatedAt, uuid.UUID(merged.ID))
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update risk scenario: %w", err)
	}
	return database.RequireAffected(res)
}

func (s *PostgresStore) Delete(ctx context.Context, id domain.ScenarioID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM risk_scenarios WHERE id = $1`, uuid.UUID(id))
	if err != nil {
		return fmt.Errorf("delete risk scenario: %w", err)
	}
	return database.RequireAffected(res)
}

// immutableColumns never change after insert.
var immutableColumns = []string{"id", "company_id", "created_at"}

func buildUpdate(changes map[string]any, updatedAt time.Time, id uuid.UUID) (string, []any, error) {
	return database.UpdateByID("risk_scenarios", fieldmap.Columns, immutableColumns, changes, updatedAt, id)
}
