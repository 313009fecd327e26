package company

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"riskdesk/internal/company/fieldmap"
	"riskdesk/internal/company/models"
	"riskdesk/internal/platform/database"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

// PostgresStore persists companies.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

var (
	selectColumns    = strings.Join(fieldmap.Columns, ", ")
	insertQuery      = fmt.Sprintf(`INSERT INTO companies (%s) VALUES (%s)`, selectColumns, database.Placeholders(len(fieldmap.Columns)))
	immutableColumns = []string{"id", "created_at"}
)

func (s *PostgresStore) Create(ctx context.Context, c *models.Company) error {
	row := fieldmap.ToRow(c)
	if _, err := s.db.ExecContext(ctx, insertQuery, row.Values()...); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("company %s: %w", c.ID, sentinel.ErrAlreadyExists)
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.CompanyID) (*models.Company, error) {
	var row fieldmap.Row
	err := s.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM companies WHERE id = $1`,
		uuid.UUID(id),
	).Scan(row.Targets()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return fieldmap.FromRow(row), nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Company, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM companies ORDER BY lower(name), id`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Company, 0)
	for rows.Next() {
		var row fieldmap.Row
		if err := rows.Scan(row.Targets()...); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		out = append(out, fieldmap.FromRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate companies: %w", err)
	}
	return out, nil
}

// Update writes only the changed columns plus updated_at.
func (s *PostgresStore) Update(ctx context.Context, merged *models.Company, changes map[string]any) error {
	query, args, err := database.UpdateByID("companies", fieldmap.Columns, immutableColumns, changes, merged.UpdatedAt, uuid.UUID(merged.ID))
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return database.RequireAffected(res)
}

func (s *PostgresStore) Exists(ctx context.Context, id domain.CompanyID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1)`,
		uuid.UUID(id),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check company: %w", err)
	}
	return exists, nil
}
