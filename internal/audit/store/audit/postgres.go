package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"riskdesk/internal/audit/fieldmap"
	"riskdesk/internal/audit/models"
	"riskdesk/internal/platform/database"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

// PostgresStore persists audits and audit_users.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

var (
	selectColumns    = strings.Join(fieldmap.Columns, ", ")
	insertQuery      = fmt.Sprintf(`INSERT INTO audits (%s) VALUES (%s)`, selectColumns, database.Placeholders(len(fieldmap.Columns)))
	immutableColumns = []string{"id", "company_id", "created_by", "created_at"}
)

func (s *PostgresStore) Create(ctx context.Context, a *models.Audit) error {
	row := fieldmap.ToRow(a)
	if _, err := s.db.ExecContext(ctx, insertQuery, row.Values()...); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("audit %s: %w", a.ID, sentinel.ErrAlreadyExists)
		}
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.AuditID) (*models.Audit, error) {
	var row fieldmap.Row
	err := s.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM audits WHERE id = $1`,
		uuid.UUID(id),
	).Scan(row.Targets()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find audit: %w", err)
	}
	return fieldmap.FromRow(row), nil
}

func (s *PostgresStore) ListByCompany(ctx context.Context, companyID domain.CompanyID) ([]*models.Audit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM audits WHERE company_id = $1 ORDER BY created_at DESC, id`,
		uuid.UUID(companyID),
	)
	if err != nil {
		return nil, fmt.Errorf("list audits: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Audit, 0)
	for rows.Next() {
		var row fieldmap.Row
		if err := rows.Scan(row.Targets()...); err != nil {
			return nil, fmt.Errorf("scan audit: %w", err)
		}
		out = append(out, fieldmap.FromRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audits: %w", err)
	}
	return out, nil
}

// Update writes only the changed columns plus updated_at.
func (s *PostgresStore) Update(ctx context.Context, merged *models.Audit, changes map[string]any) error {
	query, args, err := database.UpdateByID("audits", fieldmap.Columns, immutableColumns, changes, merged.UpdatedAt, uuid.UUID(merged.ID))
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update audit: %w", err)
	}
	return database.RequireAffected(res)
}

// Delete relies on ON DELETE CASCADE for audit_users.
func (s *PostgresStore) Delete(ctx context.Context, id domain.AuditID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM audits WHERE id = $1`, uuid.UUID(id))
	if err != nil {
		return fmt.Errorf("delete audit: %w", err)
	}
	return database.RequireAffected(res)
}

const upsertUserQuery = `
	INSERT INTO audit_users (audit_id, user_id, role, created_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (audit_id, user_id) DO UPDATE SET role = EXCLUDED.role`

// AssignUsers upserts every assignment in one transaction.
func (s *PostgresStore) AssignUsers(ctx context.Context, auditID domain.AuditID, assignments []*models.AuditUser) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin assign users: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var exists bool
	if err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM audits WHERE id = $1)`, uuid.UUID(auditID)).Scan(&exists); err != nil {
		return fmt.Errorf("check audit: %w", err)
	}
	if !exists {
		return sentinel.ErrNotFound
	}
	for _, u := range assignments {
		if _, err = tx.ExecContext(ctx, upsertUserQuery, uuid.UUID(auditID), uuid.UUID(u.UserID), string(u.Role), u.CreatedAt); err != nil {
			return fmt.Errorf("assign user %s: %w", u.UserID, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit assign users: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListUsers(ctx context.Context, auditID domain.AuditID) ([]*models.AuditUser, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, role, created_at FROM audit_users WHERE audit_id = $1 ORDER BY created_at, user_id`,
		uuid.UUID(auditID),
	)
	if err != nil {
		return nil, fmt.Errorf("list audit users: %w", err)
	}
	defer rows.Close()

	out := make([]*models.AuditUser, 0)
	for rows.Next() {
		var (
			userID uuid.UUID
			role   string
			u      = &models.AuditUser{AuditID: auditID}
		)
		if err := rows.Scan(&userID, &role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit user: %w", err)
		}
		u.UserID = domain.UserID(userID)
		u.Role = models.Role(role)
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit users: %w", err)
	}
	return out, nil
}
