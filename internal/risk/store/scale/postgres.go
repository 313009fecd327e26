package scale

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"riskdesk/internal/platform/database"
	"riskdesk/internal/risk/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
)

// PostgresStore persists scale templates, shared types and company scales.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CountTemplates(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM risk_scales_template`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count scale templates: %w", err)
	}
	return count, nil
}

// CreateTemplate inserts a template and its levels in one transaction.
func (s *PostgresStore) CreateTemplate(ctx context.Context, t *models.ScaleTemplate) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create scale template: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO risk_scales_template (id, name, category, description)
		VALUES ($1, $2, $3, $4)
	`, uuid.UUID(t.ID), t.Name, string(t.Category), nullString(t.Description))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("scale template %q: %w", t.Name, sentinel.ErrAlreadyExists)
		}
		return fmt.Errorf("insert scale template: %w", err)
	}

	for _, l := range t.Levels {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO risk_scale_level_templates (id, template_id, level_value, name, description, color)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, uuid.New(), uuid.UUID(t.ID), l.LevelValue, l.Name, nullString(l.Description), l.Color)
		if err != nil {
			return fmt.Errorf("insert level template %d: %w", l.LevelValue, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit scale template: %w", err)
	}
	return nil
}

// ListTemplates returns the likelihood template first, then impacts by name,
// each with levels ascending.
func (s *PostgresStore) ListTemplates(ctx context.Context) ([]*models.ScaleTemplate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.name, t.category, t.description,
		       l.level_value, l.name, l.description, l.color
		FROM risk_scales_template t
		LEFT JOIN risk_scale_level_templates l ON l.template_id = t.id
		ORDER BY t.category DESC, t.name, l.level_value
	`)
	if err != nil {
		return nil, fmt.Errorf("list scale templates: %w", err)
	}
	defer rows.Close()

	var out []*models.ScaleTemplate
	byID := make(map[uuid.UUID]*models.ScaleTemplate)
	for rows.Next() {
		var (
			id                        uuid.UUID
			name, category            string
			description               sql.NullString
			levelValue                sql.NullInt64
			levelName, levelDesc, col sql.NullString
		)
		if err := rows.Scan(&id, &name, &category, &description, &levelValue, &levelName, &levelDesc, &col); err != nil {
			return nil, fmt.Errorf("scan scale template: %w", err)
		}
		t, ok := byID[id]
		if !ok {
			t = &models.ScaleTemplate{
				ID:          domain.ScaleTemplateID(id),
				Name:        name,
				Category:    models.ScaleCategory(category),
				Description: description.String,
			}
			byID[id] = t
			out = append(out, t)
		}
		if levelValue.Valid {
			t.Levels = append(t.Levels, models.LevelTemplate{
				LevelValue:  int(levelValue.Int64),
				Name:        levelName.String,
				Description: levelDesc.String,
				Color:       col.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scale templates: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) FindType(ctx context.Context, name string, category models.ScaleCategory) (*models.ScaleType, error) {
	var (
		id          uuid.UUID
		t           models.ScaleType
		cat         string
		description sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, category, description
		FROM risk_scale_types
		WHERE name = $1 AND category = $2
	`, name, string(category)).Scan(&id, &t.Name, &cat, &description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find scale type: %w", err)
	}
	t.ID = domain.ScaleTypeID(id)
	t.Category = models.ScaleCategory(cat)
	t.Description = description.String
	return &t, nil
}

func (s *PostgresStore) CreateType(ctx context.Context, t *models.ScaleType) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO risk_scale_types (id, name, category, description)
		VALUES ($1, $2, $3, $4)
	`, uuid.UUID(t.ID), t.Name, string(t.Category), nullString(t.Description))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("scale type %q: %w", t.Name, sentinel.ErrAlreadyExists)
		}
		return fmt.Errorf("create scale type: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListCompanyScales(ctx context.Context, companyID domain.CompanyID) ([]*models.CompanyScale, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT cs.id, cs.company_id, cs.scale_type_id, cs.is_active, cs.created_at,
		       t.name, t.category, t.description
		FROM company_risk_scales cs
		JOIN risk_scale_types t ON t.id = cs.scale_type_id
		WHERE cs.company_id = $1
		ORDER BY t.category DESC, t.name
	`, uuid.UUID(companyID))
	if err != nil {
		return nil, fmt.Errorf("list company scales: %w", err)
	}
	defer rows.Close()

	out := make([]*models.CompanyScale, 0)
	for rows.Next() {
		var (
			id, company, typeID uuid.UUID
			cs                  models.CompanyScale
			st                  models.ScaleType
			category            string
			description         sql.NullString
		)
		if err := rows.Scan(&id, &company, &typeID, &cs.IsActive, &cs.CreatedAt, &st.Name, &category, &description); err != nil {
			return nil, fmt.Errorf("scan company scale: %w", err)
		}
		cs.ID = domain.CompanyScaleID(id)
		cs.CompanyID = domain.CompanyID(company)
		cs.ScaleTypeID = domain.ScaleTypeID(typeID)
		st.ID = cs.ScaleTypeID
		st.Category = models.ScaleCategory(category)
		st.Description = description.String
		cs.Type = &st
		out = append(out, &cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate company scales: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CreateCompanyScale(ctx context.Context, cs *models.CompanyScale) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO company_risk_scales (id, company_id, scale_type_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.UUID(cs.ID), uuid.UUID(cs.CompanyID), uuid.UUID(cs.ScaleTypeID), cs.IsActive, cs.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("company scale: %w", sentinel.ErrAlreadyExists)
		}
		return fmt.Errorf("create company scale: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateLevel(ctx context.Context, l *models.ScaleLevel) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO risk_scale_levels (id, company_scale_id, level_value, name, description, color)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.UUID(l.ID), uuid.UUID(l.CompanyScaleID), l.LevelValue, l.Name, nullString(l.Description), l.Color)
	if err != nil {
		return fmt.Errorf("create scale level: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListLevels(ctx context.Context, scaleID domain.CompanyScaleID) ([]*models.ScaleLevel, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, level_value, name, description, color
		FROM risk_scale_levels
		WHERE company_scale_id = $1
		ORDER BY level_value
	`, uuid.UUID(scaleID))
	if err != nil {
		return nil, fmt.Errorf("list scale levels: %w", err)
	}
	defer rows.Close()

	out := make([]*models.ScaleLevel, 0, 4)
	for rows.Next() {
		var (
			id          uuid.UUID
			l           models.ScaleLevel
			description sql.NullString
		)
		if err := rows.Scan(&id, &l.LevelValue, &l.Name, &description, &l.Color); err != nil {
			return nil, fmt.Errorf("scan scale level: %w", err)
		}
		l.ID = domain.ScaleLevelID(id)
		l.CompanyScaleID = scaleID
		l.Description = description.String
		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scale levels: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CountCompanyScales(ctx context.Context, companyID domain.CompanyID) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM company_risk_scales WHERE company_id = $1`, uuid.UUID(companyID)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count company scales: %w", err)
	}
	return count, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
