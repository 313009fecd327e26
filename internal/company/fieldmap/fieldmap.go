// Package fieldmap converts companies between the domain model and the
// companies row shape. Empty optional text is stored as NULL.
package fieldmap

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"riskdesk/internal/company/models"
	"riskdesk/pkg/domain"
	"riskdesk/pkg/optional"
	"riskdesk/pkg/validation"
)

type Row struct {
	ID            uuid.UUID  `db:"id"`
	Name          string     `db:"name"`
	Slug          string     `db:"slug"`
	Description   *string    `db:"description"`
	Activity      *string    `db:"activity"`
	CreationYear  *int64     `db:"creation_year"`
	ParentCompany *string    `db:"parent_company"`
	MarketScope   *string    `db:"market_scope"`
	LastAuditDate *time.Time `db:"last_audit_date"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

var Columns = []string{
	"id", "name", "slug", "description", "activity", "creation_year",
	"parent_company", "market_scope", "last_audit_date",
	"created_at", "updated_at",
}

func (r Row) Values() []any {
	return []any{
		r.ID, r.Name, r.Slug, r.Description, r.Activity, r.CreationYear,
		r.ParentCompany, r.MarketScope, r.LastAuditDate,
		r.CreatedAt, r.UpdatedAt,
	}
}

func (r *Row) Targets() []any {
	return []any{
		&r.ID, &r.Name, &r.Slug, &r.Description, &r.Activity, &r.CreationYear,
		&r.ParentCompany, &r.MarketScope, &r.LastAuditDate,
		&r.CreatedAt, &r.UpdatedAt,
	}
}

func ToRow(c *models.Company) Row {
	row := Row{
		ID:            uuid.UUID(c.ID),
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   nullable(c.Description),
		Activity:      nullable(c.Activity),
		ParentCompany: nullable(c.ParentCompany),
		MarketScope:   nullable(c.MarketScope),
		LastAuditDate: c.LastAuditDate,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.CreationYear != nil {
		y := int64(*c.CreationYear)
		row.CreationYear = &y
	}
	return row
}

func FromRow(r Row) *models.Company {
	c := &models.Company{
		ID:            domain.CompanyID(r.ID),
		Name:          r.Name,
		Slug:          r.Slug,
		Description:   deref(r.Description),
		Activity:      deref(r.Activity),
		ParentCompany: deref(r.ParentCompany),
		MarketScope:   deref(r.MarketScope),
		LastAuditDate: r.LastAuditDate,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.CreationYear != nil {
		y := int(*r.CreationYear)
		c.CreationYear = &y
	}
	return c
}

// Patch is a partial company update. last_audit_date uses YYYY-MM-DD.
type Patch struct {
	Name          optional.Value[string] `json:"name"`
	Description   optional.Value[string] `json:"description"`
	Activity      optional.Value[string] `json:"activity"`
	CreationYear  optional.Value[int]    `json:"creation_year"`
	ParentCompany optional.Value[string] `json:"parent_company"`
	MarketScope   optional.Value[string] `json:"market_scope"`
	LastAuditDate optional.Value[string] `json:"last_audit_date"`
}

// ToUpdate returns the column changes for p. Renaming also rewrites the slug.
func ToUpdate(p Patch) map[string]any {
	out := make(map[string]any)
	if v, ok := p.Name.Get(); ok {
		out["name"] = v
		out["slug"] = models.Slugify(v)
	}
	putNullable(out, "description", p.Description)
	putNullable(out, "activity", p.Activity)
	if p.CreationYear.Set {
		out["creation_year"] = nil
		if y, ok := p.CreationYear.Get(); ok {
			out["creation_year"] = int64(y)
		}
	}
	putNullable(out, "parent_company", p.ParentCompany)
	putNullable(out, "market_scope", p.MarketScope)
	putNullable(out, "last_audit_date", p.LastAuditDate)
	return out
}

// Apply merges p into a copy of c. It fails only on a malformed date.
func Apply(c *models.Company, p Patch) (*models.Company, error) {
	out := *c
	if v, ok := p.Name.Get(); ok {
		out.Rename(v)
	}
	if p.Description.Set {
		out.Description = p.Description.V
	}
	if p.Activity.Set {
		out.Activity = p.Activity.V
	}
	if p.CreationYear.Set {
		out.CreationYear = p.CreationYear.Ptr()
	}
	if p.ParentCompany.Set {
		out.ParentCompany = p.ParentCompany.V
	}
	if p.MarketScope.Set {
		out.MarketScope = p.MarketScope.V
	}
	if p.LastAuditDate.Set {
		out.LastAuditDate = nil
		if raw, ok := p.LastAuditDate.Get(); ok && raw != "" {
			d, err := time.Parse(validation.DateLayout, raw)
			if err != nil {
				return nil, fmt.Errorf("last_audit_date: %w", err)
			}
			out.LastAuditDate = &d
		}
	}
	return &out, nil
}

func putNullable(out map[string]any, key string, v optional.Value[string]) {
	if !v.Set {
		return
	}
	if v.Null || v.V == "" {
		out[key] = nil
		return
	}
	out[key] = v.V
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
