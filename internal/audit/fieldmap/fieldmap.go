// Package fieldmap converts audits between the domain model and the audits
// row shape, including partial updates. Nothing here performs I/O.
package fieldmap

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"riskdesk/internal/audit/models"
	"riskdesk/pkg/domain"
	"riskdesk/pkg/optional"
	"riskdesk/pkg/validation"
)

// Row mirrors one audits row. Nullable columns are pointers.
type Row struct {
	ID          uuid.UUID  `db:"id"`
	CompanyID   uuid.UUID  `db:"company_id"`
	FrameworkID uuid.UUID  `db:"framework_id"`
	Name        string     `db:"name"`
	Status      string     `db:"status"`
	StartDate   *time.Time `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	Scope       *string    `db:"scope"`
	CreatedBy   *uuid.UUID `db:"created_by"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

var Columns = []string{
	"id", "company_id", "framework_id", "name", "status",
	"start_date", "end_date", "scope", "created_by",
	"created_at", "updated_at",
}

func (r Row) Values() []any {
	return []any{
		r.ID, r.CompanyID, r.FrameworkID, r.Name, r.Status,
		r.StartDate, r.EndDate, r.Scope, r.CreatedBy,
		r.CreatedAt, r.UpdatedAt,
	}
}

func (r *Row) Targets() []any {
	return []any{
		&r.ID, &r.CompanyID, &r.FrameworkID, &r.Name, &r.Status,
		&r.StartDate, &r.EndDate, &r.Scope, &r.CreatedBy,
		&r.CreatedAt, &r.UpdatedAt,
	}
}

func ToRow(a *models.Audit) Row {
	row := Row{
		ID:          uuid.UUID(a.ID),
		CompanyID:   uuid.UUID(a.CompanyID),
		FrameworkID: uuid.UUID(a.FrameworkID),
		Name:        a.Name,
		Status:      string(a.Status),
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
		Scope:       a.Scope,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.CreatedBy != nil {
		id := uuid.UUID(*a.CreatedBy)
		row.CreatedBy = &id
	}
	return row
}

func FromRow(r Row) *models.Audit {
	a := &models.Audit{
		ID:          domain.AuditID(r.ID),
		CompanyID:   domain.CompanyID(r.CompanyID),
		FrameworkID: domain.FrameworkID(r.FrameworkID),
		Name:        r.Name,
		Status:      models.Status(r.Status),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Scope:       r.Scope,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.CreatedBy != nil {
		id := domain.UserID(*r.CreatedBy)
		a.CreatedBy = &id
	}
	return a
}

// Patch is a partial audit update. Dates use the YYYY-MM-DD wire format.
type Patch struct {
	Name        optional.Value[string] `json:"name"`
	Status      optional.Value[string] `json:"status"`
	FrameworkID optional.Value[string] `json:"framework_id"`
	StartDate   optional.Value[string] `json:"start_date"`
	EndDate     optional.Value[string] `json:"end_date"`
	Scope       optional.Value[string] `json:"scope"`
}

// ToUpdate returns the column changes for p. A key is present iff the field
// was present in p. For start_date, end_date and scope an empty string is an
// explicit NULL.
func ToUpdate(p Patch) map[string]any {
	out := make(map[string]any)
	put(out, "name", p.Name)
	put(out, "status", p.Status)
	put(out, "framework_id", p.FrameworkID)
	putNullable(out, "start_date", p.StartDate)
	putNullable(out, "end_date", p.EndDate)
	putNullable(out, "scope", p.Scope)
	return out
}

// Apply merges p into a copy of a. It fails only on malformed dates or ids.
func Apply(a *models.Audit, p Patch) (*models.Audit, error) {
	out := *a
	if p.Name.Set {
		out.Name = p.Name.V
	}
	if p.Status.Set {
		out.Status = models.Status(p.Status.V)
	}
	if p.FrameworkID.Set {
		id, err := domain.ParseFrameworkID(p.FrameworkID.V)
		if err != nil {
			return nil, err
		}
		out.FrameworkID = id
	}
	var err error
	if out.StartDate, err = applyDate(out.StartDate, p.StartDate, "start_date"); err != nil {
		return nil, err
	}
	if out.EndDate, err = applyDate(out.EndDate, p.EndDate, "end_date"); err != nil {
		return nil, err
	}
	if p.Scope.Set {
		out.Scope = nil
		if v, ok := p.Scope.Get(); ok && v != "" {
			out.Scope = &v
		}
	}
	return &out, nil
}

// ParseDate parses a YYYY-MM-DD calendar date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(validation.DateLayout, s)
}

func applyDate(current *time.Time, v optional.Value[string], field string) (*time.Time, error) {
	if !v.Set {
		return current, nil
	}
	raw, ok := v.Get()
	if !ok || raw == "" {
		return nil, nil
	}
	d, err := ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &d, nil
}

func put[T any](out map[string]any, key string, v optional.Value[T]) {
	if !v.Set {
		return
	}
	if v.Null {
		out[key] = nil
		return
	}
	out[key] = v.V
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
