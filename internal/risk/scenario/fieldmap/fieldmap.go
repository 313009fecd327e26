// Package fieldmap converts risk scenarios between the domain model and the
// risk_scenarios row shape, including partial updates.
//
// Every function here is pure. Enum columns are copied as strings and never
// checked; validation belongs to the caller.
package fieldmap

import (
	"time"

	"github.com/google/uuid"

	"riskdesk/internal/risk/models"
	"riskdesk/pkg/domain"
	"riskdesk/pkg/optional"
)

// Row mirrors one risk_scenarios row. Nullable columns are pointers.
type Row struct {
	ID                 uuid.UUID  `db:"id"`
	CompanyID          uuid.UUID  `db:"company_id"`
	TemplateID         *uuid.UUID `db:"template_id"`
	Name               string     `db:"name"`
	Description        *string    `db:"description"`
	Scope              *string    `db:"scope"`
	Perimeter          *string    `db:"perimeter"`
	Status             string     `db:"status"`
	RawImpact          *int       `db:"raw_impact"`
	RawLikelihood      *int       `db:"raw_likelihood"`
	RawRiskLevel       *string    `db:"raw_risk_level"`
	ResidualImpact     *int       `db:"residual_impact"`
	ResidualLikelihood *int       `db:"residual_likelihood"`
	ResidualRiskLevel  *string    `db:"residual_risk_level"`
	ImpactDescription  *string    `db:"impact_description"`
	Threat             *string    `db:"threat"`
	Vulnerability      *string    `db:"vulnerability"`
	Measures           *string    `db:"measures"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

// Columns lists the row columns in Row field order.
var Columns = []string{
	"id", "company_id", "template_id", "name", "description", "scope", "perimeter", "status",
	"raw_impact", "raw_likelihood", "raw_risk_level",
	"residual_impact", "residual_likelihood", "residual_risk_level",
	"impact_description", "threat", "vulnerability", "measures",
	"created_at", "updated_at",
}

// Values returns the row values in Columns order.
func (r Row) Values() []any {
	return []any{
		r.ID, r.CompanyID, r.TemplateID, r.Name, r.Description, r.Scope, r.Perimeter, r.Status,
		r.RawImpact, r.RawLikelihood, r.RawRiskLevel,
		r.ResidualImpact, r.ResidualLikelihood, r.ResidualRiskLevel,
		r.ImpactDescription, r.Threat, r.Vulnerability, r.Measures,
		r.CreatedAt, r.UpdatedAt,
	}
}

// Targets returns scan destinations in Columns order.
func (r *Row) Targets() []any {
	return []any{
		&r.ID, &r.CompanyID, &r.TemplateID, &r.Name, &r.Description, &r.Scope, &r.Perimeter, &r.Status,
		&r.RawImpact, &r.RawLikelihood, &r.RawRiskLevel,
		&r.ResidualImpact, &r.ResidualLikelihood, &r.ResidualRiskLevel,
		&r.ImpactDescription, &r.Threat, &r.Vulnerability, &r.Measures,
		&r.CreatedAt, &r.UpdatedAt,
	}
}

func ToRow(s *models.RiskScenario) Row {
	row := Row{
		ID:                 uuid.UUID(s.ID),
		CompanyID:          uuid.UUID(s.CompanyID),
		Name:               s.Name,
		Description:        text(s.Description),
		Scope:              text(string(s.Scope)),
		Status:             string(s.Status),
		RawImpact:          rating(s.Raw.Impact),
		RawLikelihood:      rating(s.Raw.Likelihood),
		RawRiskLevel:       text(string(s.Raw.RiskLevel)),
		ResidualImpact:     rating(s.Residual.Impact),
		ResidualLikelihood: rating(s.Residual.Likelihood),
		ResidualRiskLevel:  text(string(s.Residual.RiskLevel)),
		ImpactDescription:  text(s.ImpactDescription),
		Threat:             text(s.Threat),
		Vulnerability:      text(s.Vulnerability),
		Measures:           text(s.Measures),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
	if s.TemplateID != nil {
		id := uuid.UUID(*s.TemplateID)
		row.TemplateID = &id
	}
	if s.Perimeter != nil {
		p := string(*s.Perimeter)
		row.Perimeter = &p
	}
	return row
}

func FromRow(r Row) *models.RiskScenario {
	s := &models.RiskScenario{
		ID:          domain.ScenarioID(r.ID),
		CompanyID:   domain.CompanyID(r.CompanyID),
		Name:        r.Name,
		Description: deref(r.Description),
		Scope:       models.Scope(deref(r.Scope)),
		Status:      models.Status(r.Status),
		Raw: models.Assessment{
			Impact:     derefInt(r.RawImpact),
			Likelihood: derefInt(r.RawLikelihood),
			RiskLevel:  models.Level(deref(r.RawRiskLevel)),
		},
		Residual: models.Assessment{
			Impact:     derefInt(r.ResidualImpact),
			Likelihood: derefInt(r.ResidualLikelihood),
			RiskLevel:  models.Level(deref(r.ResidualRiskLevel)),
		},
		ImpactDescription: deref(r.ImpactDescription),
		Threat:            deref(r.Threat),
		Vulnerability:     deref(r.Vulnerability),
		Measures:          deref(r.Measures),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.TemplateID != nil {
		id := domain.TemplateID(*r.TemplateID)
		s.TemplateID = &id
	}
	if r.Perimeter != nil {
		p := models.Perimeter(*r.Perimeter)
		s.Perimeter = &p
	}
	return s
}

// Patch is a partial scenario update. Only fields that are Set are written.
type Patch struct {
	Name               optional.Value[string] `json:"name"`
	Description        optional.Value[string] `json:"description"`
	Scope              optional.Value[string] `json:"scope"`
	Perimeter          optional.Value[string] `json:"perimeter"`
	Status             optional.Value[string] `json:"status"`
	RawImpact          optional.Value[int]    `json:"raw_impact"`
	RawLikelihood      optional.Value[int]    `json:"raw_likelihood"`
	RawRiskLevel       optional.Value[string] `json:"raw_risk_level"`
	ResidualImpact     optional.Value[int]    `json:"residual_impact"`
	ResidualLikelihood optional.Value[int]    `json:"residual_likelihood"`
	ResidualRiskLevel  optional.Value[string] `json:"residual_risk_level"`
	ImpactDescription  optional.Value[string] `json:"impact_description"`
	Threat             optional.Value[string] `json:"threat"`
	Vulnerability      optional.Value[string] `json:"vulnerability"`
	Measures           optional.Value[string] `json:"measures"`
}

// ToUpdate returns the column changes for p. A key is present iff the field
// was present in p; explicit nulls map to nil, and so do empty scope and
// perimeter values so the column matches ToRow(Apply(s, p)).
func ToUpdate(p Patch) map[string]any {
	out := make(map[string]any)
	put(out, "name", p.Name)
	put(out, "description", p.Description)
	putEnum(out, "scope", p.Scope)
	putEnum(out, "perimeter", p.Perimeter)
	put(out, "status", p.Status)
	put(out, "raw_impact", p.RawImpact)
	put(out, "raw_likelihood", p.RawLikelihood)
	put(out, "raw_risk_level", p.RawRiskLevel)
	put(out, "residual_impact", p.ResidualImpact)
	put(out, "residual_likelihood", p.ResidualLikelihood)
	put(out, "residual_risk_level", p.ResidualRiskLevel)
	put(out, "impact_description", p.ImpactDescription)
	put(out, "threat", p.Threat)
	put(out, "vulnerability", p.Vulnerability)
	put(out, "measures", p.Measures)
	return out
}

// Apply merges p into a copy of s.
func Apply(s *models.RiskScenario, p Patch) *models.RiskScenario {
	out := *s
	assign(&out.Name, p.Name)
	assign(&out.Description, p.Description)
	assignAs(&out.Scope, p.Scope)
	assignAs(&out.Status, p.Status)
	assign(&out.Raw.Impact, p.RawImpact)
	assign(&out.Raw.Likelihood, p.RawLikelihood)
	assignAs(&out.Raw.RiskLevel, p.RawRiskLevel)
	assign(&out.Residual.Impact, p.ResidualImpact)
	assign(&out.Residual.Likelihood, p.ResidualLikelihood)
	assignAs(&out.Residual.RiskLevel, p.ResidualRiskLevel)
	assign(&out.ImpactDescription, p.ImpactDescription)
	assign(&out.Threat, p.Threat)
	assign(&out.Vulnerability, p.Vulnerability)
	assign(&out.Measures, p.Measures)
	if p.Perimeter.Set {
		out.Perimeter = nil
		if v, ok := p.Perimeter.Get(); ok && v != "" {
			perimeter := models.Perimeter(v)
			out.Perimeter = &perimeter
		}
	}
	return &out
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

func putEnum(out map[string]any, key string, v optional.Value[string]) {
	if !v.Set {
		return
	}
	if v.Null || v.V == "" {
		out[key] = nil
		return
	}
	out[key] = v.V
}

func assign[T any](dst *T, v optional.Value[T]) {
	if v.Set {
		*dst = v.V
	}
}

func assignAs[T ~string](dst *T, v optional.Value[string]) {
	if v.Set {
		*dst = T(v.V)
	}
}

func text(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func rating(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
