package handler

import (
	"strings"
	"time"

	"riskdesk/internal/company/fieldmap"
	"riskdesk/internal/company/service"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/optional"
	s "riskdesk/pkg/string"
	"riskdesk/pkg/validation"
)

type CreateCompanyRequest struct {
	Name          string `json:"name" validate:"required,notblank,max=200"`
	Description   string `json:"description" validate:"max=2000"`
	Activity      string `json:"activity" validate:"max=200"`
	CreationYear  *int   `json:"creation_year" validate:"omitempty,gte=1000,lte=9999"`
	ParentCompany string `json:"parent_company" validate:"max=200"`
	MarketScope   string `json:"market_scope" validate:"max=200"`
	LastAuditDate string `json:"last_audit_date" validate:"omitempty,date"`

	lastAuditDate *time.Time
}

func (r *CreateCompanyRequest) Normalize() {
	if r == nil {
		return
	}
	s.TrimStrings(&r.Name, &r.Description, &r.Activity, &r.ParentCompany, &r.MarketScope, &r.LastAuditDate)
}

func (r *CreateCompanyRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	if r.LastAuditDate != "" {
		d, err := time.Parse(validation.DateLayout, r.LastAuditDate)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, "last_audit_date must be a date formatted YYYY-MM-DD")
		}
		r.lastAuditDate = &d
	}
	return nil
}

func (r *CreateCompanyRequest) toCommand() service.CreateCompanyCommand {
	return service.CreateCompanyCommand{
		Name:          r.Name,
		Description:   r.Description,
		Activity:      r.Activity,
		CreationYear:  r.CreationYear,
		ParentCompany: r.ParentCompany,
		MarketScope:   r.MarketScope,
		LastAuditDate: r.lastAuditDate,
	}
}

// UpdateCompanyRequest is a JSON merge patch over the company fields.
type UpdateCompanyRequest struct {
	fieldmap.Patch
}

func (r *UpdateCompanyRequest) Normalize() {
	if r == nil {
		return
	}
	for _, v := range []*optional.Value[string]{&r.Name, &r.Description, &r.Activity, &r.ParentCompany, &r.MarketScope, &r.LastAuditDate} {
		v.V = strings.TrimSpace(v.V)
	}
}

func (r *UpdateCompanyRequest) Validate() error {
	if r.Name.Set {
		if r.Name.Null {
			return dErrors.New(dErrors.CodeValidation, "name cannot be null")
		}
		if err := validation.Var("name", r.Name.V, "notblank,max=200"); err != nil {
			return err
		}
	}
	if y, ok := r.CreationYear.Get(); ok {
		if err := validation.Var("creation_year", y, "gte=1000,lte=9999"); err != nil {
			return err
		}
	}
	if v, ok := r.LastAuditDate.Get(); ok {
		if err := validation.Var("last_audit_date", v, "date"); err != nil {
			return err
		}
	}
	return nil
}

// AcceptEnrichmentRequest mirrors the data object of POST /enrichment/company.
type AcceptEnrichmentRequest struct {
	Activity      string `json:"activity" validate:"max=200"`
	CreationYear  *int   `json:"creationYear" validate:"omitempty,gte=1000,lte=9999"`
	ParentCompany string `json:"parentCompany" validate:"max=200"`
	MarketScope   string `json:"marketScope" validate:"max=200"`
}

func (r *AcceptEnrichmentRequest) Normalize() {
	if r == nil {
		return
	}
	s.TrimStrings(&r.Activity, &r.ParentCompany, &r.MarketScope)
}

func (r *AcceptEnrichmentRequest) Validate() error {
	return validation.Validate(r)
}

func (r *AcceptEnrichmentRequest) toEnrichment() service.Enrichment {
	return service.Enrichment{
		Activity:      r.Activity,
		CreationYear:  r.CreationYear,
		ParentCompany: r.ParentCompany,
		MarketScope:   r.MarketScope,
	}
}
