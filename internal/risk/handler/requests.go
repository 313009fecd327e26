package handler

import (
	"strings"

	"riskdesk/internal/risk/models"
	"riskdesk/internal/risk/scenario/fieldmap"
	"riskdesk/internal/risk/service"
	"riskdesk/pkg/domain"
	"riskdesk/pkg/optional"
	s "riskdesk/pkg/string"
	"riskdesk/pkg/validation"
)

// HTTP Request DTOs - contain JSON tags for API serialization.
// These are converted to service commands before processing.

type CreateScenarioRequest struct {
	Name               string  `json:"name" validate:"required,notblank,max=200"`
	Description        string  `json:"description"`
	Scope              string  `json:"scope" validate:"omitempty,oneof=technical organizational human physical environmental"`
	Perimeter          *string `json:"perimeter" validate:"omitempty,oneof=organization system service process"`
	Status             string  `json:"status" validate:"omitempty,oneof=identified analyzed treated accepted monitored"`
	RawImpact          int     `json:"raw_impact" validate:"omitempty,min=1,max=4"`
	RawLikelihood      int     `json:"raw_likelihood" validate:"omitempty,min=1,max=4"`
	RawRiskLevel       string  `json:"raw_risk_level" validate:"omitempty,oneof=low medium high critical"`
	ResidualImpact     int     `json:"residual_impact" validate:"omitempty,min=1,max=4"`
	ResidualLikelihood int     `json:"residual_likelihood" validate:"omitempty,min=1,max=4"`
	ResidualRiskLevel  string  `json:"residual_risk_level" validate:"omitempty,oneof=low medium high critical"`
	ImpactDescription  string  `json:"impact_description"`
	Threat             string  `json:"threat"`
	Vulnerability      string  `json:"vulnerability"`
	Measures           string  `json:"measures"`
	TemplateID         string  `json:"template_id" validate:"omitempty,uuid"`
}

func (r *CreateScenarioRequest) Normalize() {
	if r == nil {
		return
	}
	s.TrimStrings(&r.Name, &r.Description, &r.Scope, &r.Status, &r.RawRiskLevel, &r.ResidualRiskLevel,
		&r.ImpactDescription, &r.Threat, &r.Vulnerability, &r.Measures, &r.TemplateID)
	s.TrimPtr(r.Perimeter)
	r.Perimeter = s.NilIfBlank(r.Perimeter)
}

func (r *CreateScenarioRequest) Validate() error {
	return validation.Validate(r)
}

func (r *CreateScenarioRequest) toCommand(companyID domain.CompanyID) service.CreateScenarioCommand {
	cmd := service.CreateScenarioCommand{
		CompanyID:         companyID,
		Name:              r.Name,
		Description:       r.Description,
		Scope:             models.Scope(r.Scope),
		Status:            models.Status(r.Status),
		Raw:               models.Assessment{Impact: r.RawImpact, Likelihood: r.RawLikelihood, RiskLevel: models.Level(r.RawRiskLevel)},
		Residual:          models.Assessment{Impact: r.ResidualImpact, Likelihood: r.ResidualLikelihood, RiskLevel: models.Level(r.ResidualRiskLevel)},
		ImpactDescription: r.ImpactDescription,
		Threat:            r.Threat,
		Vulnerability:     r.Vulnerability,
		Measures:          r.Measures,
	}
	if r.Perimeter != nil {
		p := models.Perimeter(*r.Perimeter)
		cmd.Perimeter = &p
	}
	if r.TemplateID != "" {
		// Validate already checked the format.
		if id, err := domain.ParseTemplateID(r.TemplateID); err == nil {
			cmd.TemplateID = &id
		}
	}
	return cmd
}

type CreateFromTemplateRequest struct {
	TemplateID string `json:"template_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"max=200"`

	templateID domain.TemplateID
}

func (r *CreateFromTemplateRequest) Normalize() {
	if r == nil {
		return
	}
	s.TrimStrings(&r.TemplateID, &r.Name)
}

func (r *CreateFromTemplateRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	id, err := domain.ParseTemplateID(r.TemplateID)
	if err != nil {
		return err
	}
	r.templateID = id
	return nil
}

// UpdateScenarioRequest is a JSON merge patch over the scenario fields.
// Enum values are checked against the merged scenario by the service.
type UpdateScenarioRequest struct {
	fieldmap.Patch
}

func (r *UpdateScenarioRequest) Normalize() {
	if r == nil {
		return
	}
	for _, v := range []*optional.Value[string]{
		&r.Name, &r.Description, &r.Scope, &r.Perimeter, &r.Status,
		&r.RawRiskLevel, &r.ResidualRiskLevel,
		&r.ImpactDescription, &r.Threat, &r.Vulnerability, &r.Measures,
	} {
		v.V = strings.TrimSpace(v.V)
	}
}
