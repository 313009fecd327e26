package handler

import (
	"riskdesk/internal/enrichment/models"
	"riskdesk/pkg/domain"
	s "riskdesk/pkg/string"
	"riskdesk/pkg/validation"
)

type EnrichCompanyRequest struct {
	CompanyID   string `json:"companyId" validate:"omitempty,uuid"`
	CompanyName string `json:"companyName" validate:"required,notblank,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

func (r *EnrichCompanyRequest) Normalize() {
	if r == nil {
		return
	}
	s.TrimStrings(&r.CompanyID, &r.CompanyName, &r.Description)
}

func (r *EnrichCompanyRequest) Validate() error {
	return validation.Validate(r)
}

// toModel runs after Validate, so a non-empty CompanyID parses.
func (r *EnrichCompanyRequest) toModel() models.CompanyRequest {
	req := models.CompanyRequest{CompanyName: r.CompanyName, Description: r.Description}
	if id, err := domain.ParseCompanyID(r.CompanyID); err == nil {
		req.CompanyID = id
	}
	return req
}

type DescribeImpactRequest struct {
	ScenarioDescription string `json:"scenarioDescription" validate:"required,notblank,max=4000"`
}

func (r *DescribeImpactRequest) Normalize() {
	if r == nil {
		return
	}
	s.TrimStrings(&r.ScenarioDescription)
}

func (r *DescribeImpactRequest) Validate() error {
	return validation.Validate(r)
}
