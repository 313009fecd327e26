package service

import (
	"context"
	"errors"

	auditmodels "riskdesk/internal/audit/models"
	"riskdesk/internal/company/models"
	riskmodels "riskdesk/internal/risk/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
)

type CompanyStore interface {
	Create(ctx context.Context, c *models.Company) error
	FindByID(ctx context.Context, id domain.CompanyID) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
	Update(ctx context.Context, merged *models.Company, changes map[string]any) error
	Exists(ctx context.Context, id domain.CompanyID) (bool, error)
}

// Overview sources. The audit and risk stores satisfy these directly.

type AuditLister interface {
	ListByCompany(ctx context.Context, companyID domain.CompanyID) ([]*auditmodels.Audit, error)
}

type ScenarioLister interface {
	ListByCompany(ctx context.Context, companyID domain.CompanyID) ([]*riskmodels.RiskScenario, error)
}

type ScaleCounter interface {
	CountCompanyScales(ctx context.Context, companyID domain.CompanyID) (int, error)
}

func requireCompanyID(id domain.CompanyID) error {
	if id.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, "company ID required")
	}
	return nil
}

func wrapCompanyErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "company not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}
