package service

import (
	"context"
	"errors"

	"riskdesk/internal/risk/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
)

// Store interfaces define persistence contracts.

type ScenarioStore interface {
	Create(ctx context.Context, scenario *models.RiskScenario) error
	FindByID(ctx context.Context, id domain.ScenarioID) (*models.RiskScenario, error)
	ListByCompany(ctx context.Context, companyID domain.CompanyID) ([]*models.RiskScenario, error)
	Update(ctx context.Context, merged *models.RiskScenario, changes map[string]any) error
	Delete(ctx context.Context, id domain.ScenarioID) error
}

type TemplateStore interface {
	List(ctx context.Context) ([]*models.Template, error)
	FindByID(ctx context.Context, id domain.TemplateID) (*models.Template, error)
}

type ScaleReader interface {
	ListCompanyScales(ctx context.Context, companyID domain.CompanyID) ([]*models.CompanyScale, error)
	ListLevels(ctx context.Context, scaleID domain.CompanyScaleID) ([]*models.ScaleLevel, error)
	CountCompanyScales(ctx context.Context, companyID domain.CompanyID) (int, error)
}

// CompanyChecker is implemented by the company store.
type CompanyChecker interface {
	Exists(ctx context.Context, id domain.CompanyID) (bool, error)
}

func requireCompanyID(companyID domain.CompanyID) error {
	if companyID.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, "company ID required")
	}
	return nil
}

func requireScenarioID(scenarioID domain.ScenarioID) error {
	if scenarioID.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, "risk scenario ID required")
	}
	return nil
}

// ensureCompany fails with not_found unless the company exists.
func ensureCompany(ctx context.Context, companies CompanyChecker, companyID domain.CompanyID) error {
	if err := requireCompanyID(companyID); err != nil {
		return err
	}
	if companies == nil {
		return nil
	}
	ok, err := companies.Exists(ctx, companyID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up company")
	}
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "company not found")
	}
	return nil
}

// Error wrapping helpers translate sentinel errors to domain errors.

func wrapScenarioErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "risk scenario not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}

func wrapTemplateErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "risk scenario template not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}
