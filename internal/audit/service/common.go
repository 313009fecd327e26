package service

import (
	"context"
	"errors"

	"riskdesk/internal/audit/models"
	"riskdesk/internal/sentinel"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
)

// Store interfaces define persistence contracts.

type AuditStore interface {
	Create(ctx context.Context, audit *models.Audit) error
	FindByID(ctx context.Context, id domain.AuditID) (*models.Audit, error)
	ListByCompany(ctx context.Context, companyID domain.CompanyID) ([]*models.Audit, error)
	Update(ctx context.Context, merged *models.Audit, changes map[string]any) error
	Delete(ctx context.Context, id domain.AuditID) error
	AssignUsers(ctx context.Context, auditID domain.AuditID, assignments []*models.AuditUser) error
	ListUsers(ctx context.Context, auditID domain.AuditID) ([]*models.AuditUser, error)
}

type ThemeStore interface {
	Create(ctx context.Context, theme *models.Theme) error
	List(ctx context.Context) ([]*models.Theme, error)
	Count(ctx context.Context) (int, error)
}

type FrameworkStore interface {
	List(ctx context.Context) ([]*models.Framework, error)
	FindByID(ctx context.Context, id domain.FrameworkID) (*models.Framework, error)
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

func requireAuditID(auditID domain.AuditID) error {
	if auditID.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, "audit ID required")
	}
	return nil
}

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

func wrapAuditErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "audit not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}

func wrapFrameworkErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeValidation, "framework_id does not match a known framework")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}
