package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"riskdesk/internal/company/fieldmap"
	companymetrics "riskdesk/internal/company/metrics"
	"riskdesk/internal/company/models"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/optional"
	"riskdesk/pkg/requestcontext"
)

type CreateCompanyCommand struct {
	Name          string
	Description   string
	Activity      string
	CreationYear  *int
	ParentCompany string
	MarketScope   string
	LastAuditDate *time.Time
}

// Enrichment is an AI proposal the user chose to keep. Empty fields and a
// nil year are left out of the update.
type Enrichment struct {
	Activity      string
	CreationYear  *int
	ParentCompany string
	MarketScope   string
}

// CompanyService manages the audited companies.
type CompanyService struct {
	companies CompanyStore
	audits    AuditLister
	scenarios ScenarioLister
	scales    ScaleCounter
	tx        StoreTx
	logger    *slog.Logger
	metrics   *companymetrics.Metrics
}

func NewCompanyService(companies CompanyStore, opts ...Option) *CompanyService {
	cfg := newConfig(opts)
	return &CompanyService{
		companies: companies,
		audits:    cfg.audits,
		scenarios: cfg.scenarios,
		scales:    cfg.scales,
		tx:        cfg.tx,
		logger:    cfg.logger,
		metrics:   cfg.metrics,
	}
}

func (s *CompanyService) Create(ctx context.Context, cmd CreateCompanyCommand) (*models.Company, error) {
	c, err := models.NewCompany(domain.CompanyID(uuid.New()), strings.TrimSpace(cmd.Name), requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	c.Description = strings.TrimSpace(cmd.Description)
	c.Activity = strings.TrimSpace(cmd.Activity)
	c.CreationYear = cmd.CreationYear
	c.ParentCompany = strings.TrimSpace(cmd.ParentCompany)
	c.MarketScope = strings.TrimSpace(cmd.MarketScope)
	c.LastAuditDate = cmd.LastAuditDate
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.companies.Create(ctx, c); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create company")
	}
	if s.metrics != nil {
		s.metrics.IncrementCompaniesCreated()
	}
	s.logger.InfoContext(ctx, "company created", "company_id", c.ID, "slug", c.Slug)
	return c, nil
}

func (s *CompanyService) Get(ctx context.Context, id domain.CompanyID) (*models.Company, error) {
	if err := requireCompanyID(id); err != nil {
		return nil, err
	}
	c, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, wrapCompanyErr(err, "failed to load company")
	}
	return c, nil
}

func (s *CompanyService) List(ctx context.Context) ([]*models.Company, error) {
	list, err := s.companies.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list companies")
	}
	return list, nil
}

// Update applies a partial update and re-validates the merged company.
func (s *CompanyService) Update(ctx context.Context, id domain.CompanyID, patch fieldmap.Patch) (*models.Company, error) {
	if err := requireCompanyID(id); err != nil {
		return nil, err
	}
	if patch.Name.Set && patch.Name.Null {
		return nil, dErrors.New(dErrors.CodeValidation, "name cannot be null")
	}

	var updated *models.Company
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.companies.FindByID(txCtx, id)
		if err != nil {
			return wrapCompanyErr(err, "failed to load company")
		}

		changes := fieldmap.ToUpdate(patch)
		if len(changes) == 0 {
			updated = current
			return nil
		}
		merged, err := fieldmap.Apply(current, patch)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, err.Error())
		}
		if err := merged.Validate(); err != nil {
			return err
		}

		merged.UpdatedAt = requestcontext.Now(txCtx)
		if err := s.companies.Update(txCtx, merged, changes); err != nil {
			return wrapCompanyErr(err, "failed to update company")
		}
		updated = merged
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementCompaniesUpdated()
	}
	return updated, nil
}

// ApplyEnrichment writes the accepted proposal fields through Update.
func (s *CompanyService) ApplyEnrichment(ctx context.Context, id domain.CompanyID, e Enrichment) (*models.Company, error) {
	var patch fieldmap.Patch
	if v := strings.TrimSpace(e.Activity); v != "" {
		patch.Activity = optional.Of(v)
	}
	if e.CreationYear != nil {
		patch.CreationYear = optional.Of(*e.CreationYear)
	}
	if v := strings.TrimSpace(e.ParentCompany); v != "" {
		patch.ParentCompany = optional.Of(v)
	}
	if v := strings.TrimSpace(e.MarketScope); v != "" {
		patch.MarketScope = optional.Of(v)
	}

	c, err := s.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementEnrichmentsAccepted()
	}
	s.logger.InfoContext(ctx, "company enrichment accepted", "company_id", id)
	return c, nil
}

// Exists lets other modules check a company without loading it.
func (s *CompanyService) Exists(ctx context.Context, id domain.CompanyID) (bool, error) {
	return s.companies.Exists(ctx, id)
}
