package service

import (
	"context"
	"log/slog"

	"riskdesk/internal/risk/readmodels"
	"riskdesk/internal/risk/scales"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
)

// ScaleService exposes per-company risk scales and their seeding.
type ScaleService struct {
	seeder    *scales.Seeder
	scales    ScaleReader
	companies CompanyChecker
	logger    *slog.Logger
}

func NewScaleService(seeder *scales.Seeder, reader ScaleReader, opts ...Option) *ScaleService {
	cfg := newConfig(opts)
	return &ScaleService{
		seeder:    seeder,
		scales:    reader,
		companies: cfg.companies,
		logger:    cfg.logger,
	}
}

// Seed ensures the company holds the six required scales.
func (s *ScaleService) Seed(ctx context.Context, companyID domain.CompanyID) (*scales.SeedReport, error) {
	if err := ensureCompany(ctx, s.companies, companyID); err != nil {
		return nil, err
	}
	return s.seeder.EnsureCompanyScales(ctx, companyID)
}

// List returns the company's scales, likelihood first, each with its levels.
func (s *ScaleService) List(ctx context.Context, companyID domain.CompanyID) ([]*readmodels.CompanyScale, error) {
	if err := requireCompanyID(companyID); err != nil {
		return nil, err
	}
	held, err := s.scales.ListCompanyScales(ctx, companyID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list company risk scales")
	}

	out := make([]*readmodels.CompanyScale, 0, len(held))
	for _, cs := range held {
		levels, err := s.scales.ListLevels(ctx, cs.ID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list risk scale levels")
		}
		out = append(out, &readmodels.CompanyScale{Scale: cs, Levels: levels})
	}
	return out, nil
}

func (s *ScaleService) Count(ctx context.Context, companyID domain.CompanyID) (int, error) {
	if err := requireCompanyID(companyID); err != nil {
		return 0, err
	}
	n, err := s.scales.CountCompanyScales(ctx, companyID)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count company risk scales")
	}
	return n, nil
}
