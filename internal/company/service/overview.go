package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	auditmodels "riskdesk/internal/audit/models"
	"riskdesk/internal/company/models"
	"riskdesk/internal/company/readmodels"
	riskmodels "riskdesk/internal/risk/models"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
)

const overviewTimeout = 5 * time.Second

// overviewParts is filled by one goroutine per field.
type overviewParts struct {
	company    *models.Company
	audits     []*auditmodels.Audit
	scenarios  []*riskmodels.RiskScenario
	scaleCount int
}

// Overview loads the company and the records attached to it concurrently.
// The first failure cancels the remaining reads.
func (s *CompanyService) Overview(ctx context.Context, id domain.CompanyID) (*readmodels.Overview, error) {
	if err := requireCompanyID(id); err != nil {
		return nil, err
	}
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, overviewTimeout)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	var parts overviewParts
	g.Go(func() error {
		c, err := s.companies.FindByID(ctx, id)
		if err != nil {
			return wrapCompanyErr(err, "failed to load company")
		}
		parts.company = c
		return nil
	})
	if s.audits != nil {
		g.Go(func() error {
			list, err := s.audits.ListByCompany(ctx, id)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audits")
			}
			parts.audits = list
			return nil
		})
	}
	if s.scenarios != nil {
		g.Go(func() error {
			list, err := s.scenarios.ListByCompany(ctx, id)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list risk scenarios")
			}
			parts.scenarios = list
			return nil
		})
	}
	if s.scales != nil {
		g.Go(func() error {
			n, err := s.scales.CountCompanyScales(ctx, id)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to count risk scales")
			}
			parts.scaleCount = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ObserveOverviewLatency(time.Since(start).Seconds())
	}
	return readmodels.NewOverview(parts.company, parts.audits, parts.scenarios, parts.scaleCount), nil
}
