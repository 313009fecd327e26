package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	auditmodels "riskdesk/internal/audit/models"
	auditstore "riskdesk/internal/audit/store/audit"
	"riskdesk/internal/company/fieldmap"
	companystore "riskdesk/internal/company/store/company"
	riskmodels "riskdesk/internal/risk/models"
	scalestore "riskdesk/internal/risk/store/scale"
	scenariostore "riskdesk/internal/risk/store/scenario"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/optional"
	"riskdesk/pkg/requestcontext"
)

type failingScales struct{}

func (failingScales) CountCompanyScales(context.Context, domain.CompanyID) (int, error) {
	return 0, errors.New("connection reset")
}

type ServiceSuite struct {
	suite.Suite
	ctx       context.Context
	now       time.Time
	store     *companystore.InMemory
	audits    *auditstore.InMemory
	scenarios *scenariostore.InMemory
	scales    *scalestore.InMemory
	service   *CompanyService
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.now = time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.store = companystore.NewInMemory()
	s.audits = auditstore.NewInMemory()
	s.scenarios = scenariostore.NewInMemory()
	s.scales = scalestore.NewInMemory()
	s.service = NewCompanyService(s.store,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithOverviewSources(s.audits, s.scenarios, s.scales),
	)
}

func (s *ServiceSuite) create(name string) domain.CompanyID {
	c, err := s.service.Create(s.ctx, CreateCompanyCommand{Name: name})
	s.Require().NoError(err)
	return c.ID
}

func (s *ServiceSuite) TestCreate() {
	s.Run("trims and derives slug", func() {
		year := 1999
		c, err := s.service.Create(s.ctx, CreateCompanyCommand{
			Name:         "  Acme Logistics ",
			Activity:     " Transport ",
			CreationYear: &year,
		})

		s.Require().NoError(err)
		s.Equal("Acme Logistics", c.Name)
		s.Equal("acme-logistics", c.Slug)
		s.Equal("Transport", c.Activity)
		s.Equal(s.now, c.CreatedAt)

		stored, err := s.service.Get(s.ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(c, stored)
	})

	s.Run("name is required", func() {
		_, err := s.service.Create(s.ctx, CreateCompanyCommand{Name: "   "})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("creation year is checked", func() {
		year := 12
		_, err := s.service.Create(s.ctx, CreateCompanyCommand{Name: "Acme", CreationYear: &year})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestGetUnknown() {
	_, err := s.service.Get(s.ctx, domain.CompanyID(uuid.New()))
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.service.Get(s.ctx, domain.CompanyID{})
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *ServiceSuite) TestList() {
	s.create("Zeta")
	s.create("alpha")

	list, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("alpha", list[0].Name)
}

func (s *ServiceSuite) TestUpdate() {
	id := s.create("Acme")

	s.Run("patch renames and sets dates", func() {
		later := requestcontext.WithTime(context.Background(), s.now.Add(time.Hour))
		c, err := s.service.Update(later, id, fieldmap.Patch{
			Name:          optional.Of("Acme Group"),
			LastAuditDate: optional.Of("2024-05-02"),
		})

		s.Require().NoError(err)
		s.Equal("acme-group", c.Slug)
		s.Require().NotNil(c.LastAuditDate)
		s.Equal(s.now.Add(time.Hour), c.UpdatedAt)
		s.Equal(s.now, c.CreatedAt)
	})

	s.Run("empty patch returns current", func() {
		c, err := s.service.Update(s.ctx, id, fieldmap.Patch{})
		s.Require().NoError(err)
		s.Equal("Acme Group", c.Name)
	})

	s.Run("clearing date", func() {
		c, err := s.service.Update(s.ctx, id, fieldmap.Patch{LastAuditDate: optional.Of("")})
		s.Require().NoError(err)
		s.Nil(c.LastAuditDate)
	})

	s.Run("malformed date is a validation error", func() {
		_, err := s.service.Update(s.ctx, id, fieldmap.Patch{LastAuditDate: optional.Of("yesterday")})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("null name is rejected", func() {
		_, err := s.service.Update(s.ctx, id, fieldmap.Patch{Name: optional.NullOf[string]()})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		c, err := s.service.Get(s.ctx, id)
		s.Require().NoError(err)
		s.Equal("Acme Group", c.Name)
	})

	s.Run("unknown company", func() {
		_, err := s.service.Update(s.ctx, domain.CompanyID(uuid.New()), fieldmap.Patch{Activity: optional.Of("x")})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestApplyEnrichment() {
	id := s.create("Acme")
	_, err := s.service.Update(s.ctx, id, fieldmap.Patch{MarketScope: optional.Of("local")})
	s.Require().NoError(err)

	year := 1962
	c, err := s.service.ApplyEnrichment(s.ctx, id, Enrichment{
		Activity:     "Freight forwarding",
		CreationYear: &year,
	})

	s.Require().NoError(err)
	s.Equal("Freight forwarding", c.Activity)
	s.Equal(1962, *c.CreationYear)
	s.Equal("local", c.MarketScope, "empty proposal fields keep the stored value")
}

func (s *ServiceSuite) TestOverview() {
	id := s.create("Acme")
	other := s.create("Other")

	s.Require().NoError(s.audits.Create(s.ctx, &auditmodels.Audit{
		ID: domain.AuditID(uuid.New()), CompanyID: id, Name: "ISO", Status: auditmodels.StatusInProgress, CreatedAt: s.now,
	}))
	s.Require().NoError(s.audits.Create(s.ctx, &auditmodels.Audit{
		ID: domain.AuditID(uuid.New()), CompanyID: id, Name: "SOC 2", Status: auditmodels.StatusCompleted, CreatedAt: s.now,
	}))
	s.Require().NoError(s.audits.Create(s.ctx, &auditmodels.Audit{
		ID: domain.AuditID(uuid.New()), CompanyID: other, Name: "GDPR", Status: auditmodels.StatusDraft, CreatedAt: s.now,
	}))
	s.Require().NoError(s.scenarios.Create(s.ctx, &riskmodels.RiskScenario{
		ID: domain.ScenarioID(uuid.New()), CompanyID: id, Name: "Phishing",
		Raw: riskmodels.Assessment{Impact: 4, Likelihood: 3, RiskLevel: riskmodels.LevelCritical},
	}))
	s.Require().NoError(s.scales.CreateCompanyScale(s.ctx, &riskmodels.CompanyScale{
		ID: domain.CompanyScaleID(uuid.New()), CompanyID: id, ScaleTypeID: domain.ScaleTypeID(uuid.New()), IsActive: true,
	}))

	o, err := s.service.Overview(s.ctx, id)

	s.Require().NoError(err)
	s.Equal("Acme", o.Company.Name)
	s.Len(o.Audits, 2)
	s.Equal(1, o.OpenAudits)
	s.Len(o.Scenarios, 1)
	s.Equal(1, o.ScenariosByLevel[riskmodels.LevelCritical])
	s.Equal(0, o.ScenariosByLevel[riskmodels.LevelLow])
	s.Equal(1, o.ScaleCount)
	s.False(o.ScaleSetupComplete())
}

func (s *ServiceSuite) TestOverviewFailures() {
	s.Run("unknown company", func() {
		_, err := s.service.Overview(s.ctx, domain.CompanyID(uuid.New()))
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("a failing source fails the overview", func() {
		id := s.create("Acme")
		svc := NewCompanyService(s.store, WithOverviewSources(nil, nil, failingScales{}))

		_, err := svc.Overview(s.ctx, id)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("missing sources leave sections empty", func() {
		id := s.create("Solo")
		svc := NewCompanyService(s.store)

		o, err := svc.Overview(s.ctx, id)
		s.Require().NoError(err)
		s.Empty(o.Audits)
		s.Zero(o.ScaleCount)
	})
}
