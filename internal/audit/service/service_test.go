package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"riskdesk/internal/audit/catalogue"
	"riskdesk/internal/audit/fieldmap"
	"riskdesk/internal/audit/models"
	"riskdesk/internal/audit/plan"
	auditstore "riskdesk/internal/audit/store/audit"
	frameworkstore "riskdesk/internal/audit/store/framework"
	themestore "riskdesk/internal/audit/store/theme"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/optional"
	"riskdesk/pkg/requestcontext"
)

type knownCompanies map[domain.CompanyID]bool

func (k knownCompanies) Exists(_ context.Context, id domain.CompanyID) (bool, error) {
	return k[id], nil
}

type ServiceSuite struct {
	suite.Suite
	ctx         context.Context
	now         time.Time
	companyID   domain.CompanyID
	frameworkID domain.FrameworkID
	themes      *themestore.InMemory
	audits      *AuditService
	catalogue   *CatalogueService
	plans       *PlanService
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.now = time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.companyID = domain.CompanyID(uuid.New())

	frameworks := frameworkstore.NewInMemory(catalogue.Frameworks()...)
	s.frameworkID = catalogue.Frameworks()[0].ID
	s.themes = themestore.NewInMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.audits = NewAuditService(auditstore.NewInMemory(), frameworks,
		WithLogger(logger), WithCompanyChecker(knownCompanies{s.companyID: true}))
	s.catalogue = NewCatalogueService(s.themes, frameworks, WithLogger(logger))
	s.plans = NewPlanService(s.themes, WithLogger(logger))
}

func date(m time.Month, d int) *time.Time {
	t := time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func (s *ServiceSuite) createAudit() *models.Audit {
	a, err := s.audits.Create(s.ctx, CreateAuditCommand{
		CompanyID:   s.companyID,
		FrameworkID: s.frameworkID,
		Name:        " ISO 27001 surveillance ",
		StartDate:   date(time.October, 7),
		EndDate:     date(time.October, 9),
	})
	s.Require().NoError(err)
	return a
}

func (s *ServiceSuite) TestCreate() {
	s.Run("defaults status to draft", func() {
		a := s.createAudit()
		s.Equal(models.StatusDraft, a.Status)
		s.Equal("ISO 27001 surveillance", a.Name)
		s.Equal(s.now, a.CreatedAt)
	})

	s.Run("rejects reversed dates", func() {
		_, err := s.audits.Create(s.ctx, CreateAuditCommand{
			CompanyID: s.companyID, FrameworkID: s.frameworkID, Name: "x",
			StartDate: date(time.October, 9), EndDate: date(time.October, 7),
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown company", func() {
		_, err := s.audits.Create(s.ctx, CreateAuditCommand{CompanyID: domain.CompanyID(uuid.New()), FrameworkID: s.frameworkID, Name: "x"})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("unknown framework", func() {
		_, err := s.audits.Create(s.ctx, CreateAuditCommand{CompanyID: s.companyID, FrameworkID: domain.FrameworkID(uuid.New()), Name: "x"})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestUpdate() {
	a := s.createAudit()
	later := requestcontext.WithTime(s.ctx, s.now.Add(time.Hour))

	s.Run("clears end date and changes status", func() {
		got, err := s.audits.Update(later, a.ID, fieldmap.Patch{
			EndDate: optional.Of(""),
			Status:  optional.Of(string(models.StatusReview)),
		})
		s.Require().NoError(err)
		s.Nil(got.EndDate)
		s.Equal(models.StatusReview, got.Status)
		s.Equal(s.now.Add(time.Hour), got.UpdatedAt)

		stored, err := s.audits.Get(s.ctx, a.ID)
		s.Require().NoError(err)
		s.Nil(stored.EndDate)
	})

	s.Run("merged dates are re-validated", func() {
		_, err := s.audits.Update(later, a.ID, fieldmap.Patch{
			EndDate: optional.Of("2024-10-08"),
		})
		s.Require().NoError(err)

		_, err = s.audits.Update(later, a.ID, fieldmap.Patch{StartDate: optional.Of("2024-10-10")})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("malformed date", func() {
		_, err := s.audits.Update(later, a.ID, fieldmap.Patch{StartDate: optional.Of("10/10/2024")})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown status is rejected", func() {
		_, err := s.audits.Update(later, a.ID, fieldmap.Patch{Status: optional.Of("archived")})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("empty patch returns current", func() {
		got, err := s.audits.Update(later, a.ID, fieldmap.Patch{})
		s.Require().NoError(err)
		s.Equal(a.ID, got.ID)
	})

	s.Run("missing audit", func() {
		_, err := s.audits.Update(later, domain.AuditID(uuid.New()), fieldmap.Patch{Name: optional.Of("x")})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestDelete() {
	a := s.createAudit()
	s.Require().NoError(s.audits.Delete(s.ctx, a.ID))

	_, err := s.audits.Get(s.ctx, a.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.True(dErrors.HasCode(s.audits.Delete(s.ctx, a.ID), dErrors.CodeNotFound))

	list, err := s.audits.ListByCompany(s.ctx, s.companyID)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *ServiceSuite) TestAssignUsers() {
	a := s.createAudit()
	lead := domain.UserID(uuid.New())
	auditee := domain.UserID(uuid.New())

	users, err := s.audits.AssignUsers(s.ctx, a.ID, []Assignment{
		{UserID: lead, Role: models.RoleAuditor},
		{UserID: auditee, Role: models.RoleAuditee},
		{UserID: lead, Role: models.RoleLeadAuditor},
	})
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	roles := map[domain.UserID]models.Role{}
	for _, u := range users {
		roles[u.UserID] = u.Role
	}
	s.Equal(models.RoleLeadAuditor, roles[lead])
	s.Equal(models.RoleAuditee, roles[auditee])

	_, err = s.audits.AssignUsers(s.ctx, a.ID, []Assignment{{UserID: lead, Role: "owner"}})
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	_, err = s.audits.AssignUsers(s.ctx, a.ID, nil)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	_, err = s.audits.AssignUsers(s.ctx, domain.AuditID(uuid.New()), []Assignment{{UserID: lead, Role: models.RoleObserver}})
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestDefaultThemesSeedOnce() {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.catalogue.ListThemes(s.ctx)
			s.NoError(err)
		}()
	}
	wg.Wait()

	list, err := s.catalogue.ListThemes(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 5)

	n, err := s.catalogue.EnsureDefaultThemes(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *ServiceSuite) TestCreateTheme() {
	hours := 1.5
	th, err := s.catalogue.CreateTheme(s.ctx, " Physical security ", "", &hours)
	s.Require().NoError(err)
	s.Equal("Physical security", th.Name)

	_, err = s.catalogue.CreateTheme(s.ctx, "Physical security", "", nil)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))

	zero := 0.0
	_, err = s.catalogue.CreateTheme(s.ctx, "Other", "", &zero)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	// A non-empty catalogue is never topped up with defaults.
	list, err := s.catalogue.ListThemes(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *ServiceSuite) TestListFrameworks() {
	list, err := s.catalogue.ListFrameworks(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 4)
}

func (s *ServiceSuite) TestEvaluatePlan() {
	three := 3.0
	governance, err := s.catalogue.CreateTheme(s.ctx, "Governance", "", &three)
	s.Require().NoError(err)
	access, err := s.catalogue.CreateTheme(s.ctx, "Access", "", &three)
	s.Require().NoError(err)
	untimed, err := s.catalogue.CreateTheme(s.ctx, "Untimed", "", nil)
	s.Require().NoError(err)
	monday := time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC)

	s.Run("one day is one short", func() {
		eval, err := s.plans.Evaluate(s.ctx, []time.Time{monday}, []domain.ThemeID{governance.ID, access.ID})
		s.Require().NoError(err)
		s.Equal(8.0, eval.Summary.TotalHoursNeeded)
		s.Equal(2, eval.Summary.RequiredDays)
		s.False(eval.Summary.IsValid)
		s.Equal(1, eval.Summary.Shortfall())
		s.NotEmpty(eval.Schedule.Unscheduled)
	})

	s.Run("missing duration uses the default", func() {
		eval, err := s.plans.Evaluate(s.ctx, []time.Time{monday}, []domain.ThemeID{untimed.ID})
		s.Require().NoError(err)
		s.Equal(plan.DefaultSettings().DefaultThemeHours, eval.Summary.TotalInterviewHours)
		s.True(eval.Summary.IsValid)
		s.Equal("Untimed", eval.Schedule.Days[0].Slots[1].Label)
	})

	s.Run("unknown theme", func() {
		_, err := s.plans.Evaluate(s.ctx, []time.Time{monday}, []domain.ThemeID{domain.ThemeID(uuid.New())})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("no themes is never valid", func() {
		eval, err := s.plans.Evaluate(s.ctx, []time.Time{monday, monday.AddDate(0, 0, 1)}, nil)
		s.Require().NoError(err)
		s.False(eval.Summary.IsValid)
		s.Equal(plan.ExplanationNoThemes, eval.Summary.Explanation)
	})
}
