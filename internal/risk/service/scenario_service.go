package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	riskmetrics "riskdesk/internal/risk/metrics"
	"riskdesk/internal/risk/models"
	"riskdesk/internal/risk/scenario/fieldmap"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/requestcontext"
)

const maxScenarioName = 200

// CreateScenarioCommand carries the scenario wizard's answers.
type CreateScenarioCommand struct {
	CompanyID         domain.CompanyID
	TemplateID        *domain.TemplateID
	Name              string
	Description       string
	Scope             models.Scope
	Perimeter         *models.Perimeter
	Status            models.Status
	Raw               models.Assessment
	Residual          models.Assessment
	ImpactDescription string
	Threat            string
	Vulnerability     string
	Measures          string
}

// ScenarioService manages the risk scenario register of each company.
type ScenarioService struct {
	scenarios ScenarioStore
	templates TemplateStore
	companies CompanyChecker
	tx        StoreTx
	logger    *slog.Logger
	metrics   *riskmetrics.Metrics
}

func NewScenarioService(scenarios ScenarioStore, templates TemplateStore, opts ...Option) *ScenarioService {
	cfg := newConfig(opts)
	return &ScenarioService{
		scenarios: scenarios,
		templates: templates,
		companies: cfg.companies,
		tx:        cfg.tx,
		logger:    cfg.logger,
		metrics:   cfg.metrics,
	}
}

// Create stores a new scenario. Status defaults to identified and missing
// risk levels are derived from the ratings.
func (s *ScenarioService) Create(ctx context.Context, cmd CreateScenarioCommand) (*models.RiskScenario, error) {
	if err := ensureCompany(ctx, s.companies, cmd.CompanyID); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	scenario := &models.RiskScenario{
		ID:                domain.ScenarioID(uuid.New()),
		CompanyID:         cmd.CompanyID,
		TemplateID:        cmd.TemplateID,
		Name:              strings.TrimSpace(cmd.Name),
		Description:       strings.TrimSpace(cmd.Description),
		Scope:             cmd.Scope,
		Perimeter:         cmd.Perimeter,
		Status:            cmd.Status,
		Raw:               cmd.Raw,
		Residual:          cmd.Residual,
		ImpactDescription: strings.TrimSpace(cmd.ImpactDescription),
		Threat:            strings.TrimSpace(cmd.Threat),
		Vulnerability:     strings.TrimSpace(cmd.Vulnerability),
		Measures:          strings.TrimSpace(cmd.Measures),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if scenario.Status == "" {
		scenario.Status = models.StatusIdentified
	}
	scenario.Raw.Normalize()
	scenario.Residual.Normalize()
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	if err := s.scenarios.Create(ctx, scenario); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create risk scenario")
	}
	if s.metrics != nil {
		s.metrics.IncrementScenariosCreated()
	}
	s.logger.InfoContext(ctx, "risk scenario created",
		"scenario_id", scenario.ID,
		"company_id", scenario.CompanyID,
		"risk_level", scenario.Raw.RiskLevel,
	)
	return scenario, nil
}

// CreateFromTemplate starts a scenario from a catalogue entry. An empty name
// falls back to the template description.
func (s *ScenarioService) CreateFromTemplate(ctx context.Context, companyID domain.CompanyID, templateID domain.TemplateID, name string) (*models.RiskScenario, error) {
	if templateID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "template ID required")
	}
	tpl, err := s.templates.FindByID(ctx, templateID)
	if err != nil {
		return nil, wrapTemplateErr(err, "failed to load risk scenario template")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = truncateRunes(tpl.ScenarioDescription, maxScenarioName)
	}
	return s.Create(ctx, CreateScenarioCommand{
		CompanyID:     companyID,
		TemplateID:    &tpl.ID,
		Name:          name,
		Description:   tpl.ScenarioDescription,
		Threat:        tpl.Threat,
		Vulnerability: tpl.Vulnerability,
	})
}

func (s *ScenarioService) Get(ctx context.Context, id domain.ScenarioID) (*models.RiskScenario, error) {
	if err := requireScenarioID(id); err != nil {
		return nil, err
	}
	scenario, err := s.scenarios.FindByID(ctx, id)
	if err != nil {
		return nil, wrapScenarioErr(err, "failed to load risk scenario")
	}
	return scenario, nil
}

func (s *ScenarioService) ListByCompany(ctx context.Context, companyID domain.CompanyID) ([]*models.RiskScenario, error) {
	if err := requireCompanyID(companyID); err != nil {
		return nil, err
	}
	list, err := s.scenarios.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list risk scenarios")
	}
	return list, nil
}

// Update applies a partial update. Changing a rating without sending the
// matching level re-derives that level. The merged scenario is validated
// before anything is written.
func (s *ScenarioService) Update(ctx context.Context, id domain.ScenarioID, patch fieldmap.Patch) (*models.RiskScenario, error) {
	if err := requireScenarioID(id); err != nil {
		return nil, err
	}

	var updated *models.RiskScenario
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.scenarios.FindByID(txCtx, id)
		if err != nil {
			return wrapScenarioErr(err, "failed to load risk scenario")
		}

		changes := fieldmap.ToUpdate(patch)
		if len(changes) == 0 {
			updated = current
			return nil
		}
		merged := fieldmap.Apply(current, patch)
		if (patch.RawImpact.Set || patch.RawLikelihood.Set) && !patch.RawRiskLevel.Set {
			changes["raw_risk_level"] = rederive(&merged.Raw)
		}
		if (patch.ResidualImpact.Set || patch.ResidualLikelihood.Set) && !patch.ResidualRiskLevel.Set {
			changes["residual_risk_level"] = rederive(&merged.Residual)
		}
		if err := merged.Validate(); err != nil {
			return err
		}

		merged.UpdatedAt = requestcontext.Now(txCtx)
		if err := s.scenarios.Update(txCtx, merged, changes); err != nil {
			return wrapScenarioErr(err, "failed to update risk scenario")
		}
		updated = merged
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a scenario permanently.
func (s *ScenarioService) Delete(ctx context.Context, id domain.ScenarioID) error {
	if err := requireScenarioID(id); err != nil {
		return err
	}
	if err := s.scenarios.Delete(ctx, id); err != nil {
		return wrapScenarioErr(err, "failed to delete risk scenario")
	}
	if s.metrics != nil {
		s.metrics.IncrementScenariosDeleted()
	}
	s.logger.InfoContext(ctx, "risk scenario deleted", "scenario_id", id)
	return nil
}

// rederive recomputes a's level from its ratings and returns the column value.
func rederive(a *models.Assessment) any {
	a.RiskLevel = ""
	a.Normalize()
	if a.RiskLevel == "" {
		return nil
	}
	return string(a.RiskLevel)
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
