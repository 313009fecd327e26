package service

import (
	"context"
	"log/slog"
	"time"

	auditmetrics "riskdesk/internal/audit/metrics"
	"riskdesk/internal/audit/plan"
	"riskdesk/internal/audit/readmodels"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
)

// PlanService evaluates audit plans against the theme catalogue. It stores nothing.
type PlanService struct {
	themes   ThemeStore
	settings plan.Settings
	logger   *slog.Logger
	metrics  *auditmetrics.Metrics
}

func NewPlanService(themes ThemeStore, opts ...Option) *PlanService {
	cfg := newConfig(opts)
	return &PlanService{
		themes:   themes,
		settings: cfg.settings,
		logger:   cfg.logger,
		metrics:  cfg.metrics,
	}
}

func (s *PlanService) Settings() plan.Settings {
	return s.settings
}

// Evaluate resolves theme durations from the catalogue and runs the
// feasibility calculation. Unknown theme ids are rejected.
func (s *PlanService) Evaluate(ctx context.Context, days []time.Time, themeIDs []domain.ThemeID) (*readmodels.PlanEvaluation, error) {
	themes, err := s.themes.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load audit themes")
	}
	durations := make(map[domain.ThemeID]float64, len(themes))
	names := make(map[domain.ThemeID]string, len(themes))
	for _, t := range themes {
		names[t.ID] = t.Name
		if t.DurationHours != nil {
			durations[t.ID] = *t.DurationHours
		}
	}
	for _, id := range themeIDs {
		if _, ok := names[id]; !ok {
			return nil, dErrors.New(dErrors.CodeValidation, "unknown theme "+id.String())
		}
	}

	in := plan.Input{
		SelectedDays:       days,
		SelectedThemeIDs:   themeIDs,
		ThemeDurationHours: durations,
	}
	summary := plan.Calculate(in, s.settings)
	if s.metrics != nil {
		s.metrics.ObservePlan(summary.IsValid, summary.RequiredDays)
	}
	s.logger.DebugContext(ctx, "audit plan evaluated",
		"topics", summary.TopicsCount,
		"required_days", summary.RequiredDays,
		"business_days", summary.BusinessDays,
		"valid", summary.IsValid,
	)
	return &readmodels.PlanEvaluation{
		Summary:  summary,
		Schedule: plan.BuildSchedule(in, s.settings, names),
	}, nil
}
