package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"riskdesk/internal/enrichment/generator"
	"riskdesk/internal/enrichment/metrics"
	"riskdesk/internal/enrichment/models"
	"riskdesk/internal/enrichment/tracer"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/platform/circuit"
)

// Generator produces model output for a prompt.
type Generator interface {
	Generate(ctx context.Context, p generator.Prompt) (string, error)
}

// Service brokers the two enrichment calls. Calls are independent of each
// other; the only shared state is the circuit breaker.
type Service struct {
	generator Generator
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    tracer.Tracer
	breaker   *circuit.Breaker
	timeout   time.Duration
	model     string
}

// New returns a service that answers every call with unavailable when gen is nil.
func New(gen Generator, opts ...Option) *Service {
	cfg := newConfig(opts)
	return &Service{
		generator: gen,
		logger:    cfg.logger,
		metrics:   cfg.metrics,
		tracer:    cfg.tracer,
		breaker:   cfg.breaker,
		timeout:   cfg.timeout,
		model:     cfg.model,
	}
}

// EnrichCompany asks the model for the profile fields of a company. The
// proposal is returned to the caller and never stored here.
func (s *Service) EnrichCompany(ctx context.Context, req models.CompanyRequest) (proposal *models.CompanyProposal, err error) {
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.Description = strings.TrimSpace(req.Description)
	if req.CompanyName == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "companyName is required")
	}

	ctx, span := s.tracer.Start(ctx, tracer.SpanEnrichCompany,
		tracer.String(tracer.AttrKind, string(models.KindCompany)),
		tracer.String("company_id", req.CompanyID.String()),
	)
	defer func() { span.End(err) }()

	out, err := s.call(ctx, models.KindCompany, companyPrompt(req))
	if err != nil {
		return nil, err
	}

	proposal, err = models.ParseCompanyProposal(out)
	if err != nil {
		s.logger.WarnContext(ctx, "enrichment output is not a JSON object",
			"kind", models.KindCompany,
			"company_id", req.CompanyID,
			"error", err,
		)
		s.countCall(models.KindCompany, metrics.OutcomeInvalid)
		return nil, dErrors.Wrap(err, dErrors.CodeUpstreamFailed, "enrichment service returned invalid JSON")
	}
	s.countCall(models.KindCompany, metrics.OutcomeSuccess)
	return proposal, nil
}

// DescribeImpact asks the model for a short narrative of what the scenario
// would cost the organisation.
func (s *Service) DescribeImpact(ctx context.Context, req models.ImpactRequest) (description string, err error) {
	req.ScenarioDescription = strings.TrimSpace(req.ScenarioDescription)
	if req.ScenarioDescription == "" {
		return "", dErrors.New(dErrors.CodeValidation, "scenarioDescription is required")
	}

	ctx, span := s.tracer.Start(ctx, tracer.SpanDescribeImpact,
		tracer.String(tracer.AttrKind, string(models.KindImpactDescription)),
	)
	defer func() { span.End(err) }()

	out, err := s.call(ctx, models.KindImpactDescription, impactPrompt(req))
	if err != nil {
		return "", err
	}

	description, err = models.ParseImpactDescription(out)
	if err != nil {
		s.countCall(models.KindImpactDescription, metrics.OutcomeInvalid)
		return "", dErrors.Wrap(err, dErrors.CodeUpstreamFailed, "enrichment service returned an empty description")
	}
	s.countCall(models.KindImpactDescription, metrics.OutcomeSuccess)
	return description, nil
}

// call runs one guarded model request. Only transport failures and timeouts
// count against the breaker; unusable output is the caller's concern.
func (s *Service) call(ctx context.Context, kind models.Kind, p generator.Prompt) (string, error) {
	if s.generator == nil {
		s.countCall(kind, metrics.OutcomeUnavailable)
		return "", dErrors.New(dErrors.CodeUnavailable, "enrichment is not configured")
	}
	ctx, span := s.tracer.Start(ctx, tracer.SpanGenerate,
		tracer.String(tracer.AttrKind, string(kind)),
		tracer.String(tracer.AttrModel, s.model),
		tracer.Int64(tracer.AttrPromptChars, int64(len(p.System)+len(p.User))),
	)
	if !s.breaker.Allow() {
		span.AddEvent(tracer.EventBreakerRejected, tracer.String(tracer.AttrBreakerState, s.breaker.State().String()))
		s.countCall(kind, metrics.OutcomeRejected)
		err := dErrors.New(dErrors.CodeUnavailable, "enrichment is temporarily unavailable")
		span.End(err)
		return "", err
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	out, err := s.generator.Generate(callCtx, p)
	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.ObserveLatency(string(kind), elapsed.Seconds())
	}
	span.SetAttributes(tracer.Duration(tracer.AttrLatencyMs, elapsed))

	if err != nil {
		err = s.failure(ctx, kind, callCtx, err)
		span.End(err)
		return "", err
	}

	s.recordSuccess(ctx)
	span.SetAttributes(tracer.Int64(tracer.AttrOutputChars, int64(len(out))))
	span.End(nil)
	return out, nil
}

func (s *Service) failure(ctx context.Context, kind models.Kind, callCtx context.Context, err error) error {
	// The caller hung up; the upstream is not at fault.
	if errors.Is(ctx.Err(), context.Canceled) {
		s.breaker.Abandon()
		return dErrors.Wrap(err, dErrors.CodeInternal, "enrichment request cancelled")
	}

	s.recordFailure(ctx, err)
	if errors.Is(callCtx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		s.countCall(kind, metrics.OutcomeTimeout)
		s.logger.WarnContext(ctx, "enrichment call timed out", "kind", kind, "timeout", s.timeout)
		return dErrors.Wrap(err, dErrors.CodeTimeout, "enrichment service timed out")
	}
	s.countCall(kind, metrics.OutcomeUpstream)
	s.logger.ErrorContext(ctx, "enrichment call failed", "kind", kind, "error", err)
	return dErrors.Wrap(err, dErrors.CodeUpstreamFailed, "enrichment service failed")
}

func (s *Service) recordFailure(ctx context.Context, err error) {
	if change := s.breaker.RecordFailure(); change.Opened {
		s.logger.ErrorContext(ctx, "circuit breaker opened",
			"circuit", s.breaker.Name(),
			"error", err,
		)
		if s.metrics != nil {
			s.metrics.SetBreakerOpen(true)
		}
	}
}

func (s *Service) recordSuccess(ctx context.Context) {
	if change := s.breaker.RecordSuccess(); change.Closed {
		s.logger.InfoContext(ctx, "circuit breaker closed", "circuit", s.breaker.Name())
		if s.metrics != nil {
			s.metrics.SetBreakerOpen(false)
		}
	}
}

func (s *Service) countCall(kind models.Kind, outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementCalls(string(kind), outcome)
	}
}

// Status reports "not_configured" when no generator is wired, otherwise the
// breaker state.
func (s *Service) Status() string {
	if s.generator == nil {
		return "not_configured"
	}
	return s.breaker.State().String()
}
