package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"riskdesk/internal/enrichment/generator"
	"riskdesk/internal/enrichment/models"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/platform/circuit"
)

type fakeGenerator struct {
	mu      sync.Mutex
	prompts []generator.Prompt
	answer  func(ctx context.Context, p generator.Prompt) (string, error)
}

func (f *fakeGenerator) Generate(ctx context.Context, p generator.Prompt) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, p)
	f.mu.Unlock()
	return f.answer(ctx, p)
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func answering(out string) func(context.Context, generator.Prompt) (string, error) {
	return func(context.Context, generator.Prompt) (string, error) { return out, nil }
}

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	gen     *fakeGenerator
	breaker *circuit.Breaker
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.gen = &fakeGenerator{answer: answering(`{}`)}
	s.breaker = circuit.New("enrichment-test", circuit.WithFailureThreshold(2), circuit.WithCooldown(time.Hour))
	s.service = New(s.gen,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithBreaker(s.breaker),
		WithTimeout(50*time.Millisecond),
	)
}

func (s *ServiceSuite) companyRequest() models.CompanyRequest {
	return models.CompanyRequest{
		CompanyID:   domain.CompanyID(uuid.New()),
		CompanyName: " Acme Freight ",
		Description: "Road haulage across Europe",
	}
}

func (s *ServiceSuite) TestEnrichCompany() {
	s.Run("returns the coerced proposal", func() {
		s.gen.answer = answering("```json\n{\"activity\":\"Freight\",\"creationYear\":\"1962\",\"parentCompany\":null,\"marketScope\":\"european\"}\n```")

		p, err := s.service.EnrichCompany(s.ctx, s.companyRequest())

		s.Require().NoError(err)
		s.Equal("Freight", p.Activity)
		s.Require().NotNil(p.CreationYear)
		s.Equal(1962, *p.CreationYear)
		s.Empty(p.ParentCompany)
		s.Equal("european", p.MarketScope)

		last := s.gen.prompts[len(s.gen.prompts)-1]
		s.Equal(generator.FormatJSON, last.Format)
		s.Contains(last.User, "Company name: Acme Freight\n")
		s.Contains(last.User, "Road haulage across Europe")
	})

	s.Run("unparseable year is null", func() {
		s.gen.answer = answering(`{"creationYear":"abc"}`)

		p, err := s.service.EnrichCompany(s.ctx, s.companyRequest())

		s.Require().NoError(err)
		s.Nil(p.CreationYear)
	})

	s.Run("output without an object is an upstream failure", func() {
		s.gen.answer = answering("Sorry, I do not know this company.")

		_, err := s.service.EnrichCompany(s.ctx, s.companyRequest())

		s.True(dErrors.HasCode(err, dErrors.CodeUpstreamFailed))
		s.Equal("enrichment service returned invalid JSON", err.Error())
		s.Equal(circuit.StateClosed, s.breaker.State(), "bad output does not trip the breaker")
	})

	s.Run("name is required before any call", func() {
		before := s.gen.calls()

		_, err := s.service.EnrichCompany(s.ctx, models.CompanyRequest{CompanyName: "   "})

		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal(before, s.gen.calls())
	})
}

func (s *ServiceSuite) TestDescribeImpact() {
	s.Run("asks for a bounded text answer", func() {
		s.gen.answer = answering("  Customer records would be exposed.\n")

		got, err := s.service.DescribeImpact(s.ctx, models.ImpactRequest{ScenarioDescription: "Phishing of finance staff"})

		s.Require().NoError(err)
		s.Equal("Customer records would be exposed.", got)
		last := s.gen.prompts[len(s.gen.prompts)-1]
		s.Equal(generator.FormatText, last.Format)
		s.Contains(last.System, "at most 150 words")
		s.True(strings.HasSuffix(last.User, "Phishing of finance staff"))
	})

	s.Run("empty answer", func() {
		s.gen.answer = answering("   ")

		_, err := s.service.DescribeImpact(s.ctx, models.ImpactRequest{ScenarioDescription: "Flood"})

		s.True(dErrors.HasCode(err, dErrors.CodeUpstreamFailed))
	})

	s.Run("description is required", func() {
		_, err := s.service.DescribeImpact(s.ctx, models.ImpactRequest{})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestUpstreamFailures() {
	s.Run("errors map to upstream_failed and open the breaker", func() {
		s.gen.answer = func(context.Context, generator.Prompt) (string, error) {
			return "", errors.New("503 from model")
		}

		for range 2 {
			_, err := s.service.DescribeImpact(s.ctx, models.ImpactRequest{ScenarioDescription: "Flood"})
			s.True(dErrors.HasCode(err, dErrors.CodeUpstreamFailed))
		}
		s.Equal(circuit.StateOpen, s.breaker.State())

		calls := s.gen.calls()
		_, err := s.service.EnrichCompany(s.ctx, s.companyRequest())
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
		s.Equal(calls, s.gen.calls(), "open breaker short-circuits")
		s.Equal("open", s.service.Status())
	})
}

func (s *ServiceSuite) TestTimeout() {
	s.gen.answer = func(ctx context.Context, _ generator.Prompt) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}

	_, err := s.service.DescribeImpact(s.ctx, models.ImpactRequest{ScenarioDescription: "Flood"})

	s.True(dErrors.HasCode(err, dErrors.CodeTimeout))
}

func (s *ServiceSuite) TestCallerCancelDoesNotCount() {
	ctx, cancel := context.WithCancel(s.ctx)
	s.gen.answer = func(context.Context, generator.Prompt) (string, error) {
		cancel()
		return "", context.Canceled
	}

	for range 3 {
		_, err := s.service.DescribeImpact(ctx, models.ImpactRequest{ScenarioDescription: "Flood"})
		s.Error(err)
	}

	s.Equal(circuit.StateClosed, s.breaker.State())
}

func (s *ServiceSuite) TestNotConfigured() {
	svc := New(nil)

	_, err := svc.EnrichCompany(s.ctx, s.companyRequest())
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))

	_, err = svc.DescribeImpact(s.ctx, models.ImpactRequest{ScenarioDescription: "Flood"})
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	s.Equal("not_configured", svc.Status())
	s.Equal("closed", s.service.Status())
}
