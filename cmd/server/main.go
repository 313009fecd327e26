package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	audithandler "riskdesk/internal/audit/handler"
	auditmetrics "riskdesk/internal/audit/metrics"
	"riskdesk/internal/audit/plan"
	auditservice "riskdesk/internal/audit/service"
	companyhandler "riskdesk/internal/company/handler"
	companymetrics "riskdesk/internal/company/metrics"
	companyservice "riskdesk/internal/company/service"
	"riskdesk/internal/enrichment/generator"
	enrichmenthandler "riskdesk/internal/enrichment/handler"
	enrichmentmetrics "riskdesk/internal/enrichment/metrics"
	enrichmentservice "riskdesk/internal/enrichment/service"
	"riskdesk/internal/enrichment/tracer"
	"riskdesk/internal/platform/authctx"
	"riskdesk/internal/platform/config"
	"riskdesk/internal/platform/database"
	"riskdesk/internal/platform/health"
	"riskdesk/internal/platform/logger"
	riskhandler "riskdesk/internal/risk/handler"
	riskmetrics "riskdesk/internal/risk/metrics"
	"riskdesk/internal/risk/scales"
	riskservice "riskdesk/internal/risk/service"
	httptransport "riskdesk/internal/transport/http"
	"riskdesk/pkg/platform/circuit"
	"riskdesk/pkg/platform/middleware/request"
)

const templateCacheSize = 16

// main wires the stores, services and handlers, then runs the HTTP server
// until SIGINT or SIGTERM. Business logic lives in the internal packages.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "riskdesk:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("initializing riskdesk",
		"addr", cfg.Server.Addr,
		"env", cfg.Env,
		"database", cfg.Database.URL != "",
		"auth", cfg.Auth.Enabled(),
		"enrichment", cfg.GenAI.APIKey != "",
	)

	pool, err := database.New(ctx, database.ServerConfig(cfg.Database.URL, cfg.Database.MaxConns))
	if err != nil {
		return err
	}
	healthHandler := health.New(cfg.Env)
	if pool != nil {
		defer pool.Close() //nolint:errcheck // process is exiting
		if err := database.Migrate(ctx, pool.DB()); err != nil {
			return err
		}
		healthHandler.RegisterCheck("database", pool.Health)
		healthHandler.RegisterComponent("storage", func() string { return "postgres" })
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		healthHandler.RegisterComponent("storage", func() string { return "memory" })
	}
	st := newStores(dbOf(pool))

	auth, err := newAuth(cfg.Auth, log)
	if err != nil {
		return err
	}
	if auth != nil {
		defer auth.Close()
	}

	enrichment, err := newEnrichment(ctx, cfg.GenAI, log)
	if err != nil {
		return err
	}
	healthHandler.RegisterComponent("enrichment", enrichment.Status)

	auditMetrics := auditmetrics.New()
	planSettings := plan.DefaultSettings()
	planSettings.AvailableHoursPerDay = cfg.Plan.AvailableHoursPerDay
	planSettings.OpeningClosingHours = cfg.Plan.OpeningClosingHours
	planSettings.DefaultThemeHours = cfg.Plan.DefaultThemeHours
	auditOpts := []auditservice.Option{
		auditservice.WithLogger(log),
		auditservice.WithMetrics(auditMetrics),
		auditservice.WithCompanyChecker(st.companies),
		auditservice.WithPlanSettings(planSettings),
	}
	audits := auditservice.NewAuditService(st.audits, st.frameworks, auditOpts...)
	catalogue := auditservice.NewCatalogueService(st.themes, st.frameworks, auditOpts...)
	plans := auditservice.NewPlanService(st.themes, auditOpts...)

	riskMetrics := riskmetrics.New()
	riskOpts := []riskservice.Option{
		riskservice.WithLogger(log),
		riskservice.WithMetrics(riskMetrics),
		riskservice.WithCompanyChecker(st.companies),
		riskservice.WithTemplateCache(cfg.Templates.CacheTTL, templateCacheSize),
		riskservice.WithLocale(cfg.Templates.Locale),
	}
	seeder := scales.New(st.scales, scales.WithLogger(log), scales.WithMetrics(riskMetrics))
	scenarios := riskservice.NewScenarioService(st.scenarios, st.templates, riskOpts...)
	templateService := riskservice.NewTemplateService(st.templates, riskOpts...)
	scaleService := riskservice.NewScaleService(seeder, st.scales, riskOpts...)

	companies := companyservice.NewCompanyService(st.companies,
		companyservice.WithLogger(log),
		companyservice.WithMetrics(companymetrics.New()),
		companyservice.WithOverviewSources(st.audits, st.scenarios, st.scales),
	)

	if _, err := seeder.EnsureGlobalTemplates(ctx); err != nil {
		log.Error("seeding risk scale templates failed", "error", err)
	}

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:         log,
		Metrics:        request.NewMetrics(),
		Auth:           httptransport.AuthMiddleware(auth, log),
		RequestTimeout: cfg.GenAI.Timeout + 10*time.Second,
		Probes:         []httptransport.Registrar{healthHandler},
		API: []httptransport.Registrar{
			companyhandler.New(companies, log),
			audithandler.New(audits, catalogue, plans, log),
			riskhandler.New(scenarios, templateService, scaleService, log),
			enrichmenthandler.New(enrichment, log),
		},
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

func newAuth(cfg config.Auth, log *slog.Logger) (*authctx.Provider, error) {
	if !cfg.Enabled() {
		log.Warn("AUTH_JWT_SECRET not set, every request runs as the development user")
		return nil, nil
	}
	provider, err := authctx.New(authctx.Config{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
	})
	if err != nil {
		return nil, err
	}
	provider.Subscribe(authctx.NewMetrics().Observe)
	return provider, nil
}

// newEnrichment returns a service that answers unavailable when no API key is set.
func newEnrichment(ctx context.Context, cfg config.GenAI, log *slog.Logger) (*enrichmentservice.Service, error) {
	opts := []enrichmentservice.Option{
		enrichmentservice.WithLogger(log),
		enrichmentservice.WithMetrics(enrichmentmetrics.New()),
		enrichmentservice.WithTracer(tracer.NewOTel()),
		enrichmentservice.WithBreaker(circuit.New("enrichment",
			circuit.WithFailureThreshold(3),
			circuit.WithCooldown(time.Minute),
		)),
		enrichmentservice.WithTimeout(cfg.Timeout),
		enrichmentservice.WithModel(cfg.Model),
	}
	if cfg.APIKey == "" {
		log.Warn("GENAI_API_KEY not set, enrichment endpoints will answer 503")
		return enrichmentservice.New(nil, opts...), nil
	}
	gen, err := generator.NewGenAI(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, err
	}
	return enrichmentservice.New(gen, opts...), nil
}
