package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"riskdesk/internal/risk/models"
	"riskdesk/internal/risk/readmodels"
	"riskdesk/internal/risk/scales"
	"riskdesk/internal/risk/scenario/fieldmap"
	"riskdesk/internal/risk/service"
	"riskdesk/internal/risk/templates"
	"riskdesk/pkg/domain"
	"riskdesk/pkg/platform/httputil"
	"riskdesk/pkg/requestcontext"
)

// ScenarioService defines the risk register operations.
// Returns domain objects, not HTTP response DTOs.
type ScenarioService interface {
	Create(ctx context.Context, cmd service.CreateScenarioCommand) (*models.RiskScenario, error)
	CreateFromTemplate(ctx context.Context, companyID domain.CompanyID, templateID domain.TemplateID, name string) (*models.RiskScenario, error)
	Get(ctx context.Context, id domain.ScenarioID) (*models.RiskScenario, error)
	ListByCompany(ctx context.Context, companyID domain.CompanyID) ([]*models.RiskScenario, error)
	Update(ctx context.Context, id domain.ScenarioID, patch fieldmap.Patch) (*models.RiskScenario, error)
	Delete(ctx context.Context, id domain.ScenarioID) error
}

type TemplateService interface {
	Search(ctx context.Context, term string) ([]templates.DomainGroup, error)
	Get(ctx context.Context, id domain.TemplateID) (*models.Template, error)
}

type ScaleService interface {
	Seed(ctx context.Context, companyID domain.CompanyID) (*scales.SeedReport, error)
	List(ctx context.Context, companyID domain.CompanyID) ([]*readmodels.CompanyScale, error)
}

type Handler struct {
	scenarios ScenarioService
	templates TemplateService
	scales    ScaleService
	logger    *slog.Logger
}

func New(scenarios ScenarioService, templates TemplateService, scales ScaleService, logger *slog.Logger) *Handler {
	return &Handler{scenarios: scenarios, templates: templates, scales: scales, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/risk-vocabulary", h.HandleVocabulary)
	r.Get("/risk-scenario-templates", h.HandleSearchTemplates)
	r.Get("/risk-scenario-templates/{id}", h.HandleGetTemplate)

	r.Get("/companies/{companyID}/risk-scenarios", h.HandleListScenarios)
	r.Post("/companies/{companyID}/risk-scenarios", h.HandleCreateScenario)
	r.Post("/companies/{companyID}/risk-scenarios/from-template", h.HandleCreateFromTemplate)
	r.Get("/risk-scenarios/{id}", h.HandleGetScenario)
	r.Patch("/risk-scenarios/{id}", h.HandleUpdateScenario)
	r.Delete("/risk-scenarios/{id}", h.HandleDeleteScenario)

	r.Get("/companies/{companyID}/risk-scales", h.HandleListScales)
	r.Post("/companies/{companyID}/risk-scales/seed", h.HandleSeedScales)
}

// HandleVocabulary returns every enumeration with its display badge.
func (h *Handler) HandleVocabulary(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, vocabulary())
}

// HandleSearchTemplates groups the template catalogue by domain, filtered by ?search=.
func (h *Handler) HandleSearchTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	groups, err := h.templates.Search(ctx, r.URL.Query().Get("search"))
	if err != nil {
		h.logger.ErrorContext(ctx, "search scenario templates failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &TemplateGroupsResponse{Groups: groups})
}

func (h *Handler) HandleGetTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	templateID, ok := httputil.PathID(w, r, "id", domain.ParseTemplateID)
	if !ok {
		return
	}

	t, err := h.templates.Get(ctx, templateID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get scenario template failed", "error", err, "request_id", requestID, "template_id", templateID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) HandleListScenarios(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	companyID, ok := httputil.PathID(w, r, "companyID", domain.ParseCompanyID)
	if !ok {
		return
	}

	list, err := h.scenarios.ListByCompany(ctx, companyID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list risk scenarios failed", "error", err, "request_id", requestID, "company_id", companyID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toScenarioListResponse(list))
}

func (h *Handler) HandleCreateScenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	companyID, ok := httputil.PathID(w, r, "companyID", domain.ParseCompanyID)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[CreateScenarioRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	scenario, err := h.scenarios.Create(ctx, req.toCommand(companyID))
	if err != nil {
		h.logger.ErrorContext(ctx, "create risk scenario failed", "error", err, "request_id", requestID, "company_id", companyID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toScenarioResponse(scenario))
}

func (h *Handler) HandleCreateFromTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	companyID, ok := httputil.PathID(w, r, "companyID", domain.ParseCompanyID)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[CreateFromTemplateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	scenario, err := h.scenarios.CreateFromTemplate(ctx, companyID, req.templateID, req.Name)
	if err != nil {
		h.logger.ErrorContext(ctx, "create risk scenario from template failed", "error", err, "request_id", requestID, "company_id", companyID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toScenarioResponse(scenario))
}

func (h *Handler) HandleGetScenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	scenarioID, ok := httputil.PathID(w, r, "id", domain.ParseScenarioID)
	if !ok {
		return
	}

	scenario, err := h.scenarios.Get(ctx, scenarioID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get risk scenario failed", "error", err, "request_id", requestID, "scenario_id", scenarioID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toScenarioResponse(scenario))
}

// HandleUpdateScenario applies a partial update. Omitted fields are left
// alone; null clears a field.
func (h *Handler) HandleUpdateScenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	scenarioID, ok := httputil.PathID(w, r, "id", domain.ParseScenarioID)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateScenarioRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	scenario, err := h.scenarios.Update(ctx, scenarioID, req.Patch)
	if err != nil {
		h.logger.ErrorContext(ctx, "update risk scenario failed", "error", err, "request_id", requestID, "scenario_id", scenarioID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toScenarioResponse(scenario))
}

func (h *Handler) HandleDeleteScenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	scenarioID, ok := httputil.PathID(w, r, "id", domain.ParseScenarioID)
	if !ok {
		return
	}

	if err := h.scenarios.Delete(ctx, scenarioID); err != nil {
		h.logger.ErrorContext(ctx, "delete risk scenario failed", "error", err, "request_id", requestID, "scenario_id", scenarioID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *Handler) HandleListScales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	companyID, ok := httputil.PathID(w, r, "companyID", domain.ParseCompanyID)
	if !ok {
		return
	}

	list, err := h.scales.List(ctx, companyID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list risk scales failed", "error", err, "request_id", requestID, "company_id", companyID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toScaleListResponse(list))
}

// HandleSeedScales clones the missing scale templates into the company.
// Partial failures still answer 200; the report lists them.
func (h *Handler) HandleSeedScales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	companyID, ok := httputil.PathID(w, r, "companyID", domain.ParseCompanyID)
	if !ok {
		return
	}

	report, err := h.scales.Seed(ctx, companyID)
	if err != nil {
		h.logger.ErrorContext(ctx, "seed risk scales failed", "error", err, "request_id", requestID, "company_id", companyID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}
