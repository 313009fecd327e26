package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"riskdesk/internal/company/fieldmap"
	"riskdesk/internal/company/models"
	"riskdesk/internal/company/readmodels"
	"riskdesk/internal/company/service"
	"riskdesk/pkg/domain"
	"riskdesk/pkg/platform/httputil"
	"riskdesk/pkg/requestcontext"
)

// CompanyService defines the company operations the handler needs.
type CompanyService interface {
	Create(ctx context.Context, cmd service.CreateCompanyCommand) (*models.Company, error)
	Get(ctx context.Context, id domain.CompanyID) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
	Update(ctx context.Context, id domain.CompanyID, patch fieldmap.Patch) (*models.Company, error)
	ApplyEnrichment(ctx context.Context, id domain.CompanyID, e service.Enrichment) (*models.Company, error)
	Overview(ctx context.Context, id domain.CompanyID) (*readmodels.Overview, error)
}

type Handler struct {
	companies CompanyService
	logger    *slog.Logger
}

func New(companies CompanyService, logger *slog.Logger) *Handler {
	return &Handler{companies: companies, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/companies", h.HandleList)
	r.Post("/companies", h.HandleCreate)
	r.Get("/companies/{id}", h.HandleGet)
	r.Patch("/companies/{id}", h.HandleUpdate)
	r.Get("/companies/{id}/overview", h.HandleOverview)
	r.Post("/companies/{id}/enrichment/accept", h.HandleAcceptEnrichment)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.companies.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list companies failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCompanyListResponse(list))
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[CreateCompanyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	c, err := h.companies.Create(ctx, req.toCommand())
	if err != nil {
		h.logger.ErrorContext(ctx, "create company failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toCompanyResponse(c))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	companyID, ok := httputil.PathID(w, r, "id", domain.ParseCompanyID)
	if !ok {
		return
	}

	c, err := h.companies.Get(ctx, companyID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get company failed", "error", err, "request_id", requestID, "company_id", companyID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCompanyResponse(c))
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	companyID, ok := httputil.PathID(w, r, "id", domain.ParseCompanyID)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateCompanyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	c, err := h.companies.Update(ctx, companyID, req.Patch)
	if err != nil {
		h.logger.ErrorContext(ctx, "update company failed", "error", err, "request_id", requestID, "company_id", companyID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCompanyResponse(c))
}

func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	companyID, ok := httputil.PathID(w, r, "id", domain.ParseCompanyID)
	if !ok {
		return
	}

	o, err := h.companies.Overview(ctx, companyID)
	if err != nil {
		h.logger.ErrorContext(ctx, "company overview failed", "error", err, "request_id", requestID, "company_id", companyID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toOverviewResponse(o))
}

// HandleAcceptEnrichment stores the fields of an enrichment proposal the
// user kept. The body uses the same keys as the enrichment response data.
func (h *Handler) HandleAcceptEnrichment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	companyID, ok := httputil.PathID(w, r, "id", domain.ParseCompanyID)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AcceptEnrichmentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	c, err := h.companies.ApplyEnrichment(ctx, companyID, req.toEnrichment())
	if err != nil {
		h.logger.ErrorContext(ctx, "accept company enrichment failed", "error", err, "request_id", requestID, "company_id", companyID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCompanyResponse(c))
}
