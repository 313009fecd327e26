package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"riskdesk/internal/enrichment/models"
	"riskdesk/pkg/platform/httputil"
	"riskdesk/pkg/requestcontext"
)

// EnrichmentService defines the AI calls the handler brokers.
type EnrichmentService interface {
	EnrichCompany(ctx context.Context, req models.CompanyRequest) (*models.CompanyProposal, error)
	DescribeImpact(ctx context.Context, req models.ImpactRequest) (string, error)
}

type Handler struct {
	enrichment EnrichmentService
	logger     *slog.Logger
}

func New(enrichment EnrichmentService, logger *slog.Logger) *Handler {
	return &Handler{enrichment: enrichment, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/enrichment/company", h.HandleEnrichCompany)
	r.Post("/enrichment/impact-description", h.HandleDescribeImpact)
}

// HandleEnrichCompany returns a proposal for the company profile. Nothing is
// persisted; see POST /companies/{id}/enrichment/accept.
func (h *Handler) HandleEnrichCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[EnrichCompanyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	proposal, err := h.enrichment.EnrichCompany(ctx, req.toModel())
	if err != nil {
		h.logger.ErrorContext(ctx, "company enrichment failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toEnrichCompanyResponse(proposal))
}

func (h *Handler) HandleDescribeImpact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[DescribeImpactRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	text, err := h.enrichment.DescribeImpact(ctx, models.ImpactRequest{ScenarioDescription: req.ScenarioDescription})
	if err != nil {
		h.logger.ErrorContext(ctx, "impact description failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &DescribeImpactResponse{ImpactDescription: text})
}
