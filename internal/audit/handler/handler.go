package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"riskdesk/internal/audit/fieldmap"
	"riskdesk/internal/audit/models"
	"riskdesk/internal/audit/readmodels"
	"riskdesk/internal/audit/service"
	"riskdesk/internal/platform/authctx"
	"riskdesk/pkg/domain"
	"riskdesk/pkg/platform/httputil"
	"riskdesk/pkg/requestcontext"
)

// AuditService defines the audit lifecycle operations.
type AuditService interface {
	Create(ctx context.Context, cmd service.CreateAuditCommand) (*models.Audit, error)
	Get(ctx context.Context, id domain.AuditID) (*models.Audit, error)
	ListByCompany(ctx context.Context, companyID domain.CompanyID) ([]*models.Audit, error)
	Update(ctx context.Context, id domain.AuditID, patch fieldmap.Patch) (*models.Audit, error)
	Delete(ctx context.Context, id domain.AuditID) error
	AssignUsers(ctx context.Context, auditID domain.AuditID, assignments []service.Assignment) ([]*models.AuditUser, error)
	ListUsers(ctx context.Context, auditID domain.AuditID) ([]*models.AuditUser, error)
}

type CatalogueService interface {
	ListThemes(ctx context.Context) ([]*models.Theme, error)
	CreateTheme(ctx context.Context, name, description string, durationHours *float64) (*models.Theme, error)
	ListFrameworks(ctx context.Context) ([]*models.Framework, error)
}

type PlanService interface {
	Evaluate(ctx context.Context, days []time.Time, themeIDs []domain.ThemeID) (*readmodels.PlanEvaluation, error)
}

type Handler struct {
	audits    AuditService
	catalogue CatalogueService
	plans     PlanService
	logger    *slog.Logger
}

func New(audits AuditService, catalogue CatalogueService, plans PlanService, logger *slog.Logger) *Handler {
	return &Handler{audits: audits, catalogue: catalogue, plans: plans, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/audit-vocabulary", h.HandleVocabulary)
	r.Get("/frameworks", h.HandleListFrameworks)
	r.Get("/audit-themes", h.HandleListThemes)
	r.Post("/audit-themes", h.HandleCreateTheme)
	r.Post("/audit-plans/feasibility", h.HandleFeasibility)

	r.Get("/companies/{companyID}/audits", h.HandleListAudits)
	r.Post("/companies/{companyID}/audits", h.HandleCreateAudit)
	r.Get("/audits/{id}", h.HandleGetAudit)
	r.Patch("/audits/{id}", h.HandleUpdateAudit)
	r.Delete("/audits/{id}", h.HandleDeleteAudit)
	r.Get("/audits/{id}/users", h.HandleListUsers)
	r.Post("/audits/{id}/users", h.HandleAssignUsers)
}

func (h *Handler) HandleVocabulary(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, vocabulary())
}

func (h *Handler) HandleListFrameworks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.catalogue.ListFrameworks(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list frameworks failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toFrameworkListResponse(list))
}

func (h *Handler) HandleListThemes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.catalogue.ListThemes(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list audit themes failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toThemeListResponse(list))
}

func (h *Handler) HandleCreateTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[CreateThemeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	theme, err := h.catalogue.CreateTheme(ctx, req.Name, req.Description, req.DurationHours)
	if err != nil {
		h.logger.ErrorContext(ctx, "create audit theme failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toThemeResponse(theme))
}

// HandleFeasibility evaluates a plan without storing anything.
func (h *Handler) HandleFeasibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[FeasibilityRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	eval, err := h.plans.Evaluate(ctx, req.days, req.themeIDs)
	if err != nil {
		h.logger.ErrorContext(ctx, "evaluate audit plan failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toFeasibilityResponse(eval))
}

func (h *Handler) HandleListAudits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	companyID, ok := httputil.PathID(w, r, "companyID", domain.ParseCompanyID)
	if !ok {
		return
	}

	list, err := h.audits.ListByCompany(ctx, companyID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list audits failed", "error", err, "request_id", requestID, "company_id", companyID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toAuditListResponse(list))
}

func (h *Handler) HandleCreateAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	companyID, ok := httputil.PathID(w, r, "companyID", domain.ParseCompanyID)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[CreateAuditRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	cmd := req.toCommand(companyID)
	if userID := authctx.UserID(ctx); !userID.IsNil() {
		cmd.CreatedBy = &userID
	}
	audit, err := h.audits.Create(ctx, cmd)
	if err != nil {
		h.logger.ErrorContext(ctx, "create audit failed", "error", err, "request_id", requestID, "company_id", companyID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toAuditResponse(audit))
}

func (h *Handler) HandleGetAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	auditID, ok := httputil.PathID(w, r, "id", domain.ParseAuditID)
	if !ok {
		return
	}

	audit, err := h.audits.Get(ctx, auditID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get audit failed", "error", err, "request_id", requestID, "audit_id", auditID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toAuditResponse(audit))
}

// HandleUpdateAudit applies a partial update. An empty or null date clears it.
func (h *Handler) HandleUpdateAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	auditID, ok := httputil.PathID(w, r, "id", domain.ParseAuditID)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateAuditRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	audit, err := h.audits.Update(ctx, auditID, req.Patch)
	if err != nil {
		h.logger.ErrorContext(ctx, "update audit failed", "error", err, "request_id", requestID, "audit_id", auditID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toAuditResponse(audit))
}

func (h *Handler) HandleDeleteAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	auditID, ok := httputil.PathID(w, r, "id", domain.ParseAuditID)
	if !ok {
		return
	}

	if err := h.audits.Delete(ctx, auditID); err != nil {
		h.logger.ErrorContext(ctx, "delete audit failed", "error", err, "request_id", requestID, "audit_id", auditID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *Handler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	auditID, ok := httputil.PathID(w, r, "id", domain.ParseAuditID)
	if !ok {
		return
	}

	users, err := h.audits.ListUsers(ctx, auditID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list audit users failed", "error", err, "request_id", requestID, "audit_id", auditID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toAuditUsersResponse(users))
}

func (h *Handler) HandleAssignUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	auditID, ok := httputil.PathID(w, r, "id", domain.ParseAuditID)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AssignUsersRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	users, err := h.audits.AssignUsers(ctx, auditID, req.assignments)
	if err != nil {
		h.logger.ErrorContext(ctx, "assign audit users failed", "error", err, "request_id", requestID, "audit_id", auditID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toAuditUsersResponse(users))
}
