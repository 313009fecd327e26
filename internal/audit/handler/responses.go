package handler

import (
	"time"

	"riskdesk/internal/audit/models"
	"riskdesk/internal/audit/plan"
	"riskdesk/internal/audit/readmodels"
	"riskdesk/pkg/domain"
	"riskdesk/pkg/validation"
)

type AuditResponse struct {
	ID            string        `json:"id"`
	CompanyID     string        `json:"company_id"`
	FrameworkID   string        `json:"framework_id"`
	Name          string        `json:"name"`
	Status        models.Status `json:"status"`
	StatusDisplay domain.Badge  `json:"status_display"`
	StartDate     *string       `json:"start_date"`
	EndDate       *string       `json:"end_date"`
	Scope         *string       `json:"scope"`
	CreatedBy     *string       `json:"created_by"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type AuditListResponse struct {
	Audits []*AuditResponse `json:"audits"`
}

type AuditUserResponse struct {
	UserID    string      `json:"user_id"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditUsersResponse struct {
	Users []*AuditUserResponse `json:"users"`
}

type ThemeResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	DurationHours *float64 `json:"duration_hours"`
}

type ThemeListResponse struct {
	Themes []*ThemeResponse `json:"themes"`
}

type FrameworkResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

type FrameworkListResponse struct {
	Frameworks []*FrameworkResponse `json:"frameworks"`
}

type FeasibilityResponse struct {
	Summary   plan.Summary  `json:"summary"`
	Shortfall int           `json:"shortfall_days"`
	Schedule  plan.Schedule `json:"schedule"`
}

type StatusEntry struct {
	Value   models.Status `json:"value"`
	Display domain.Badge  `json:"display"`
}

type VocabularyResponse struct {
	Statuses []StatusEntry `json:"statuses"`
	Roles    []models.Role `json:"roles"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(validation.DateLayout)
	return &s
}

func toAuditResponse(a *models.Audit) *AuditResponse {
	resp := &AuditResponse{
		ID:            a.ID.String(),
		CompanyID:     a.CompanyID.String(),
		FrameworkID:   a.FrameworkID.String(),
		Name:          a.Name,
		Status:        a.Status,
		StatusDisplay: a.Status.Display(),
		StartDate:     formatDate(a.StartDate),
		EndDate:       formatDate(a.EndDate),
		Scope:         a.Scope,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if a.CreatedBy != nil {
		id := a.CreatedBy.String()
		resp.CreatedBy = &id
	}
	return resp
}

func toAuditListResponse(list []*models.Audit) *AuditListResponse {
	out := make([]*AuditResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAuditResponse(a))
	}
	return &AuditListResponse{Audits: out}
}

func toAuditUsersResponse(users []*models.AuditUser) *AuditUsersResponse {
	out := make([]*AuditUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, &AuditUserResponse{UserID: u.UserID.String(), Role: u.Role, CreatedAt: u.CreatedAt})
	}
	return &AuditUsersResponse{Users: out}
}

func toThemeResponse(t *models.Theme) *ThemeResponse {
	return &ThemeResponse{
		ID:            t.ID.String(),
		Name:          t.Name,
		Description:   t.Description,
		DurationHours: t.DurationHours,
	}
}

func toThemeListResponse(list []*models.Theme) *ThemeListResponse {
	out := make([]*ThemeResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toThemeResponse(t))
	}
	return &ThemeListResponse{Themes: out}
}

func toFrameworkListResponse(list []*models.Framework) *FrameworkListResponse {
	out := make([]*FrameworkResponse, 0, len(list))
	for _, f := range list {
		out = append(out, &FrameworkResponse{ID: f.ID.String(), Name: f.Name, Version: f.Version})
	}
	return &FrameworkListResponse{Frameworks: out}
}

func toFeasibilityResponse(e *readmodels.PlanEvaluation) *FeasibilityResponse {
	return &FeasibilityResponse{
		Summary:   e.Summary,
		Shortfall: e.Summary.Shortfall(),
		Schedule:  e.Schedule,
	}
}

func vocabulary() *VocabularyResponse {
	resp := &VocabularyResponse{
		Statuses: make([]StatusEntry, 0, len(models.Statuses)),
		Roles:    models.Roles,
	}
	for _, st := range models.Statuses {
		resp.Statuses = append(resp.Statuses, StatusEntry{Value: st, Display: st.Display()})
	}
	return resp
}
