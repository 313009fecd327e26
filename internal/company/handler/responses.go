package handler

import (
	"time"

	auditmodels "riskdesk/internal/audit/models"
	"riskdesk/internal/company/models"
	"riskdesk/internal/company/readmodels"
	riskmodels "riskdesk/internal/risk/models"
	"riskdesk/pkg/domain"
	"riskdesk/pkg/validation"
)

type CompanyResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Activity      string    `json:"activity"`
	CreationYear  *int      `json:"creation_year"`
	ParentCompany string    `json:"parent_company"`
	MarketScope   string    `json:"market_scope"`
	LastAuditDate *string   `json:"last_audit_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CompanyListResponse struct {
	Companies []*CompanyResponse `json:"companies"`
}

type AuditSummary struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Status        auditmodels.Status `json:"status"`
	StatusDisplay domain.Badge       `json:"status_display"`
	StartDate     *string            `json:"start_date"`
	EndDate       *string            `json:"end_date"`
}

type ScenarioSummary struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	RiskLevel    riskmodels.Level `json:"risk_level"`
	LevelDisplay domain.Badge     `json:"risk_level_display"`
}

type OverviewResponse struct {
	Company            *CompanyResponse   `json:"company"`
	Audits             []*AuditSummary    `json:"audits"`
	OpenAudits         int                `json:"open_audits"`
	Scenarios          []*ScenarioSummary `json:"risk_scenarios"`
	ScenariosByLevel   map[string]int     `json:"risk_scenarios_by_level"`
	ScaleCount         int                `json:"risk_scale_count"`
	ScaleSetupComplete bool               `json:"risk_scale_setup_complete"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(validation.DateLayout)
	return &s
}

func toCompanyResponse(c *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   c.Description,
		Activity:      c.Activity,
		CreationYear:  c.CreationYear,
		ParentCompany: c.ParentCompany,
		MarketScope:   c.MarketScope,
		LastAuditDate: formatDate(c.LastAuditDate),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toCompanyListResponse(list []*models.Company) *CompanyListResponse {
	resp := &CompanyListResponse{Companies: make([]*CompanyResponse, 0, len(list))}
	for _, c := range list {
		resp.Companies = append(resp.Companies, toCompanyResponse(c))
	}
	return resp
}

func toOverviewResponse(o *readmodels.Overview) *OverviewResponse {
	resp := &OverviewResponse{
		Company:            toCompanyResponse(o.Company),
		Audits:             make([]*AuditSummary, 0, len(o.Audits)),
		OpenAudits:         o.OpenAudits,
		Scenarios:          make([]*ScenarioSummary, 0, len(o.Scenarios)),
		ScenariosByLevel:   make(map[string]int, len(o.ScenariosByLevel)),
		ScaleCount:         o.ScaleCount,
		ScaleSetupComplete: o.ScaleSetupComplete(),
	}
	for _, a := range o.Audits {
		resp.Audits = append(resp.Audits, &AuditSummary{
			ID:            a.ID.String(),
			Name:          a.Name,
			Status:        a.Status,
			StatusDisplay: a.Status.Display(),
			StartDate:     formatDate(a.StartDate),
			EndDate:       formatDate(a.EndDate),
		})
	}
	for _, s := range o.Scenarios {
		resp.Scenarios = append(resp.Scenarios, &ScenarioSummary{
			ID:           s.ID.String(),
			Name:         s.Name,
			RiskLevel:    s.Raw.RiskLevel,
			LevelDisplay: s.Raw.RiskLevel.Display(),
		})
	}
	for level, n := range o.ScenariosByLevel {
		resp.ScenariosByLevel[string(level)] = n
	}
	return resp
}
