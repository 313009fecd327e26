package handler

import (
	"time"

	"riskdesk/internal/risk/models"
	"riskdesk/internal/risk/readmodels"
	"riskdesk/internal/risk/templates"
	"riskdesk/pkg/domain"
)

type AssessmentResponse struct {
	Impact     int          `json:"impact,omitempty"`
	Likelihood int          `json:"likelihood,omitempty"`
	RiskLevel  models.Level `json:"risk_level,omitempty"`
	Display    domain.Badge `json:"display"`
}

type ScenarioResponse struct {
	ID                string              `json:"id"`
	CompanyID         string              `json:"company_id"`
	TemplateID        *string             `json:"template_id"`
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	Scope             models.Scope        `json:"scope,omitempty"`
	Perimeter         *models.Perimeter   `json:"perimeter"`
	Status            models.Status       `json:"status"`
	StatusDisplay     domain.Badge        `json:"status_display"`
	Raw               *AssessmentResponse `json:"raw"`
	Residual          *AssessmentResponse `json:"residual"`
	ImpactDescription string              `json:"impact_description"`
	Threat            string              `json:"threat"`
	Vulnerability     string              `json:"vulnerability"`
	Measures          string              `json:"measures"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type ScenarioListResponse struct {
	Scenarios []*ScenarioResponse `json:"scenarios"`
}

type TemplateGroupsResponse struct {
	Groups []templates.DomainGroup `json:"groups"`
}

type ScaleLevelResponse struct {
	LevelValue  int    `json:"level_value"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type ScaleResponse struct {
	ID          string                `json:"id"`
	ScaleTypeID string                `json:"scale_type_id"`
	Name        string                `json:"name"`
	Category    models.ScaleCategory  `json:"category"`
	IsActive    bool                  `json:"is_active"`
	Levels      []*ScaleLevelResponse `json:"levels"`
}

type ScaleListResponse struct {
	Scales []*ScaleResponse `json:"scales"`
}

type VocabularyEntry struct {
	Value   string       `json:"value"`
	Display domain.Badge `json:"display"`
}

type VocabularyResponse struct {
	Levels     []VocabularyEntry `json:"levels"`
	Statuses   []VocabularyEntry `json:"statuses"`
	Scopes     []string          `json:"scopes"`
	Perimeters []string          `json:"perimeters"`
}

// Response mapping functions - convert domain objects to HTTP DTOs

func toAssessmentResponse(a models.Assessment) *AssessmentResponse {
	return &AssessmentResponse{
		Impact:     a.Impact,
		Likelihood: a.Likelihood,
		RiskLevel:  a.RiskLevel,
		Display:    a.RiskLevel.Display(),
	}
}

func toScenarioResponse(sc *models.RiskScenario) *ScenarioResponse {
	resp := &ScenarioResponse{
		ID:                sc.ID.String(),
		CompanyID:         sc.CompanyID.String(),
		Name:              sc.Name,
		Description:       sc.Description,
		Scope:             sc.Scope,
		Perimeter:         sc.Perimeter,
		Status:            sc.Status,
		StatusDisplay:     sc.Status.Display(),
		Raw:               toAssessmentResponse(sc.Raw),
		Residual:          toAssessmentResponse(sc.Residual),
		ImpactDescription: sc.ImpactDescription,
		Threat:            sc.Threat,
		Vulnerability:     sc.Vulnerability,
		Measures:          sc.Measures,
		CreatedAt:         sc.CreatedAt,
		UpdatedAt:         sc.UpdatedAt,
	}
	if sc.TemplateID != nil {
		id := sc.TemplateID.String()
		resp.TemplateID = &id
	}
	return resp
}

func toScenarioListResponse(list []*models.RiskScenario) *ScenarioListResponse {
	out := make([]*ScenarioResponse, 0, len(list))
	for _, sc := range list {
		out = append(out, toScenarioResponse(sc))
	}
	return &ScenarioListResponse{Scenarios: out}
}

func toScaleListResponse(list []*readmodels.CompanyScale) *ScaleListResponse {
	out := make([]*ScaleResponse, 0, len(list))
	for _, cs := range list {
		resp := &ScaleResponse{
			ID:          cs.Scale.ID.String(),
			ScaleTypeID: cs.Scale.ScaleTypeID.String(),
			IsActive:    cs.Scale.IsActive,
			Levels:      make([]*ScaleLevelResponse, 0, len(cs.Levels)),
		}
		if cs.Scale.Type != nil {
			resp.Name = cs.Scale.Type.Name
			resp.Category = cs.Scale.Type.Category
		}
		for _, l := range cs.Levels {
			resp.Levels = append(resp.Levels, &ScaleLevelResponse{
				LevelValue:  l.LevelValue,
				Name:        l.Name,
				Description: l.Description,
				Color:       l.Color,
			})
		}
		out = append(out, resp)
	}
	return &ScaleListResponse{Scales: out}
}

func vocabulary() *VocabularyResponse {
	resp := &VocabularyResponse{
		Levels:     make([]VocabularyEntry, 0, len(models.Levels)),
		Statuses:   make([]VocabularyEntry, 0, len(models.Statuses)),
		Scopes:     make([]string, 0, len(models.Scopes)),
		Perimeters: make([]string, 0, len(models.Perimeters)),
	}
	for _, l := range models.Levels {
		resp.Levels = append(resp.Levels, VocabularyEntry{Value: string(l), Display: l.Display()})
	}
	for _, st := range models.Statuses {
		resp.Statuses = append(resp.Statuses, VocabularyEntry{Value: string(st), Display: st.Display()})
	}
	for _, sc := range models.Scopes {
		resp.Scopes = append(resp.Scopes, string(sc))
	}
	for _, p := range models.Perimeters {
		resp.Perimeters = append(resp.Perimeters, string(p))
	}
	return resp
}
