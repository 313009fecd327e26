package models

import (
	"time"
	"unicode/utf8"

	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
)

type Status string

const (
	StatusIdentified Status = "identified"
	StatusAnalyzed   Status = "analyzed"
	StatusTreated    Status = "treated"
	StatusAccepted   Status = "accepted"
	StatusMonitored  Status = "monitored"
)

var Statuses = []Status{StatusIdentified, StatusAnalyzed, StatusTreated, StatusAccepted, StatusMonitored}

var statusBadges = map[Status]domain.Badge{
	StatusIdentified: {Label: "Identified", Variant: "blue"},
	StatusAnalyzed:   {Label: "Analyzed", Variant: "purple"},
	StatusTreated:    {Label: "Treated", Variant: "green"},
	StatusAccepted:   {Label: "Accepted", Variant: "yellow"},
	StatusMonitored:  {Label: "Monitored", Variant: "gray"},
}

func (s Status) IsValid() bool {
	_, ok := statusBadges[s]
	return ok
}

func (s Status) Display() domain.Badge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return domain.UnknownBadge
}

// Scope classifies the nature of the risk.
type Scope string

const (
	ScopeTechnical      Scope = "technical"
	ScopeOrganizational Scope = "organizational"
	ScopeHuman          Scope = "human"
	ScopePhysical       Scope = "physical"
	ScopeEnvironmental  Scope = "environmental"
)

var Scopes = []Scope{ScopeTechnical, ScopeOrganizational, ScopeHuman, ScopePhysical, ScopeEnvironmental}

func (s Scope) IsValid() bool {
	for _, v := range Scopes {
		if v == s {
			return true
		}
	}
	return false
}

// Perimeter locates the risk in the organisation. It is independent of Scope
// and optional.
type Perimeter string

const (
	PerimeterOrganization Perimeter = "organization"
	PerimeterSystem       Perimeter = "system"
	PerimeterService      Perimeter = "service"
	PerimeterProcess      Perimeter = "process"
)

var Perimeters = []Perimeter{PerimeterOrganization, PerimeterSystem, PerimeterService, PerimeterProcess}

func (p Perimeter) IsValid() bool {
	for _, v := range Perimeters {
		if v == p {
			return true
		}
	}
	return false
}

// Assessment is one (impact, likelihood, level) triad. Zero ratings mean "not rated yet".
type Assessment struct {
	Impact     int   `json:"impact"`
	Likelihood int   `json:"likelihood"`
	RiskLevel  Level `json:"risk_level"`
}

// Normalize derives a missing level from the ratings.
func (a *Assessment) Normalize() {
	if a.RiskLevel != "" {
		return
	}
	if lvl, ok := LevelFromScore(a.Impact, a.Likelihood); ok {
		a.RiskLevel = lvl
	}
}

func (a Assessment) validate(label string) error {
	if a.Impact != 0 && (a.Impact < 1 || a.Impact > 4) {
		return dErrors.New(dErrors.CodeValidation, label+" impact must be between 1 and 4")
	}
	if a.Likelihood != 0 && (a.Likelihood < 1 || a.Likelihood > 4) {
		return dErrors.New(dErrors.CodeValidation, label+" likelihood must be between 1 and 4")
	}
	if a.RiskLevel != "" && !a.RiskLevel.IsValid() {
		return dErrors.New(dErrors.CodeValidation, label+" risk level is invalid")
	}
	return nil
}

type RiskScenario struct {
	ID                domain.ScenarioID
	CompanyID         domain.CompanyID
	TemplateID        *domain.TemplateID
	Name              string
	Description       string
	Scope             Scope
	Perimeter         *Perimeter
	Status            Status
	Raw               Assessment
	Residual          Assessment
	ImpactDescription string
	Threat            string
	Vulnerability     string
	Measures          string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate checks the invariants every stored scenario must satisfy.
func (s *RiskScenario) Validate() error {
	if s.CompanyID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "company_id is required")
	}
	if s.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if utf8.RuneCountInString(s.Name) > 200 {
		return dErrors.New(dErrors.CodeValidation, "name must be at most 200 characters")
	}
	if s.Scope != "" && !s.Scope.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "scope is invalid")
	}
	if s.Perimeter != nil && !s.Perimeter.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "perimeter is invalid")
	}
	if !s.Status.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "status is invalid")
	}
	if err := s.Raw.validate("raw"); err != nil {
		return err
	}
	return s.Residual.validate("residual")
}
