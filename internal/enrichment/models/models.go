package models

import "riskdesk/pkg/domain"

// Kind names an enrichment call for metrics and traces.
type Kind string

const (
	KindCompany           Kind = "company"
	KindImpactDescription Kind = "impact_description"
)

// MaxImpactWords bounds the impact description the model is asked to write.
const MaxImpactWords = 150

// CompanyRequest is what the model gets to go on when profiling a company.
type CompanyRequest struct {
	CompanyID   domain.CompanyID
	CompanyName string
	Description string
}

// CompanyProposal is the model's suggestion for the company profile fields.
// Nothing is stored until the user accepts it. Empty strings and a nil
// CreationYear mean the model did not know.
type CompanyProposal struct {
	Activity      string
	CreationYear  *int
	ParentCompany string
	MarketScope   string
}

// ImpactRequest asks for a narrative of the consequences of a risk scenario.
type ImpactRequest struct {
	ScenarioDescription string
}
