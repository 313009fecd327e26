package models

import "riskdesk/pkg/domain"

// Template is a read-only scenario catalogue entry.
type Template struct {
	ID                  domain.TemplateID `json:"id"`
	Domain              string            `json:"domain"`
	ScenarioDescription string            `json:"scenario_description"`
	Threat              string            `json:"threat,omitempty"`
	Vulnerability       string            `json:"vulnerability,omitempty"`
}
