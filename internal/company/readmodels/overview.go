// Package readmodels contains query-optimized views over a company and the
// records attached to it. They are not aggregates and are never written back.
package readmodels

import (
	auditmodels "riskdesk/internal/audit/models"
	"riskdesk/internal/company/models"
	riskmodels "riskdesk/internal/risk/models"
	"riskdesk/internal/risk/scales"
)

// Overview is the company dashboard: the record plus its audits, risk
// register and scale setup.
type Overview struct {
	Company          *models.Company
	Audits           []*auditmodels.Audit
	Scenarios        []*riskmodels.RiskScenario
	ScaleCount       int
	OpenAudits       int
	ScenariosByLevel map[riskmodels.Level]int
}

// NewOverview derives the counters from the fetched records. Scenarios
// without a raw level are not counted by level.
func NewOverview(c *models.Company, audits []*auditmodels.Audit, scenarios []*riskmodels.RiskScenario, scaleCount int) *Overview {
	o := &Overview{
		Company:          c,
		Audits:           audits,
		Scenarios:        scenarios,
		ScaleCount:       scaleCount,
		ScenariosByLevel: make(map[riskmodels.Level]int, len(riskmodels.Levels)),
	}
	for _, l := range riskmodels.Levels {
		o.ScenariosByLevel[l] = 0
	}
	for _, a := range audits {
		if a.Status != auditmodels.StatusCompleted && a.Status != auditmodels.StatusCancelled {
			o.OpenAudits++
		}
	}
	for _, s := range scenarios {
		if s.Raw.RiskLevel.IsValid() {
			o.ScenariosByLevel[s.Raw.RiskLevel]++
		}
	}
	return o
}

func (o *Overview) ScaleSetupComplete() bool {
	return o.ScaleCount >= scales.RequiredCount()
}
