package readmodels

import "riskdesk/internal/audit/plan"

// PlanEvaluation is the feasibility verdict plus an illustrative day-by-day layout.
type PlanEvaluation struct {
	Summary  plan.Summary
	Schedule plan.Schedule
}
