package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	AuditsCreated    prometheus.Counter
	AuditsDeleted    prometheus.Counter
	UsersAssigned    prometheus.Counter
	ThemesSeeded     prometheus.Counter
	PlanEvaluations  *prometheus.CounterVec
	PlanRequiredDays prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		AuditsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "riskdesk_audits_created_total",
			Help: "Total number of audits created",
		}),
		AuditsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "riskdesk_audits_deleted_total",
			Help: "Total number of audits deleted",
		}),
		UsersAssigned: promauto.NewCounter(prometheus.CounterOpts{
			Name: "riskdesk_audit_users_assigned_total",
			Help: "User assignments written to audits",
		}),
		ThemesSeeded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "riskdesk_audit_themes_seeded_total",
			Help: "Default audit themes inserted into an empty catalogue",
		}),
		PlanEvaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "riskdesk_audit_plan_evaluations_total",
			Help: "Audit plan feasibility evaluations by verdict",
		}, []string{"verdict"}),
		PlanRequiredDays: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "riskdesk_audit_plan_required_days",
			Help:    "Days required by evaluated audit plans",
			Buckets: []float64{1, 2, 3, 5, 8, 13},
		}),
	}
}

func (m *Metrics) IncrementAuditsCreated() { m.AuditsCreated.Inc() }
func (m *Metrics) IncrementAuditsDeleted() { m.AuditsDeleted.Inc() }
func (m *Metrics) AddUsersAssigned(n int)  { m.UsersAssigned.Add(float64(n)) }
func (m *Metrics) AddThemesSeeded(n int)   { m.ThemesSeeded.Add(float64(n)) }

func (m *Metrics) ObservePlan(valid bool, requiredDays int) {
	verdict := "infeasible"
	if valid {
		verdict = "feasible"
	}
	m.PlanEvaluations.WithLabelValues(verdict).Inc()
	m.PlanRequiredDays.Observe(float64(requiredDays))
}
