package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ScenariosCreated  prometheus.Counter
	ScenariosDeleted  prometheus.Counter
	ScalesSeeded      prometheus.Counter
	ScaleSeedFailures prometheus.Counter
	TemplateCache     *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		ScenariosCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "riskdesk_risk_scenarios_created_total",
			Help: "Total number of risk scenarios created",
		}),
		ScenariosDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "riskdesk_risk_scenarios_deleted_total",
			Help: "Total number of risk scenarios deleted",
		}),
		ScalesSeeded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "riskdesk_company_risk_scales_seeded_total",
			Help: "Company risk scales cloned from templates",
		}),
		ScaleSeedFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "riskdesk_company_risk_scale_seed_failures_total",
			Help: "Templates that failed to clone into a company scale",
		}),
		TemplateCache: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "riskdesk_scenario_template_cache_total",
			Help: "Scenario template catalogue cache lookups by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) IncrementScenariosCreated()  { m.ScenariosCreated.Inc() }
func (m *Metrics) IncrementScenariosDeleted()  { m.ScenariosDeleted.Inc() }
func (m *Metrics) IncrementScalesSeeded()      { m.ScalesSeeded.Inc() }
func (m *Metrics) IncrementScaleSeedFailures() { m.ScaleSeedFailures.Inc() }

func (m *Metrics) ObserveTemplateCache(hit bool) {
	if hit {
		m.TemplateCache.WithLabelValues("hit").Inc()
		return
	}
	m.TemplateCache.WithLabelValues("miss").Inc()
}
