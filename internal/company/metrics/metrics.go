package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	CompaniesCreated    prometheus.Counter
	CompaniesUpdated    prometheus.Counter
	EnrichmentsAccepted prometheus.Counter
	OverviewLatency     prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		CompaniesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "riskdesk_companies_created_total",
			Help: "Total number of companies created",
		}),
		CompaniesUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "riskdesk_companies_updated_total",
			Help: "Company updates that changed at least one column",
		}),
		EnrichmentsAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "riskdesk_company_enrichments_accepted_total",
			Help: "AI enrichment proposals accepted into a company record",
		}),
		OverviewLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "riskdesk_company_overview_duration_seconds",
			Help:    "Time to assemble the company overview",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementCompaniesCreated()    { m.CompaniesCreated.Inc() }
func (m *Metrics) IncrementCompaniesUpdated()    { m.CompaniesUpdated.Inc() }
func (m *Metrics) IncrementEnrichmentsAccepted() { m.EnrichmentsAccepted.Inc() }

func (m *Metrics) ObserveOverviewLatency(seconds float64) {
	m.OverviewLatency.Observe(seconds)
}
