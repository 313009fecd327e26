package authctx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Outcomes *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "riskdesk_auth_outcomes_total",
			Help: "Bearer token authentication outcomes",
		}, []string{"outcome"}),
	}
}

// Observe is meant to be passed to Provider.Subscribe.
func (m *Metrics) Observe(e Event) {
	m.Outcomes.WithLabelValues(string(e.Kind)).Inc()
}
