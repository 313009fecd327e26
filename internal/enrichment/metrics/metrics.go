package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes of an enrichment call.
const (
	OutcomeSuccess     = "success"
	OutcomeUpstream    = "upstream_error"
	OutcomeInvalid     = "invalid_output"
	OutcomeTimeout     = "timeout"
	OutcomeRejected    = "breaker_open"
	OutcomeUnavailable = "not_configured"
)

type Metrics struct {
	Calls        *prometheus.CounterVec
	Latency      *prometheus.HistogramVec
	BreakerState prometheus.Gauge
}

func New() *Metrics {
	return &Metrics{
		Calls: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "riskdesk_enrichment_calls_total",
			Help: "AI enrichment calls by kind and outcome",
		}, []string{"kind", "outcome"}),
		Latency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "riskdesk_enrichment_duration_seconds",
			Help:    "Time spent waiting on the language model",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30},
		}, []string{"kind"}),
		BreakerState: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "riskdesk_enrichment_breaker_open",
			Help: "1 while the enrichment circuit breaker rejects calls",
		}),
	}
}

func (m *Metrics) IncrementCalls(kind, outcome string) {
	m.Calls.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) ObserveLatency(kind string, seconds float64) {
	m.Latency.WithLabelValues(kind).Observe(seconds)
}

func (m *Metrics) SetBreakerOpen(open bool) {
	if open {
		m.BreakerState.Set(1)
		return
	}
	m.BreakerState.Set(0)
}
