package request

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are labelled by chi route pattern, never by raw path.
type Metrics struct {
	latency  *prometheus.HistogramVec
	requests *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		latency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "riskdesk_endpoint_latency_seconds",
			Help:    "Latency of API routes in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"route"}),
		requests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "riskdesk_http_requests_total",
			Help: "HTTP requests by route and status class",
		}, []string{"route", "status_class"}),
	}
}

func (m *Metrics) ObserveEndpointLatency(route string, durationSeconds float64) {
	m.latency.WithLabelValues(route).Observe(durationSeconds)
}

func (m *Metrics) IncrementRequests(route string, status int) {
	m.requests.WithLabelValues(route, statusClass(status)).Inc()
}

func statusClass(status int) string {
	if status < 100 || status > 599 {
		return "unknown"
	}
	return strconv.Itoa(status/100) + "xx"
}
