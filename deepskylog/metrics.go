package deepskylog

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for equipment API calls. A nil
// *Metrics is valid and records nothing, so library users who do not run a
// metrics endpoint pay no cost.
type Metrics struct {
	Requests        *prometheus.CounterVec   // labels: resource, outcome={success,auth_error,server_error,malformed,transport_error}
	RequestDuration *prometheus.HistogramVec // labels: resource
}

// NewMetrics creates and registers the client metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.Requests, m.RequestDuration)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "deepskylog",
			Name:      "requests_total",
			Help:      "Equipment API requests by resource and outcome.",
		}, []string{"resource", "outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "deepskylog",
			Name:      "request_duration_seconds",
			Help:      "Equipment API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"resource"}),
	}
}

func (m *Metrics) observe(resource, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(resource, outcome).Inc()
	m.RequestDuration.WithLabelValues(resource).Observe(d.Seconds())
}
