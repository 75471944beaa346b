package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/picopay/engine/internal/usecase"
)

// Metrics holds charge processing metrics. It implements
// usecase.MetricsRecorder.
type Metrics struct {
	chargeRequests *prometheus.CounterVec
	chargeLatency  prometheus.Histogram
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		chargeRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "charge_requests_total",
				Help: "Total number of charge requests by outcome",
			},
			[]string{"status"},
		),
		chargeLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "charge_request_latency_seconds",
			Help:    "Charge request processing latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// RecordCharge records the outcome and latency of one charge request.
func (m *Metrics) RecordCharge(outcome usecase.Outcome, duration time.Duration) {
	m.chargeRequests.WithLabelValues(string(outcome)).Inc()
	m.chargeLatency.Observe(duration.Seconds())
}
