package client

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the client's Prometheus collectors.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "roadmap_client",
				Name:      "requests_total",
				Help:      "Requests issued, by method and outcome.",
			},
			[]string{"method", "outcome"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "roadmap_client",
				Name:      "request_duration_seconds",
				Help:      "Time from send to response or failure.",
				// generation requests run long; stretch the buckets up to the timeout
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"method"},
		),
	}
}

var (
	defaultMetricsOnce sync.Once
	defaultMetricsVal  *Metrics
)

// defaultMetrics registers on the process-wide registry exactly once, so
// several clients in one process share collectors.
func defaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		defaultMetricsVal = NewMetrics(prometheus.DefaultRegisterer)
	})
	return defaultMetricsVal
}

func (m *Metrics) observe(method, outcome string, elapsed time.Duration) {
	method = strings.ToUpper(method)
	m.requests.WithLabelValues(method, outcome).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}
