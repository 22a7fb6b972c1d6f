package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is safe to use through a nil pointer.
type Metrics struct {
	Computations *prometheus.CounterVec
	Duration     prometheus.Histogram
	CacheLookups *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		Computations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hris_payroll_computations_total",
			Help: "Payroll computations by result status",
		}, []string{"status"}),
		Duration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hris_payroll_computation_duration_seconds",
			Help:    "Time spent computing one employee's payroll",
			Buckets: prometheus.DefBuckets,
		}),
		CacheLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hris_payroll_cache_lookups_total",
			Help: "Payroll result cache lookups by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) ObserveComputation(status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Computations.WithLabelValues(status).Inc()
	m.Duration.Observe(elapsed.Seconds())
}

func (m *Metrics) IncrementCacheLookup(hit bool) {
	if m == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.CacheLookups.WithLabelValues(outcome).Inc()
}
