package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is safe to use through a nil pointer; services built without
// metrics skip recording.
type Metrics struct {
	EventsRecorded *prometheus.CounterVec
	Rejections     *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		EventsRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hris_attendance_events_recorded_total",
			Help: "Attendance ledger entries appended, by event type and status",
		}, []string{"event_type", "status"}),
		Rejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hris_attendance_rejections_total",
			Help: "Check-in and check-out attempts rejected by the ledger, by reason",
		}, []string{"event_type", "reason"}),
	}
}

func (m *Metrics) IncrementRecorded(eventType, status string) {
	if m == nil {
		return
	}
	m.EventsRecorded.WithLabelValues(eventType, status).Inc()
}

func (m *Metrics) IncrementRejected(eventType, reason string) {
	if m == nil {
		return
	}
	m.Rejections.WithLabelValues(eventType, reason).Inc()
}
