package events

import "time"

const (
	AttendanceRecordedTopic     = "hr.attendance.recorded.v1"
	AttendanceRecordedEventType = "attendance_recorded"
)

// AttendanceRecordedEvent is published once per ledger append.
type AttendanceRecordedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	AttendanceID   string    `json:"attendance_id"`
	CompanyID      string    `json:"company_id"`
	EmployeeID     string    `json:"employee_id"`
	AttendanceType string    `json:"attendance_type"`
	Status         string    `json:"status"`
	AttendanceDate string    `json:"attendance_date"`
	EventTime      time.Time `json:"event_time"`
	OccurredAt     time.Time `json:"occurred_at"`
}
