package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventCheckIn  = "CHECK_IN"
	EventCheckOut = "CHECK_OUT"

	StatusOnTime = "ONTIME"
	StatusLate   = "LATE"
	StatusEarly  = "EARLY"
)

// AttendanceEvent is one immutable ledger entry. AttendanceDate is the
// tenant-local calendar day the event belongs to.
type AttendanceEvent struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID      uuid.UUID `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_attendance_event_day,priority:1"`
	EmployeeID     uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_event_day,priority:2"`
	AttendanceDate time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_event_day,priority:3"`
	EventType      string    `gorm:"column:event_type;type:varchar(16);not null;uniqueIndex:uq_attendance_event_day,priority:4"`
	EventTime      time.Time `gorm:"column:event_time;type:timestamptz;not null"`
	Status         string    `gorm:"column:status;type:varchar(16);not null"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (AttendanceEvent) TableName() string {
	return "attendance_events"
}

// StatusCount is one row of a GROUP BY event_type, status aggregate.
type StatusCount struct {
	EventType string
	Status    string
	Total     int64
}

// DailyCheckInStats aggregates one tenant's check-ins for a single day.
type DailyCheckInStats struct {
	OnTime            int64
	Late              int64
	DistinctEmployees int64
}
