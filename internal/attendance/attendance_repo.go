package attendance

import (
	"context"
	"database/sql"
	"time"

	"hris-backoffice/internal/shared/worktime"
	"hris-backoffice/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	LockEmployeeDay(ctx context.Context, companyID, employeeID string, day time.Time) error
	Create(ctx context.Context, event *AttendanceEvent) error
	FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, day time.Time) ([]AttendanceEvent, error)
	FindCheckInsInRange(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]AttendanceEvent, error)
	FindByEmployeeInRange(ctx context.Context, companyID, employeeID string, start, end time.Time, limit, offset int) ([]AttendanceEvent, int64, error)
	CountByTypeAndStatus(ctx context.Context, companyID, employeeID string) ([]StatusCount, error)
	CountLateCheckIns(ctx context.Context, companyID, employeeID string, start, end time.Time) (int64, error)
	DailyCheckInStats(ctx context.Context, companyID string, day time.Time) (DailyCheckInStats, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn binds the session to the caller's transaction when there is one.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

// LockEmployeeDay serializes ledger writes for one employee and day until the
// surrounding transaction ends.
func (r *repository) LockEmployeeDay(ctx context.Context, companyID, employeeID string, day time.Time) error {
	key := companyID + ":" + employeeID + ":" + day.Format(worktime.DateLayout)
	return r.conn(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
}

func (r *repository) Create(ctx context.Context, event *AttendanceEvent) error {
	return r.conn(ctx).Create(event).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, day time.Time) ([]AttendanceEvent, error) {
	var rows []AttendanceEvent
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", day.Format(worktime.DateLayout)).
		Order("event_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindCheckInsInRange(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]AttendanceEvent, error) {
	var rows []AttendanceEvent
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("event_type = ?", EventCheckIn).
		Where("attendance_date BETWEEN ? AND ?", start.Format(worktime.DateLayout), end.Format(worktime.DateLayout)).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeInRange(
	ctx context.Context,
	companyID, employeeID string,
	start, end time.Time,
	limit, offset int,
) ([]AttendanceEvent, int64, error) {
	query := r.conn(ctx).
		Model(&AttendanceEvent{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", start.Format(worktime.DateLayout), end.Format(worktime.DateLayout)).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []AttendanceEvent
	err := query.
		Order("event_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) CountByTypeAndStatus(ctx context.Context, companyID, employeeID string) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.conn(ctx).
		Model(&AttendanceEvent{}).
		Select("event_type, status, COUNT(*) AS total").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Group("event_type, status").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CountLateCheckIns(ctx context.Context, companyID, employeeID string, start, end time.Time) (int64, error) {
	var total int64
	err := r.conn(ctx).
		Model(&AttendanceEvent{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("event_type = ?", EventCheckIn).
		Where("status = ?", StatusLate).
		Where("attendance_date BETWEEN ? AND ?", start.Format(worktime.DateLayout), end.Format(worktime.DateLayout)).
		Count(&total).Error
	return total, err
}

func (r *repository) DailyCheckInStats(ctx context.Context, companyID string, day time.Time) (DailyCheckInStats, error) {
	query := `
SELECT
	COUNT(*) FILTER (WHERE status = ?) AS on_time,
	COUNT(*) FILTER (WHERE status = ?) AS late,
	COUNT(DISTINCT employee_id) AS distinct_employees
FROM attendance_events
WHERE company_id = ?
	AND attendance_date = ?
	AND event_type = ?
`
	var stats DailyCheckInStats
	err := r.conn(ctx).
		Raw(query, StatusOnTime, StatusLate, companyID, day.Format(worktime.DateLayout), EventCheckIn).
		Scan(&stats).Error
	return stats, err
}
