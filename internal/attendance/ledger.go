package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	attendanceerrors "hris-backoffice/internal/attendance/errors"
	"hris-backoffice/internal/attendance/metrics"
	"hris-backoffice/internal/companysetting"
	"hris-backoffice/internal/events"
	"hris-backoffice/internal/messaging/kafka"
	"hris-backoffice/internal/shared/clock"
	"hris-backoffice/internal/shared/contextutil"
	"hris-backoffice/internal/shared/worktime"
	"hris-backoffice/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledger.go -destination=mock/ledger_mock.go -package=mock

// Ledger appends check-in and check-out events. At most one of each exists
// per tenant, employee and tenant-local calendar day.
type Ledger interface {
	CheckIn(ctx context.Context, companyID, employeeID string) (AttendanceEventResponse, error)
	CheckOut(ctx context.Context, companyID, employeeID string) (AttendanceEventResponse, error)
}

type ledger struct {
	db       *sql.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	policies companysetting.PolicyProvider
	clock    clock.Clock
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewLedger wires the ledger. outbox and m may be nil.
func NewLedger(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	policies companysetting.PolicyProvider,
	clk clock.Clock,
	m *metrics.Metrics,
	logger ...*zap.Logger,
) Ledger {
	l := zap.L().Named("attendance.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.ledger")
	}
	if clk == nil {
		clk = clock.New()
	}
	return &ledger{
		db:       db,
		repo:     repo,
		outbox:   outbox,
		policies: policies,
		clock:    clk,
		metrics:  m,
		logger:   l,
	}
}

func (l *ledger) CheckIn(ctx context.Context, companyID, employeeID string) (AttendanceEventResponse, error) {
	return l.record(ctx, companyID, employeeID, EventCheckIn)
}

func (l *ledger) CheckOut(ctx context.Context, companyID, employeeID string) (AttendanceEventResponse, error) {
	return l.record(ctx, companyID, employeeID, EventCheckOut)
}

func (l *ledger) record(ctx context.Context, companyID, employeeID, eventType string) (AttendanceEventResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	l.logger.Debug("attendance event requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
		zap.String("event_type", eventType),
	)

	if err := tenant.Validate(companyID, employeeID); err != nil {
		return AttendanceEventResponse{}, err
	}

	policy, err := l.policies.GetPolicy(ctx, companyID)
	if err != nil {
		return AttendanceEventResponse{}, err
	}

	now := l.clock.Now().In(policy.Location)
	day := worktime.Date(now)

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		l.logger.Error("attendance begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceEventResponse{}, err
	}
	defer tx.Rollback()

	qtx := l.repo.WithTx(tx)

	if err := qtx.LockEmployeeDay(ctx, companyID, employeeID, day); err != nil {
		l.logger.Error("attendance lock employee day failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceEventResponse{}, err
	}

	today, err := qtx.FindByEmployeeAndDate(ctx, companyID, employeeID, day)
	if err != nil {
		l.logger.Error("attendance read today failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceEventResponse{}, err
	}

	if err := checkTransition(eventType, today); err != nil {
		l.reject(rid, companyID, employeeID, eventType, err)
		return AttendanceEventResponse{}, err
	}

	event := &AttendanceEvent{
		ID:             uuid.New(),
		CompanyID:      uuid.MustParse(companyID),
		EmployeeID:     uuid.MustParse(employeeID),
		AttendanceDate: day,
		EventType:      eventType,
		EventTime:      now.UTC(),
		Status:         classify(eventType, worktime.Of(now), policy),
	}

	if err := qtx.Create(ctx, event); err != nil {
		mapped := mapLedgerWriteError(err, eventType)
		if mapped != err {
			l.reject(rid, companyID, employeeID, eventType, mapped)
			return AttendanceEventResponse{}, mapped
		}
		l.logger.Error("attendance persist failed",
			zap.String("request_id", rid),
			zap.String("company_id", companyID),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return AttendanceEventResponse{}, err
	}

	if err := l.enqueue(ctx, tx, rid, *event); err != nil {
		l.logger.Error("attendance outbox persist failed",
			zap.String("request_id", rid),
			zap.String("attendance_id", event.ID.String()),
			zap.Error(err),
		)
		return AttendanceEventResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.logger.Error("attendance commit failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceEventResponse{}, err
	}

	l.metrics.IncrementRecorded(event.EventType, event.Status)
	l.logger.Info("attendance event recorded",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
		zap.String("event_type", event.EventType),
		zap.String("status", event.Status),
		zap.String("attendance_date", day.Format(worktime.DateLayout)),
	)

	return mapToResponse(*event, policy.Location), nil
}

func (l *ledger) enqueue(ctx context.Context, tx *sql.Tx, rid string, event AttendanceEvent) error {
	if l.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.AttendanceRecordedEvent{
		EventType:      events.AttendanceRecordedEventType,
		RequestID:      rid,
		AttendanceID:   event.ID.String(),
		CompanyID:      event.CompanyID.String(),
		EmployeeID:     event.EmployeeID.String(),
		AttendanceType: event.EventType,
		Status:         event.Status,
		AttendanceDate: event.AttendanceDate.Format(worktime.DateLayout),
		EventTime:      event.EventTime,
		OccurredAt:     l.clock.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return l.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "attendance",
		AggregateID:   event.EmployeeID.String(),
		EventType:     events.AttendanceRecordedEventType,
		Topic:         events.AttendanceRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (l *ledger) reject(rid, companyID, employeeID, eventType string, err error) {
	l.metrics.IncrementRejected(eventType, rejectionReason(err))
	l.logger.Warn("attendance event rejected",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
		zap.String("event_type", eventType),
		zap.Error(err),
	)
}

func checkTransition(eventType string, today []AttendanceEvent) error {
	var hasCheckIn, hasCheckOut bool
	for _, e := range today {
		switch e.EventType {
		case EventCheckIn:
			hasCheckIn = true
		case EventCheckOut:
			hasCheckOut = true
		}
	}

	switch eventType {
	case EventCheckIn:
		if hasCheckIn {
			return attendanceerrors.ErrAlreadyCheckedIn
		}
	case EventCheckOut:
		if !hasCheckIn {
			return attendanceerrors.ErrMustCheckInFirst
		}
		if hasCheckOut {
			return attendanceerrors.ErrAlreadyCheckedOut
		}
	}
	return nil
}

// classify compares wall-clock time of day in the tenant zone. Check-in at
// exactly StartWork is on time; check-out at exactly EndWork is on time.
func classify(eventType string, at worktime.TimeOfDay, policy companysetting.Policy) string {
	if eventType == EventCheckIn {
		if at <= policy.StartWork {
			return StatusOnTime
		}
		return StatusLate
	}
	if at < policy.EndWork {
		return StatusEarly
	}
	return StatusOnTime
}

func rejectionReason(err error) string {
	switch err {
	case attendanceerrors.ErrAlreadyCheckedIn:
		return "already_checked_in"
	case attendanceerrors.ErrAlreadyCheckedOut:
		return "already_checked_out"
	case attendanceerrors.ErrMustCheckInFirst:
		return "must_check_in_first"
	default:
		return "other"
	}
}

func mapToResponse(e AttendanceEvent, loc *time.Location) AttendanceEventResponse {
	if loc == nil {
		loc = time.UTC
	}
	return AttendanceEventResponse{
		ID:             e.ID.String(),
		CompanyID:      e.CompanyID.String(),
		EmployeeID:     e.EmployeeID.String(),
		EventType:      e.EventType,
		Status:         e.Status,
		AttendanceDate: e.AttendanceDate.Format(worktime.DateLayout),
		EventTime:      e.EventTime.In(loc).Format(time.RFC3339),
	}
}

func mapToListResponse(rows []AttendanceEvent, loc *time.Location) []AttendanceEventResponse {
	res := make([]AttendanceEventResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row, loc)
	}
	return res
}
