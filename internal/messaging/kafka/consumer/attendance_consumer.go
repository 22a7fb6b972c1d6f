package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hris-backoffice/internal/events"
	"hris-backoffice/internal/shared/worktime"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// PayrollCacheInvalidator drops cached payroll results for one employee and
// billing month.
type PayrollCacheInvalidator interface {
	InvalidateEmployee(ctx context.Context, companyID, employeeID string, period time.Time) error
}

const maxHandleAttempts = 3

// handleBackoff is the pause between attempts; tests shorten it.
var handleBackoff = 200 * time.Millisecond

// ConsumeAttendanceRecorded keeps cached payroll results consistent with the
// ledger. It returns when ctx is cancelled.
func ConsumeAttendanceRecorded(
	ctx context.Context,
	reader MessageReader,
	invalidator PayrollCacheInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_recorded")
	log.Info("attendance recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance recorded consumer stopped")
				return
			}
			log.Error("fetch attendance recorded message failed", zap.Error(err))
			continue
		}

		if err := handleWithRetry(ctx, msg, invalidator); err != nil {
			log.Error("handle attendance recorded event failed",
				zap.String("key", string(msg.Key)),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			// Left uncommitted; the result cache TTL bounds how long a
			// stale payroll can be served.
			if !isPermanent(err) {
				continue
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance recorded message failed", zap.Error(err))
		}
	}
}

func handleWithRetry(ctx context.Context, msg kafkago.Message, invalidator PayrollCacheInvalidator) error {
	var err error
	for attempt := 1; attempt <= maxHandleAttempts; attempt++ {
		err = handleAttendanceRecorded(ctx, msg, invalidator)
		if err == nil || isPermanent(err) || attempt == maxHandleAttempts {
			return err
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * handleBackoff):
		}
	}
	return err
}

type permanentError struct{ err error }

func (e permanentError) Error() string { return e.err.Error() }
func (e permanentError) Unwrap() error { return e.err }

func isPermanent(err error) bool {
	_, ok := err.(permanentError)
	return ok
}

func handleAttendanceRecorded(ctx context.Context, msg kafkago.Message, invalidator PayrollCacheInvalidator) error {
	var event events.AttendanceRecordedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return permanentError{fmt.Errorf("decode attendance_recorded: %w", err)}
	}
	if event.CompanyID == "" || event.EmployeeID == "" {
		return permanentError{fmt.Errorf("attendance_recorded without tenant or employee")}
	}

	day, err := worktime.ParseDate(event.AttendanceDate)
	if err != nil {
		return permanentError{err}
	}

	return invalidator.InvalidateEmployee(ctx, event.CompanyID, event.EmployeeID, day)
}
