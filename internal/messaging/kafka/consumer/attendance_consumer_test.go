package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hris-backoffice/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type invalidation struct {
	companyID  string
	employeeID string
	period     time.Time
}

type fakeInvalidator struct {
	calls []invalidation
	err   error
	// failures fails only the first n calls when err is set.
	failures int
}

func (f *fakeInvalidator) InvalidateEmployee(ctx context.Context, companyID, employeeID string, period time.Time) error {
	f.calls = append(f.calls, invalidation{companyID, employeeID, period})
	if f.failures > 0 && len(f.calls) > f.failures {
		return nil
	}
	return f.err
}

type fakeReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.msgs) == 0 {
		f.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	msg := f.msgs[0]
	f.msgs = f.msgs[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	f.committed = append(f.committed, msgs...)
	return nil
}

func recordedMessage(t *testing.T, offset int64, date string) kafkago.Message {
	t.Helper()
	payload, err := json.Marshal(events.AttendanceRecordedEvent{
		EventType:      events.AttendanceRecordedEventType,
		CompanyID:      "company-1",
		EmployeeID:     "employee-1",
		AttendanceType: "CHECK_IN",
		Status:         "LATE",
		AttendanceDate: date,
	})
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Key: []byte("employee-1"), Value: payload}
}

func TestConsumeAttendanceRecorded(t *testing.T) {
	handleBackoff = time.Millisecond

	t.Run("invalidates and commits", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &fakeReader{
			msgs:   []kafkago.Message{recordedMessage(t, 1, "2026-03-02")},
			cancel: cancel,
		}
		invalidator := &fakeInvalidator{}

		ConsumeAttendanceRecorded(ctx, reader, invalidator, zap.NewNop())

		assert.Len(t, invalidator.calls, 1)
		assert.Equal(t, "company-1", invalidator.calls[0].companyID)
		assert.Equal(t, "2026-03-02", invalidator.calls[0].period.Format("2006-01-02"))
		assert.Len(t, reader.committed, 1)
	})

	t.Run("poison message is committed and skipped", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &fakeReader{
			msgs:   []kafkago.Message{{Offset: 2, Value: []byte("not json")}},
			cancel: cancel,
		}
		invalidator := &fakeInvalidator{}

		ConsumeAttendanceRecorded(ctx, reader, invalidator, zap.NewNop())

		assert.Empty(t, invalidator.calls)
		assert.Len(t, reader.committed, 1)
	})

	t.Run("transient failure is retried", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &fakeReader{
			msgs:   []kafkago.Message{recordedMessage(t, 4, "2026-03-02")},
			cancel: cancel,
		}
		invalidator := &fakeInvalidator{err: errors.New("redis timeout"), failures: 1}

		ConsumeAttendanceRecorded(ctx, reader, invalidator, zap.NewNop())

		assert.Len(t, invalidator.calls, 2)
		assert.Len(t, reader.committed, 1)
	})

	t.Run("transient failure is not committed", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		reader := &fakeReader{
			msgs:   []kafkago.Message{recordedMessage(t, 3, "2026-03-02")},
			cancel: cancel,
		}
		invalidator := &fakeInvalidator{err: errors.New("redis down")}

		ConsumeAttendanceRecorded(ctx, reader, invalidator, zap.NewNop())

		assert.Len(t, invalidator.calls, maxHandleAttempts)
		assert.Empty(t, reader.committed)
	})
}
