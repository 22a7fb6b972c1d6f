package attendance

import (
	"errors"

	attendanceerrors "hris-backoffice/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueEventDayConstraint = "uq_attendance_event_day"

// mapLedgerWriteError turns the unique-index backstop into the same domain
// error the in-transaction check would have produced.
func mapLedgerWriteError(err error, eventType string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == uniqueEventDayConstraint {
		if eventType == EventCheckOut {
			return attendanceerrors.ErrAlreadyCheckedOut
		}
		return attendanceerrors.ErrAlreadyCheckedIn
	}

	return err
}
