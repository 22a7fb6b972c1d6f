package companysettingerrors

import (
	"net/http"

	"hris-backoffice/internal/shared/apperror"
)

var (
	ErrInvalidWorkTime = apperror.New(
		apperror.CodeInvalidInput,
		"start_work and end_work must use HH:MM format",
		http.StatusBadRequest,
	)
	ErrWorkHoursOrder = apperror.New(
		apperror.CodeInvalidInput,
		"end_work must be after start_work",
		http.StatusBadRequest,
	)
	ErrNegativeDeduction = apperror.New(
		apperror.CodeInvalidInput,
		"deduction_per_late must not be negative",
		http.StatusBadRequest,
	)
	ErrNegativeCount = apperror.New(
		apperror.CodeInvalidInput,
		"late_grace_minutes and allowed_late_count must not be negative",
		http.StatusBadRequest,
	)
	ErrInvalidTimezone = apperror.New(
		apperror.CodeInvalidInput,
		"timezone must be a valid IANA zone name",
		http.StatusBadRequest,
	)
)
