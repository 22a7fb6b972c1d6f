package attendanceerrors

import (
	"net/http"

	"hris-backoffice/internal/shared/apperror"
)

var (
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"Anda sudah melakukan check-in hari ini",
		http.StatusConflict,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeConflict,
		"Anda sudah melakukan check-out hari ini",
		http.StatusConflict,
	)
	ErrMustCheckInFirst = apperror.New(
		apperror.CodeInvalidState,
		"Anda harus check-in terlebih dahulu",
		http.StatusConflict,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must not be after end_date",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"dates must use YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)
