package payrollerrors

import (
	"net/http"

	"hris-backoffice/internal/shared/apperror"
)

var ErrSalaryRecordNotFound = apperror.New(
	apperror.CodeNotFound,
	"salary record not configured for this employee",
	http.StatusNotFound,
)
