package employeeerrors

import (
	"net/http"

	"hris-backoffice/internal/shared/apperror"
)

var ErrEmployeeNotFound = apperror.New(
	apperror.CodeNotFound,
	"Employee not found",
	http.StatusNotFound,
)
