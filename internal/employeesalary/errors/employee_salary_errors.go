package employeesalaryerrors

import (
	"net/http"

	"hris-backoffice/internal/shared/apperror"
)

var (
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary record not found",
		http.StatusNotFound,
	)
	ErrNegativeComponent = apperror.New(
		apperror.CodeInvalidInput,
		"Salary components must not be negative",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeNotFound,
		"Employee not found in this company",
		http.StatusNotFound,
	)
	ErrSalaryAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Salary for this employee already exists",
		http.StatusConflict,
	)
)
