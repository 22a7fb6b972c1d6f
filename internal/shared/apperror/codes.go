package apperror

import "net/http"

// Codes returned in the error envelope. Clients branch on these, never on
// messages.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	// CodeInvalidState is a request that is well formed but arrives in the
	// wrong order, such as a check-out before any check-in.
	CodeInvalidState = "INVALID_STATE"

	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

var (
	ErrForbidden = New(CodeForbidden, "You do not have permission to access this resource", http.StatusForbidden)
	ErrInternal  = New(CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
)
