package middleware

import (
	"net/http"

	"hris-backoffice/internal/shared/apperror"
)

var (
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrMissingAuthContext = apperror.New(
		apperror.CodeUnauthorized,
		"Missing auth context",
		http.StatusUnauthorized,
	)
	ErrTooManyRequests = apperror.New(
		"TOO_MANY_REQUESTS",
		"Too many requests",
		http.StatusTooManyRequests,
	)
	ErrRequestInProgress = apperror.New(
		"PROCESSING",
		"Transaksi Anda sedang diproses, mohon tunggu sebentar.",
		http.StatusConflict,
	)
)
