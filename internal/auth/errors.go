package auth

import (
	"errors"
	"net/http"
)

// The gateway reports failures as typed errors so handlers can map them to
// HTTP statuses without string matching. Every error renders as a single
// {"error": message} body at the boundary.

// ValidationError reports missing or malformed input (HTTP 400).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ConflictError reports a uniqueness violation: duplicate email, or an
// admin-bootstrap attempt when users already exist (HTTP 400).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// AuthenticationError reports bad credentials or a missing/invalid token.
// Forbidden selects 403 (token present but unverifiable) over 401.
type AuthenticationError struct {
	Msg       string
	Forbidden bool
}

func (e *AuthenticationError) Error() string { return e.Msg }

// NotFoundError reports an identity that no longer resolves (HTTP 404).
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// InternalError wraps an unexpected hashing/signing failure. Its message is
// generic so internals never reach the client; the cause stays available
// for logging via Unwrap.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return "Internal server error" }
func (e *InternalError) Unwrap() error { return e.Err }

// StatusOf maps a gateway error to its HTTP status. Unknown errors map to
// 500, same as InternalError.
func StatusOf(err error) int {
	var (
		validationErr *ValidationError
		conflictErr   *ConflictError
		authErr       *AuthenticationError
		notFoundErr   *NotFoundError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &conflictErr):
		return http.StatusBadRequest
	case errors.As(err, &authErr):
		if authErr.Forbidden {
			return http.StatusForbidden
		}
		return http.StatusUnauthorized
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
