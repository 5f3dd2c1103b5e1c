package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrNotAuthenticated   = errors.New("not logged in")

	// ErrSessionExpired is returned when the server rejected the credential
	// and it could not be renewed. The user has to log in again.
	ErrSessionExpired = errors.New("session expired")

	ErrAccessDenied = errors.New("access denied")

	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrIdempotencyConflict     = errors.New("idempotency key already used for a different order")

	ErrServerUnavailable = errors.New("orders api unavailable")
)
