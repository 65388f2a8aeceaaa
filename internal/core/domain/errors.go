package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
	ErrForbidden          = errors.New("access forbidden")

	ErrUserNotFound  = errors.New("user not found")
	ErrUserExists    = errors.New("user already exists")
	ErrGuideNotFound = errors.New("guide not found")
	ErrTrekNotFound  = errors.New("trek template not found")

	ErrNoGuideProfile = errors.New("session has no guide profile")

	ErrInvalidDateRange = errors.New("invalid date range")
	ErrUnknownService   = errors.New("unknown optional service")
	ErrInvalidDailyRate = errors.New("daily rate must be positive")

	// ErrBackendUnavailable wraps transport-level failures reaching the
	// remote marketplace API.
	ErrBackendUnavailable = errors.New("marketplace API unavailable")
)
