package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidYearRange   = errors.New("year range start must not exceed end")
	ErrInvalidEngineRange = errors.New("engine capacity start must not exceed end")
	ErrUnknownProvider    = errors.New("unknown AI provider")

	// ErrDuplicateListing marks a persistence attempt rejected by the
	// (source, unique_identifier) uniqueness constraint. Expected and
	// recoverable; the submission flow records it and moves on.
	ErrDuplicateListing = errors.New("listing already exists for this source")
)

// AllSubmissionsFailedError is returned by the submission flow when not a
// single listing could be persisted.
type AllSubmissionsFailedError struct {
	FailureCount int
}

func (e *AllSubmissionsFailedError) Error() string {
	return fmt.Sprintf("failed to create any listings: %d error(s) occurred", e.FailureCount)
}
