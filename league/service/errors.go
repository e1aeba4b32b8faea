// league/service/errors.go
package service

import "fmt"

// The service layer reports failures through a closed set of error types.
// Handlers map them onto HTTP statuses; anything that doesn't match is a bug
// and surfaces as a 500.

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a business-rule violation: duplicate team name,
// identical home and away sides, or an unavailable team/time slot.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError reports an unknown team, fixture or account.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// DeleteNotAllowedError reports a fixture deletion attempt outside the
// pending state.
type DeleteNotAllowedError struct {
	Message string
}

func (e *DeleteNotAllowedError) Error() string { return e.Message }

// UnauthorizedError reports failed credential checks.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

// DependencyError wraps a persistence or cache connectivity failure.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *DependencyError) Unwrap() error { return e.Err }

func dependency(op string, err error) *DependencyError {
	return &DependencyError{Op: op, Err: err}
}
