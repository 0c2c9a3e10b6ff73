package domain

import (
	"errors"
	"strings"
)

// Validation failure kinds. A *ValidationError unwraps to one of these so
// callers can branch with errors.Is.
var (
	ErrDuplicateUsername = errors.New("username is already taken")
	ErrInvalidWorkplace  = errors.New("invalid workplace id")
	ErrWeakPassword      = errors.New("password does not satisfy the policy")
	ErrInvalidUsername   = errors.New("username is required")
	ErrMetricOutOfRange  = errors.New("metric out of range")
)

// ValidationError is a user-facing rejection with one or more reasons.
type ValidationError struct {
	Kind    error
	Reasons []string
}

// NewValidationError builds a ValidationError. With no reasons the kind's own
// message becomes the single reason.
func NewValidationError(kind error, reasons ...string) *ValidationError {
	if len(reasons) == 0 {
		reasons = []string{kind.Error()}
	}
	return &ValidationError{Kind: kind, Reasons: reasons}
}

func (e *ValidationError) Error() string {
	return e.Kind.Error() + ": " + strings.Join(e.Reasons, "; ")
}

func (e *ValidationError) Unwrap() error { return e.Kind }
