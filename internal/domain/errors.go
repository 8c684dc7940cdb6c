package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrValidation        = errors.New("validation error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrDeliveryFailure is returned by live channels when a push cannot be
	// delivered. It never leaves the notification dispatcher.
	ErrDeliveryFailure = errors.New("delivery failure")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// TransitionKind is the machine-readable reason a lifecycle operation was refused.
type TransitionKind string

const (
	TransitionIncorrectStatus        TransitionKind = "INCORRECT_STATUS"
	TransitionAlreadyCompleted       TransitionKind = "ALREADY_COMPLETED"
	TransitionCancellationNotAllowed TransitionKind = "CANCELLATION_NOT_ALLOWED"
	TransitionNotAuthorized          TransitionKind = "NOT_AUTHORIZED"
	TransitionPlaceAlreadyAssigned   TransitionKind = "PLACE_ALREADY_ASSIGNED"
	TransitionPeriodExceeded         TransitionKind = "PERIOD_EXCEEDED"
)

func (k TransitionKind) String() string { return string(k) }

// TransitionError is returned when a matching cannot move to the requested state.
// It always unwraps to ErrInvalidTransition.
type TransitionError struct {
	Kind    TransitionKind
	Message string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition (%s): %s", e.Kind, e.Message)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// NewTransitionError creates a TransitionError of the given kind.
func NewTransitionError(kind TransitionKind, format string, args ...any) *TransitionError {
	return &TransitionError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IncorrectStatus reports that the matching is not in the status the operation requires.
func IncorrectStatus(want, got MatchingStatus) *TransitionError {
	return NewTransitionError(TransitionIncorrectStatus, "matching must be %s, is %s", want, got)
}

// NotAuthorized reports that the caller does not own the side of the matching the operation requires.
func NotAuthorized(side UserRole) *TransitionError {
	return NewTransitionError(TransitionNotAuthorized, "caller is not the %s of this matching", side.Label())
}

// TransitionKindOf returns the kind of a TransitionError anywhere in err's chain.
func TransitionKindOf(err error) (TransitionKind, bool) {
	var te *TransitionError
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return "", false
}
