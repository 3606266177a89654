package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports bad or missing input. It is user-correctable and
// never indicates a system fault. A single request can accumulate several
// messages, e.g. the donation submission form.
type ValidationError struct {
	Msgs []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Msgs, "; ") }

// Validationf builds a single-message ValidationError.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msgs: []string{fmt.Sprintf(format, args...)}}
}

// AsValidation returns the ValidationError wrapped in err, if any.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	_, ok := AsValidation(err)
	return ok
}

// StateConflictError reports an operation attempted on an entity that is not
// in the required state, e.g. assigning a donation that already left pending.
type StateConflictError struct {
	Msg string
}

func (e *StateConflictError) Error() string { return e.Msg }

// Conflictf builds a StateConflictError with a formatted message.
func Conflictf(format string, args ...any) error {
	return &StateConflictError{Msg: fmt.Sprintf(format, args...)}
}

// IsStateConflict reports whether err is a StateConflictError.
func IsStateConflict(err error) bool {
	var ce *StateConflictError
	return errors.As(err, &ce)
}
