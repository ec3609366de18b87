package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure so the command surface can map it to
// a message and exit code without inspecting message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindIntegrity
)

// Exit codes per failure kind. Zero is reserved for success.
const (
	ExitInternal   = 1
	ExitValidation = 2
	ExitNotFound   = 3
	ExitConflict   = 4
	ExitIntegrity  = 5
)

// Failure is a wrapper for domain error messages and their kind.
type Failure struct {
	Kind    Kind
	Message string
}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Validation returns a new Failure for malformed or missing input.
func Validation(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// ValidationFromString returns a new validation Failure with the message set from string.
func ValidationFromString(msg string) error {
	return &Failure{
		Kind:    KindValidation,
		Message: msg,
	}
}

// NotFound returns a new Failure for a referenced entity that does not exist.
func NotFound(entityName string) error {
	return &Failure{
		Kind:    KindNotFound,
		Message: entityName + " not found",
	}
}

// Conflict returns a new Failure for conflict situations such as
// double-booked rooms or duplicate unique fields.
func Conflict(message string) error {
	return &Failure{
		Kind:    KindConflict,
		Message: message,
	}
}

// Integrity returns a new Failure for storage constraint violations.
func Integrity(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindIntegrity,
			Message: err.Error(),
		}
	}

	return nil
}

// Internal returns a new Failure with the message derived from an error interface.
func Internal(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// GetKind returns the failure kind of an error interface.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// ExitCode maps an error to the process exit code the CLI should return.
func ExitCode(err error) int {
	switch GetKind(err) {
	case KindValidation:
		return ExitValidation
	case KindNotFound:
		return ExitNotFound
	case KindConflict:
		return ExitConflict
	case KindIntegrity:
		return ExitIntegrity
	default:
		return ExitInternal
	}
}

// Conflictf returns a Conflict failure with a formatted message.
func Conflictf(format string, args ...any) error {
	return Conflict(fmt.Sprintf(format, args...))
}
