package weather

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single error kind surfaced for malformed input.
// Processing halts at the first failing event; malformed input is a caller
// contract violation, not a retryable condition. Match with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Cause distinguishes the ways input can be invalid, for diagnostics.
type Cause string

const (
	// CauseMissingField means a weather sample is missing stationName,
	// timestamp, or temperature (absent or null).
	CauseMissingField Cause = "missing_field"

	// CauseUnknownCommand means a control record carries a command that is
	// neither snapshot nor reset.
	CauseUnknownCommand Cause = "unknown_command"

	// CauseUnknownType means a record's top-level type is neither sample
	// nor control, or the record shape could not be decoded at all.
	CauseUnknownType Cause = "unknown_type"
)

// InvalidInputError wraps ErrInvalidInput with a cause code so callers can
// tell the failure modes apart without parsing messages.
type InvalidInputError struct {
	Cause   Cause
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// NewInvalidInput builds an InvalidInputError with a formatted message.
func NewInvalidInput(cause Cause, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Cause: cause, Message: fmt.Sprintf(format, args...)}
}

// CauseOf extracts the cause code from err, or "" if err is not an
// InvalidInputError.
func CauseOf(err error) Cause {
	var iie *InvalidInputError
	if errors.As(err, &iie) {
		return iie.Cause
	}
	return ""
}
