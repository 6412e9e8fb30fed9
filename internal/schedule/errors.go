package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrTaskNotFound is returned when an update names a task id that does
	// not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNoPendingConflict is returned when a push resolution or
	// cancellation arrives with no suspended save.
	ErrNoPendingConflict = errors.New("no pending schedule conflict")
)

// ValidationError rejects a save synchronously with a user-facing message.
// State is never mutated when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
