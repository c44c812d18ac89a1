package service

import (
	"errors"
	"fmt"

	"github.com/timesheet-api/internal/validation"
)

// ErrNotFound is returned when a record id does not resolve
var ErrNotFound = errors.New("not found")

// ErrConfirmationRequired is returned when a week totalling under the
// standard 40 hours is submitted without the explicit acknowledgment
var ErrConfirmationRequired = errors.New("total hours below the standard work week; confirmation required")

// ValidationFailure carries the field-level errors that blocked a
// mutation
type ValidationFailure struct {
	Errors []validation.ValidationError
}

func (e *ValidationFailure) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation failed: %s", e.Errors[0].Message)
	}
	return fmt.Sprintf("validation failed with %d errors", len(e.Errors))
}
