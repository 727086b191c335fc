package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrForbidden marks an authorization failure: the actor exists but may
	// not perform the operation (non-creator delete, payer mismatch, etc).
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound marks a missing or soft-deleted entity.
	ErrNotFound = errors.New("not found")
)

// ValidationError is a client-caused failure: bad field, sum mismatch,
// unknown reference. The message is safe to return to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
