package pricing

import (
	"errors"
	"fmt"
)

var ErrInvalidRequest = errors.New("invalid comparison request")

// ValidationError names the offending query field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}
