package errors

import (
	stdErrors "errors"
	"fmt"
)

// NotFoundError is returned when the book service answers 404 for an endpoint.
type NotFoundError struct {
	Endpoint string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found", e.Endpoint)
}

// NewNotFoundError creates a NotFoundError for the given endpoint path.
func NewNotFoundError(endpoint string) *NotFoundError {
	return &NotFoundError{Endpoint: endpoint}
}

// IsNotFound reports whether err is a NotFoundError (even when wrapped).
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return stdErrors.As(err, &notFound)
}
