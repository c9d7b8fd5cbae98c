package errors

import (
	stdErrors "errors"
	"fmt"
)

// RequestFailedError covers every failed call that is not a 404: non-2xx
// statuses and transport errors. StatusCode is 0 when no response arrived.
type RequestFailedError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *RequestFailedError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: request failed (HTTP %d): %v", e.Endpoint, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: request failed (HTTP %d)", e.Endpoint, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: request failed: %v", e.Endpoint, e.Err)
	default:
		return fmt.Sprintf("%s: request failed", e.Endpoint)
	}
}

func (e *RequestFailedError) Unwrap() error {
	return e.Err
}

// NewStatusError creates a RequestFailedError for an unexpected HTTP status.
// detail is the (possibly empty) body the service sent back.
func NewStatusError(endpoint string, statusCode int, detail string) *RequestFailedError {
	var err error
	if detail != "" {
		err = stdErrors.New(detail)
	}
	return &RequestFailedError{Endpoint: endpoint, StatusCode: statusCode, Err: err}
}

// NewTransportError creates a RequestFailedError for a call that never got a response.
func NewTransportError(endpoint string, err error) *RequestFailedError {
	return &RequestFailedError{Endpoint: endpoint, Err: err}
}

// IsRequestFailed reports whether err is a RequestFailedError (even when wrapped).
func IsRequestFailed(err error) bool {
	var failed *RequestFailedError
	return stdErrors.As(err, &failed)
}

// StatusCode returns the HTTP status carried by err, or 0 when there is none.
func StatusCode(err error) int {
	var failed *RequestFailedError
	if stdErrors.As(err, &failed) {
		return failed.StatusCode
	}
	if IsNotFound(err) {
		return 404
	}
	return 0
}
