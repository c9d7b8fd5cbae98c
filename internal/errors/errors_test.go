package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("/book_bot")

	if err.Error() != "/book_bot: not found" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "/book_bot: not found")
	}

	if !IsNotFound(err) {
		t.Fatalf("IsNotFound returned false for NotFoundError")
	}

	wrapped := fmt.Errorf("asking: %w", err)
	if !IsNotFound(wrapped) {
		t.Fatalf("IsNotFound returned false for wrapped NotFoundError")
	}

	if IsRequestFailed(err) {
		t.Fatalf("IsRequestFailed returned true for NotFoundError")
	}
}

func TestStatusError(t *testing.T) {
	err := NewStatusError("/book_search", 500, "boom")

	expected := "/book_search: request failed (HTTP 500): boom"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsRequestFailed(stdErrors.Join(err)) {
		t.Fatalf("IsRequestFailed returned false for wrapped RequestFailedError")
	}

	if got := StatusCode(fmt.Errorf("wrapped: %w", err)); got != 500 {
		t.Fatalf("StatusCode = %d, want 500", got)
	}
}

func TestStatusErrorWithoutDetail(t *testing.T) {
	err := NewStatusError("/book_search", 502, "")

	if err.Error() != "/book_search: request failed (HTTP 502)" {
		t.Fatalf("Error message = %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("Unwrap = %v, want nil", err.Unwrap())
	}
}

func TestTransportError(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := NewTransportError("/enriched_book_info", cause)

	expected := "/enriched_book_info: request failed: connection refused"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !stdErrors.Is(err, cause) {
		t.Fatalf("errors.Is did not find the transport cause")
	}

	if got := StatusCode(err); got != 0 {
		t.Fatalf("StatusCode = %d, want 0", got)
	}
}

func TestStatusCodeForOtherErrors(t *testing.T) {
	if got := StatusCode(NewNotFoundError("/book_bot")); got != 404 {
		t.Fatalf("StatusCode = %d, want 404", got)
	}
	if got := StatusCode(stdErrors.New("plain")); got != 0 {
		t.Fatalf("StatusCode = %d, want 0", got)
	}
	if got := StatusCode(nil); got != 0 {
		t.Fatalf("StatusCode = %d, want 0", got)
	}
}

func TestRequestFailedErrorZeroValue(t *testing.T) {
	err := &RequestFailedError{Endpoint: "/x"}
	if err.Error() != "/x: request failed" {
		t.Fatalf("Error message = %q", err.Error())
	}
}
