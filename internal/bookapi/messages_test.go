package bookapi

import (
	"errors"
	"fmt"
	"testing"

	bookerrors "github.com/lepinkainen/bookaura/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	transport := bookerrors.NewTransportError("", errors.New("connection refused"))

	tests := []struct {
		name     string
		endpoint string
		err      error
		want     string
	}{
		{"nil", EndpointSearch, nil, ""},
		{"empty query", EndpointSearch, ErrEmptyQuery, "Please enter a search query"},
		{"empty question", EndpointBookBot, ErrEmptyQuestion, "Please enter a question"},
		{"search 404", EndpointSearch, bookerrors.NewNotFoundError(EndpointSearch), "No matching books found. Try a different search term."},
		{"bot 404", EndpointBookBot, bookerrors.NewNotFoundError(EndpointBookBot), "No answer found for this question. Try asking something different."},
		{"enriched 404", EndpointEnriched, bookerrors.NewNotFoundError(EndpointEnriched), "No enriched information found for this book."},
		{"wrapped 404", EndpointEnriched, fmt.Errorf("fetch: %w", bookerrors.NewNotFoundError(EndpointEnriched)), "No enriched information found for this book."},
		{"search 500", EndpointSearch, bookerrors.NewStatusError(EndpointSearch, 500, ""), "Search failed: 500"},
		{"bot 503", EndpointBookBot, bookerrors.NewStatusError(EndpointBookBot, 503, "x"), "Failed to get answer: 503"},
		{"enriched 400", EndpointEnriched, bookerrors.NewStatusError(EndpointEnriched, 400, ""), "Failed to fetch enriched info: 400"},
		{"transport", EndpointSearch, transport, "Search failed: could not reach the book service"},
		{"invalid body", EndpointBookBot, bookerrors.NewTransportError(EndpointBookBot, fmt.Errorf("%w: eof", ErrInvalidResponse)), "Failed to get answer: invalid response from the book service"},
		{"unknown endpoint", "/other", bookerrors.NewStatusError("/other", 500, ""), "Request failed: 500"},
		{"not a request failure", EndpointSearch, errors.New("failed to encode request"), "Search failed: failed to encode request"},
		{"unknown endpoint 404", "/other", bookerrors.NewNotFoundError("/other"), "Nothing found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.endpoint, tt.err))
		})
	}
}
