package bookapi

import (
	stdErrors "errors"
	"fmt"

	"github.com/lepinkainen/bookaura/internal/errors"
)

// Messages shown to the user when a request does not succeed.
const (
	MsgEmptyQuery       = "Please enter a search query"
	MsgEmptyQuestion    = "Please enter a question"
	MsgSearchNotFound   = "No matching books found. Try a different search term."
	MsgBookBotNotFound  = "No answer found for this question. Try asking something different."
	MsgEnrichedNotFound = "No enriched information found for this book."
)

var failurePrefixes = map[string]string{
	EndpointSearch:   "Search failed",
	EndpointBookBot:  "Failed to get answer",
	EndpointEnriched: "Failed to fetch enriched info",
}

var notFoundMessages = map[string]string{
	EndpointSearch:   MsgSearchNotFound,
	EndpointBookBot:  MsgBookBotNotFound,
	EndpointEnriched: MsgEnrichedNotFound,
}

// UserMessage turns an error from one of the client calls into the single
// sentence shown to the user. It returns "" for a nil error.
func UserMessage(endpoint string, err error) string {
	if err == nil {
		return ""
	}

	switch {
	case stdErrors.Is(err, ErrEmptyQuery):
		return MsgEmptyQuery
	case stdErrors.Is(err, ErrEmptyQuestion):
		return MsgEmptyQuestion
	case errors.IsNotFound(err):
		if msg, ok := notFoundMessages[endpoint]; ok {
			return msg
		}
		return "Nothing found."
	}

	prefix, ok := failurePrefixes[endpoint]
	if !ok {
		prefix = "Request failed"
	}

	if code := errors.StatusCode(err); code != 0 {
		return fmt.Sprintf("%s: %d", prefix, code)
	}
	if stdErrors.Is(err, ErrInvalidResponse) {
		return prefix + ": invalid response from the book service"
	}
	if errors.IsRequestFailed(err) {
		return prefix + ": could not reach the book service"
	}
	return prefix + ": " + err.Error()
}
