package bookapi

import (
	"context"
	"strings"
)

// Ask sends a single question about a book to the chat assistant.
func (c *Client) Ask(ctx context.Context, req AskRequest) (string, error) {
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		return "", ErrEmptyQuestion
	}

	var resp askResponse
	if err := c.postJSON(ctx, EndpointBookBot, req, &resp); err != nil {
		return "", err
	}
	return resp.Answer, nil
}
