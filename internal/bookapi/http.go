package bookapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lepinkainen/bookaura/internal/errors"
)

const maxErrorBody = 512

// postJSON sends body to endpoint and decodes a 2xx response into target.
func (c *Client) postJSON(ctx context.Context, endpoint string, body, target any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", endpoint, err)
	}

	if !c.rateLimiter.Allow() {
		slog.Debug("Waiting for rate limiter", "limiter", c.rateLimiter.Name(), "endpoint", endpoint)
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return errors.NewTransportError(endpoint, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	slog.Debug("Posting to book service", "endpoint", endpoint, "bytes", len(payload))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewTransportError(endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	slog.Debug("Book service responded", "endpoint", endpoint, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode == http.StatusNotFound {
		return errors.NewNotFoundError(endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errors.NewStatusError(endpoint, resp.StatusCode, errorDetail(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.NewTransportError(endpoint, fmt.Errorf("%w: %v", ErrInvalidResponse, err))
	}

	return nil
}

// errorDetail extracts a FastAPI style {"detail": "..."} message, falling
// back to the trimmed body text.
func errorDetail(raw []byte) string {
	var payload struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if detail, ok := payload.Detail.(string); ok && detail != "" {
			return detail
		}
	}
	return strings.TrimSpace(string(raw))
}
