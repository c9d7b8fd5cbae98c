// Package bookapi provides a client for the BookAura book service.
package bookapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/lepinkainen/bookaura/internal/ratelimit"
)

const (
	// DefaultBaseURL is where the book service listens in a local setup.
	DefaultBaseURL = "http://localhost:8000"
	// DefaultRatePerSecond guards against accidental request bursts.
	DefaultRatePerSecond = 2.0
)

// Endpoint paths exposed by the book service.
const (
	EndpointSearch   = "/book_search"
	EndpointBookBot  = "/book_bot"
	EndpointEnriched = "/enriched_book_info"
)

var (
	// ErrEmptyQuery is returned when a search is attempted without a query.
	ErrEmptyQuery = errors.New("empty search query")
	// ErrEmptyQuestion is returned when a chat question is blank.
	ErrEmptyQuestion = errors.New("empty question")
	// ErrInvalidResponse marks a 2xx response whose body could not be decoded.
	ErrInvalidResponse = errors.New("invalid response body")
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to the book service. Each call issues exactly one request;
// failures are never retried.
type Client struct {
	baseURL     string
	httpClient  HTTPDoer
	rateLimiter *ratelimit.Limiter
}

// NewClient creates a new book service client.
// Without WithTimeout the underlying HTTP client has no timeout.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:     DefaultBaseURL,
		httpClient:  &http.Client{},
		rateLimiter: ratelimit.New("book service", DefaultRatePerSecond),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the service root the client posts to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(h HTTPDoer) Option {
	return func(client *Client) {
		if h != nil {
			client.httpClient = h
		}
	}
}

// WithBaseURL sets a custom base URL for the book service.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithTimeout replaces the HTTP client with one that gives up after d.
// Zero or negative durations leave the client untouched.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		if d > 0 {
			client.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithRateLimiter sets the limiter consulted before each request.
// Passing nil disables limiting.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		client.rateLimiter = limiter
	}
}
