package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Endpoint paths served by BookService.
const (
	SearchPath   = "/book_search"
	BookBotPath  = "/book_bot"
	EnrichedPath = "/enriched_book_info"
)

// Reply is a canned response for one endpoint.
type Reply struct {
	Status int
	Body   any
}

// RecordedRequest is a request received by BookService.
type RecordedRequest struct {
	Path        string
	ContentType string
	Body        map[string]any
}

// BookService is a fake book service backed by httptest.
type BookService struct {
	Server *httptest.Server

	mu       sync.Mutex
	replies  map[string]Reply
	requests []RecordedRequest
	block    chan struct{}
}

// NewBookService starts a fake book service that answers 404 on every
// endpoint until a reply is registered. It is closed when the test ends.
func NewBookService(t *testing.T) *BookService {
	t.Helper()

	s := &BookService{replies: make(map[string]Reply)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(func() {
		s.Unblock()
		s.Server.Close()
	})
	return s
}

// URL returns the base URL of the fake service.
func (s *BookService) URL() string {
	return s.Server.URL
}

// Reply registers a JSON response for path.
func (s *BookService) Reply(path string, status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[path] = Reply{Status: status, Body: body}
}

// Block makes every request wait until Unblock is called.
func (s *BookService) Block() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.block == nil {
		s.block = make(chan struct{})
	}
}

// Unblock releases requests held by Block.
func (s *BookService) Unblock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.block != nil {
		close(s.block)
		s.block = nil
	}
}

// Requests returns a copy of every request received so far.
func (s *BookService) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *BookService) handle(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
	})
	reply, ok := s.replies[r.URL.Path]
	block := s.block
	s.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-r.Context().Done():
			return
		}
	}

	if r.Method != http.MethodPost {
		http.Error(w, `{"detail":"Method Not Allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	if !ok {
		reply = Reply{Status: http.StatusNotFound, Body: map[string]string{"detail": "Not Found"}}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	if reply.Body != nil {
		_ = json.NewEncoder(w).Encode(reply.Body)
	}
}
