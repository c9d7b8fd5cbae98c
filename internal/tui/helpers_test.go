package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/bookaura/internal/bookapi"
	"github.com/lepinkainen/bookaura/internal/enrichment"
)

type fakeService struct {
	mu sync.Mutex

	books     []bookapi.Book
	searchErr error
	answer    string
	askErr    error
	record    enrichment.Record
	enrichErr error

	searches []bookapi.SearchRequest
	asks     []bookapi.AskRequest
	enriched []bookapi.Book
}

func (f *fakeService) Search(_ context.Context, req bookapi.SearchRequest) ([]bookapi.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, req)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return append([]bookapi.Book(nil), f.books...), nil
}

func (f *fakeService) Ask(_ context.Context, req bookapi.AskRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.asks = append(f.asks, req)
	return f.answer, f.askErr
}

func (f *fakeService) Enrich(_ context.Context, book bookapi.Book) (enrichment.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enriched = append(f.enriched, book)
	if f.enrichErr != nil {
		return enrichment.Record{}, f.enrichErr
	}
	return f.record, nil
}

func (f *fakeService) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.searches)
}

// await runs cmd, expanding batches, and returns the first message of type T.
// Sub-commands run concurrently because cursor blinks and similar ticks
// block for a while before producing a message.
func await[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	require.NotNil(t, cmd, "expected a command")

	msgs := make(chan tea.Msg, 64)
	var run func(tea.Cmd)
	run = func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() {
			msg := c()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, sub := range batch {
					run(sub)
				}
				return
			}
			select {
			case msgs <- msg:
			default:
			}
		}()
	}
	run(cmd)

	timeout := time.After(2 * time.Second)
	for {
		select {
		case msg := <-msgs:
			if typed, ok := msg.(T); ok {
				return typed
			}
		case <-timeout:
			var zero T
			t.Fatalf("timed out waiting for %T", zero)
			return zero
		}
	}
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func ptr(v float64) *float64 {
	return &v
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
