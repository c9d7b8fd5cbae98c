package tui

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lepinkainen/bookaura/internal/bookapi"
	"github.com/lepinkainen/bookaura/internal/enrichment"
)

// Service is the part of the book service client the views use.
type Service interface {
	Search(ctx context.Context, req bookapi.SearchRequest) ([]bookapi.Book, error)
	Ask(ctx context.Context, req bookapi.AskRequest) (string, error)
	Enrich(ctx context.Context, book bookapi.Book) (enrichment.Record, error)
}

var requestSeq atomic.Uint64

// nextID returns a process-wide unique id used to match responses to the
// component that asked for them.
func nextID() uint64 {
	return requestSeq.Add(1)
}

type searchResultMsg struct {
	id    uint64
	books []bookapi.Book
	err   error
}

type answerMsg struct {
	id     uint64
	answer string
	err    error
}

type enrichResultMsg struct {
	id     uint64
	record enrichment.Record
	err    error
}

// Requests are never cancelled; a response whose id no longer matches is
// dropped by the receiving view.

func searchCmd(svc Service, id uint64, req bookapi.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		books, err := svc.Search(context.Background(), req)
		return searchResultMsg{id: id, books: books, err: err}
	}
}

func askCmd(svc Service, id uint64, req bookapi.AskRequest) tea.Cmd {
	return func() tea.Msg {
		answer, err := svc.Ask(context.Background(), req)
		return answerMsg{id: id, answer: answer, err: err}
	}
}

func enrichCmd(svc Service, id uint64, book bookapi.Book) tea.Cmd {
	return func() tea.Msg {
		record, err := svc.Enrich(context.Background(), book)
		return enrichResultMsg{id: id, record: record, err: err}
	}
}
