package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/bookaura/internal/bookapi"
	"github.com/lepinkainen/bookaura/internal/enrichment"
	"github.com/lepinkainen/bookaura/internal/output"
)

type enrichState int

const (
	enrichLoading enrichState = iota
	enrichSuccess
	enrichFailure
)

func (s enrichState) String() string {
	switch s {
	case enrichLoading:
		return "loading"
	case enrichSuccess:
		return "success"
	case enrichFailure:
		return "failure"
	}
	return "unknown"
}

// enrichModel shows the enrichment for one book. It fetches once when
// opened; reopening it is the only way to fetch again.
type enrichModel struct {
	id      uint64
	book    bookapi.Book
	state   enrichState
	record  enrichment.Record
	message string
	spinner spinner.Model
	md      *output.Markdown
}

func newEnrichModel(svc Service, book bookapi.Book, md *output.Markdown) (*enrichModel, tea.Cmd) {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	m := &enrichModel{
		id:      nextID(),
		book:    book,
		state:   enrichLoading,
		spinner: sp,
		md:      md,
	}
	return m, tea.Batch(m.spinner.Tick, enrichCmd(svc, m.id, book))
}

func (m *enrichModel) handleResult(msg enrichResultMsg) {
	if m.state != enrichLoading {
		return
	}
	if msg.err != nil {
		slog.Warn("Enrichment failed", "book", m.book.BookName, "error", msg.err)
		m.state = enrichFailure
		m.message = bookapi.UserMessage(bookapi.EndpointEnriched, msg.err)
		return
	}
	m.state = enrichSuccess
	m.record = msg.record
}

func (m *enrichModel) updateSpinner(msg spinner.TickMsg) tea.Cmd {
	if m.state != enrichLoading {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *enrichModel) View() string {
	var body string
	switch m.state {
	case enrichLoading:
		body = m.spinner.View() + " Loading enriched information..."
	case enrichFailure:
		body = lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render("Error"),
			errorStyle.Render(m.message),
		)
	case enrichSuccess:
		body = lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render("Book Details"),
			m.md.Render(m.record.Markdown(m.book.BookName)),
		)
	}
	help := helpStyle.Render("Esc close")
	return overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, help))
}
