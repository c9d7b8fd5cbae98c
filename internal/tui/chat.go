package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/bookaura/internal/bookapi"
	"github.com/lepinkainen/bookaura/internal/chat"
	"github.com/lepinkainen/bookaura/internal/output"
)

const (
	defaultChatWidth  = 72
	defaultChatHeight = 14
)

// chatModel is a conversation about one book. Only one question can be in
// flight at a time.
type chatModel struct {
	id         uint64
	svc        Service
	book       bookapi.Book
	md         *output.Markdown
	transcript *chat.Transcript
	input      textinput.Model
	viewport   viewport.Model
	spinner    spinner.Model
	waiting    bool
	errMsg     string
	suggestion int
}

func newChatModel(svc Service, book bookapi.Book, md *output.Markdown) (*chatModel, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = "Ask about this book... (Enter to send, Tab for a suggestion)"
	ti.Prompt = "| "
	ti.CharLimit = 1000
	ti.Width = defaultChatWidth - 4

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	m := &chatModel{
		id:         nextID(),
		svc:        svc,
		book:       book,
		md:         md,
		transcript: chat.NewTranscript(),
		input:      ti,
		viewport:   viewport.New(defaultChatWidth, defaultChatHeight),
		spinner:    sp,
		suggestion: -1,
	}
	m.refresh()
	return m, m.input.Focus()
}

func (m *chatModel) SetSize(width, height int) {
	width = clamp(defaultChatWidth, width-4, 30)
	height = clamp(defaultChatHeight, height-10, 4)
	m.viewport.Width = width
	m.viewport.Height = height
	m.input.Width = width - 4
	m.refresh()
}

func (m *chatModel) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return m.send()
	case "tab":
		m.suggestion = (m.suggestion + 1) % len(chat.SuggestedQuestions)
		m.input.SetValue(chat.SuggestedQuestions[m.suggestion])
		m.input.CursorEnd()
		return nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// send submits the current question unless one is already in flight.
func (m *chatModel) send() tea.Cmd {
	if m.waiting {
		return nil
	}
	question := strings.TrimSpace(m.input.Value())
	if question == "" {
		return nil
	}

	m.transcript.Append(chat.RoleUser, question)
	m.input.Reset()
	m.errMsg = ""
	m.waiting = true
	m.refresh()

	return tea.Batch(m.spinner.Tick, askCmd(m.svc, m.id, bookapi.NewAskRequest(m.book, question)))
}

func (m *chatModel) handleAnswer(msg answerMsg) {
	m.waiting = false
	if msg.err != nil {
		slog.Warn("Book bot request failed", "book", m.book.BookName, "error", msg.err)
		m.errMsg = bookapi.UserMessage(bookapi.EndpointBookBot, msg.err)
	} else {
		m.transcript.Append(chat.RoleBot, msg.answer)
	}
	m.refresh()
}

func (m *chatModel) updateSpinner(msg spinner.TickMsg) tea.Cmd {
	if !m.waiting {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	m.refresh()
	return cmd
}

func (m *chatModel) refresh() {
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

func (m *chatModel) renderMessages() string {
	messages := m.transcript.Messages()
	if len(messages) == 0 {
		var sb strings.Builder
		sb.WriteString(labelStyle.Render("Suggested questions") + "\n")
		for _, q := range chat.SuggestedQuestions {
			sb.WriteString(cardBodyStyle.Render("  - "+q) + "\n")
		}
		return sb.String()
	}

	var sb strings.Builder
	for _, msg := range messages {
		stamp := msg.Timestamp.Format("15:04")
		switch msg.Role {
		case chat.RoleUser:
			sb.WriteString(fmt.Sprintf("%s %s\n", userMessageStyle.Render(msg.Content), helpStyle.Copy().MarginTop(0).Render(stamp)))
		case chat.RoleBot:
			sb.WriteString(botLabelStyle.Render("Literary Expert") + " " + helpStyle.Copy().MarginTop(0).Render(stamp) + "\n")
			sb.WriteString(m.md.Render(msg.Content))
		}
		sb.WriteString("\n")
	}
	if m.waiting {
		sb.WriteString(m.spinner.View() + " Thinking...\n")
	}
	return sb.String()
}

func (m *chatModel) View() string {
	header := headerStyle.Render(fmt.Sprintf("Literary Expert - %s", m.book.BookName))
	parts := []string{header, m.viewport.View()}
	if m.errMsg != "" {
		parts = append(parts, errorStyle.Render(m.errMsg))
	}
	parts = append(parts, m.input.View())

	help := "Enter send | Tab suggestion | PgUp/PgDn scroll | Esc close"
	if m.waiting {
		help = "Waiting for an answer... | Esc close"
	}
	parts = append(parts, helpStyle.Render(help))
	return overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
