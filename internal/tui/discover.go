package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/bookaura/internal/bookapi"
	"github.com/lepinkainen/bookaura/internal/output"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusResults
)

// discoverModel is the search screen. It owns the chat and enrichment
// overlays for the selected book; at most one overlay is open at a time.
type discoverModel struct {
	svc    Service
	router *Router
	md     *output.Markdown

	input       textinput.Model
	categories  []string
	categoryIdx int
	results     list.Model
	books       []bookapi.Book
	focus       focusArea

	loading     bool
	searchID    uint64
	hasSearched bool
	errMsg      string
	spinner     spinner.Model

	chat   *chatModel
	enrich *enrichModel

	width, height int
}

func newDiscoverModel(svc Service, router *Router, md *output.Markdown, category string) *discoverModel {
	ti := textinput.New()
	ti.Placeholder = "What kind of book are you looking for?"
	ti.Prompt = "Search: "
	ti.CharLimit = 500
	ti.Width = defaultListWidth - 10
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	categories := append([]string{""}, bookapi.Categories...)
	categoryIdx := 0
	for i, c := range categories {
		if c == category {
			categoryIdx = i
		}
	}

	return &discoverModel{
		svc:         svc,
		router:      router,
		md:          md,
		input:       ti,
		categories:  categories,
		categoryIdx: categoryIdx,
		results:     newBookList(),
		spinner:     sp,
	}
}

// Category returns the selected category filter, "" for all.
func (m *discoverModel) Category() string {
	return m.categories[m.categoryIdx]
}

// Capturing reports whether key presses belong to this view rather than to
// global navigation.
func (m *discoverModel) Capturing() bool {
	return m.focus == focusInput || m.chat != nil || m.enrich != nil
}

func (m *discoverModel) SetSize(width, height int) {
	m.width, m.height = width, height
	m.results.SetSize(clamp(defaultListWidth, width-4, 40), clamp(defaultListHeight, height-12, 5))
	m.input.Width = clamp(defaultListWidth-10, width-14, 20)
	if m.chat != nil {
		m.chat.SetSize(width, height)
	}
}

func (m *discoverModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case searchResultMsg:
		m.handleSearchResult(msg)
		return nil

	case answerMsg:
		if m.chat == nil || m.chat.id != msg.id {
			slog.Debug("Dropping answer for closed chat", "id", msg.id)
			return nil
		}
		m.chat.handleAnswer(msg)
		return nil

	case enrichResultMsg:
		if m.enrich == nil || m.enrich.id != msg.id {
			slog.Debug("Dropping enrichment for closed view", "id", msg.id)
			return nil
		}
		m.enrich.handleResult(msg)
		return nil

	case spinner.TickMsg:
		return m.updateSpinners(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	if m.chat != nil {
		m.chat.input, cmd = m.chat.input.Update(msg)
		return cmd
	}
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *discoverModel) updateSpinners(msg spinner.TickMsg) tea.Cmd {
	var cmds []tea.Cmd
	if m.loading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.chat != nil {
		cmds = append(cmds, m.chat.updateSpinner(msg))
	}
	if m.enrich != nil {
		cmds = append(cmds, m.enrich.updateSpinner(msg))
	}
	return tea.Batch(cmds...)
}

func (m *discoverModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.chat != nil {
		if msg.String() == "esc" {
			m.chat = nil
			return nil
		}
		return m.chat.Update(msg)
	}

	if m.enrich != nil {
		switch msg.String() {
		case "esc", "q", "enter":
			m.enrich = nil
		}
		return nil
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleResultsKey(msg)
}

func (m *discoverModel) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return m.search()
	case "ctrl+n":
		m.categoryIdx = (m.categoryIdx + 1) % len(m.categories)
		return nil
	case "ctrl+p":
		m.categoryIdx = (m.categoryIdx - 1 + len(m.categories)) % len(m.categories)
		return nil
	case "esc":
		if len(m.books) == 0 && m.input.Value() == "" {
			m.router.Navigate(m.router.Previous())
			return nil
		}
		fallthrough
	case "down", "tab":
		if len(m.books) > 0 {
			m.focus = focusResults
			m.input.Blur()
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *discoverModel) handleResultsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "/", "tab", "esc":
		m.focus = focusInput
		return m.input.Focus()
	case "c":
		if book, ok := m.selected(); ok {
			var cmd tea.Cmd
			m.chat, cmd = newChatModel(m.svc, book, m.md)
			if m.width > 0 {
				m.chat.SetSize(m.width, m.height)
			}
			return cmd
		}
		return nil
	case "i", "enter":
		if book, ok := m.selected(); ok {
			var cmd tea.Cmd
			m.enrich, cmd = newEnrichModel(m.svc, book, m.md)
			return cmd
		}
		return nil
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return cmd
}

// search issues one request for the current query. It does nothing while a
// search is already running.
func (m *discoverModel) search() tea.Cmd {
	if m.loading {
		return nil
	}

	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.errMsg = bookapi.MsgEmptyQuery
		return nil
	}

	m.loading = true
	m.errMsg = ""
	m.hasSearched = true
	m.searchID = nextID()

	req := bookapi.SearchRequest{Query: query, Category: m.Category()}
	slog.Debug("Searching", "query", query, "category", req.Category)
	return tea.Batch(m.spinner.Tick, searchCmd(m.svc, m.searchID, req))
}

func (m *discoverModel) handleSearchResult(msg searchResultMsg) {
	if msg.id != m.searchID {
		slog.Debug("Dropping stale search result", "id", msg.id)
		return
	}
	m.loading = false

	if msg.err != nil {
		slog.Warn("Search failed", "error", msg.err)
		m.errMsg = bookapi.UserMessage(bookapi.EndpointSearch, msg.err)
		m.books = nil
		m.results.SetItems(nil)
		return
	}

	books := append([]bookapi.Book(nil), msg.books...)
	bookapi.SortByRelevance(books)
	m.books = books
	m.results.SetItems(bookItems(books))
	m.results.Select(0)
	if len(books) > 0 {
		m.focus = focusResults
		m.input.Blur()
	}
}

func (m *discoverModel) selected() (bookapi.Book, bool) {
	item, ok := m.results.SelectedItem().(bookItem)
	if !ok {
		return bookapi.Book{}, false
	}
	return item.Book, true
}

// Dispose abandons in-flight work and closes overlays. Responses that arrive
// afterwards no longer match any id and are dropped.
func (m *discoverModel) Dispose() {
	m.chat = nil
	m.enrich = nil
	m.loading = false
	m.searchID = 0
}

func (m *discoverModel) View() string {
	if m.chat != nil {
		return m.chat.View()
	}
	if m.enrich != nil {
		return m.enrich.View()
	}

	category := m.Category()
	if category == "" {
		category = "all categories"
	}

	parts := []string{
		headerStyle.Render("Discover your next favorite book"),
		m.input.View(),
		labelStyle.Render("Category: ") + cardBodyStyle.Render(category),
	}

	switch {
	case m.loading:
		parts = append(parts, m.spinner.View()+" Searching...")
	case m.errMsg != "":
		parts = append(parts, errorStyle.Render(m.errMsg))
	case m.hasSearched && len(m.books) == 0:
		parts = append(parts, cardBodyStyle.Render("Try adjusting your search terms or selecting a different category."))
	}

	if len(m.books) > 0 {
		parts = append(parts, labelStyle.Render(fmt.Sprintf("%d results", len(m.books))), m.results.View())
	}

	help := "Enter search | Ctrl+N/Ctrl+P category | Tab results | Esc back | Ctrl+C quit"
	if m.focus == focusResults {
		help = "Up/Down navigate | i details | c chat | / search | 1/2/3 switch view | q quit"
	}
	parts = append(parts, helpStyle.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
