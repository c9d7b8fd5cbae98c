package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/bookaura/internal/bookapi"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 20
)

type bookItem struct {
	bookapi.Book
}

func (i bookItem) Title() string {
	return i.BookName
}

func (i bookItem) FilterValue() string {
	return i.BookName
}

func (i bookItem) Description() string {
	return i.Summary
}

type itemStyles struct {
	normal         lipgloss.Style
	selected       lipgloss.Style
	categoryStyle  lipgloss.Style
	titleStyle     lipgloss.Style
	relevanceStyle lipgloss.Style
	summaryStyle   lipgloss.Style
}

func newItemStyles() itemStyles {
	asciiBorder := lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	container := lipgloss.NewStyle().
		Border(asciiBorder).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237"))

	return itemStyles{
		normal:   container,
		selected: selected,
		categoryStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110")),
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		relevanceStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")),
		summaryStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("248")),
	}
}

type bookDelegate struct {
	styles itemStyles
}

func newDelegate() bookDelegate {
	return bookDelegate{styles: newItemStyles()}
}

func (d bookDelegate) Height() int                         { return 5 }
func (d bookDelegate) Spacing() int                        { return 0 }
func (d bookDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d bookDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	book, ok := item.(bookItem)
	if !ok {
		return
	}

	width := m.Width() - 4
	categoryLine := d.styles.categoryStyle.Render(fmt.Sprintf("[%s]", strings.ToUpper(book.Category)))
	titleLine := d.styles.titleStyle.Render(truncate(book.BookName, width))
	relevanceLine := d.styles.relevanceStyle.Render("Relevance " + bookapi.FormatRelevance(book.Relevance))
	summaryLine := d.styles.summaryStyle.Render(truncate(book.Summary, width))

	content := lipgloss.JoinVertical(lipgloss.Left, categoryLine, titleLine, relevanceLine, summaryLine)

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(content))
}

func newBookList() list.Model {
	l := list.New(nil, newDelegate(), defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()
	return l
}

func bookItems(books []bookapi.Book) []list.Item {
	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = bookItem{Book: b}
	}
	return items
}

func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	runes := []rune(value)
	if width <= 0 || len(runes) <= width {
		return value
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

func clamp(defaultValue, available, minimum int) int {
	width := defaultValue
	if available > 0 && available < defaultValue {
		width = available
	}
	if width < minimum {
		width = minimum
	}
	return width
}
