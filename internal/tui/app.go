package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/bookaura/internal/output"
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

// Options configures the interactive application.
type Options struct {
	// Start is the first view shown. Defaults to the landing page.
	Start View
	// DefaultCategory preselects a category filter on the discover view.
	DefaultCategory string
	// BaseURL is displayed on the learn more page.
	BaseURL string
	// Markdown renders bot answers and enrichment. Nil falls back to plain text.
	Markdown *output.Markdown
}

// Model is the root bubbletea model. It routes messages to the active view.
type Model struct {
	svc      Service
	opts     Options
	router   *Router
	landing  landingModel
	discover *discoverModel
	learn    learnMoreModel
	// shown is the view rendered after the last update.
	shown View

	width, height int
}

// New creates the root model.
func New(svc Service, opts Options) *Model {
	router := NewRouter(opts.Start)
	return &Model{
		svc:      svc,
		opts:     opts,
		router:   router,
		landing:  landingModel{router: router},
		discover: newDiscoverModel(svc, router, opts.Markdown, opts.DefaultCategory),
		learn:    learnMoreModel{router: router, baseURL: opts.BaseURL},
		shown:    router.Active(),
	}
}

// Run starts the interactive application and blocks until the user quits.
func Run(svc Service, opts Options) error {
	_, err := runProgram(New(svc, opts))
	if err != nil {
		return fmt.Errorf("running interactive browser: %w", err)
	}
	return nil
}

// Router exposes the navigation state.
func (m *Model) Router() *Router {
	return m.router
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if active := m.router.Active(); active != m.shown {
		slog.Debug("Navigated", "from", m.shown, "to", active)
		if m.shown == ViewDiscover {
			m.resetDiscover()
		}
		m.shown = active
	}
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.discover.SetSize(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return tea.Quit
		}
		capturing := m.router.Is(ViewDiscover) && m.discover.Capturing()
		if !capturing {
			switch msg.String() {
			case "q":
				return tea.Quit
			case "1", "2", "3":
				views := Views()
				m.router.Navigate(views[int(msg.Runes[0]-'1')])
				return nil
			case "tab":
				// Tab belongs to the discover view for switching focus
				if !m.router.Is(ViewDiscover) {
					m.router.Navigate(nextView(m.router.Active()))
					return nil
				}
			}
		}
	}

	// Async results always go to the discover view; it drops what it no
	// longer expects.
	switch msg.(type) {
	case searchResultMsg, answerMsg, enrichResultMsg:
		return m.discover.Update(msg)
	}

	var cmd tea.Cmd
	switch m.router.Active() {
	case ViewLanding:
		m.landing, cmd = m.landing.Update(msg)
	case ViewDiscover:
		cmd = m.discover.Update(msg)
	case ViewLearnMore:
		m.learn, cmd = m.learn.Update(msg)
	}
	return cmd
}

func nextView(v View) View {
	views := Views()
	for i, candidate := range views {
		if candidate == v {
			return views[(i+1)%len(views)]
		}
	}
	return ViewLanding
}

// resetDiscover replaces the discover view after the user leaves it so the
// next visit starts clean.
func (m *Model) resetDiscover() {
	m.discover.Dispose()
	m.discover = newDiscoverModel(m.svc, m.router, m.opts.Markdown, m.opts.DefaultCategory)
	if m.width > 0 {
		m.discover.SetSize(m.width, m.height)
	}
}

func (m *Model) View() string {
	var body string
	switch m.router.Active() {
	case ViewLanding:
		body = m.landing.View()
	case ViewDiscover:
		body = m.discover.View()
	case ViewLearnMore:
		body = m.learn.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.navBar(), body)
}

func (m *Model) navBar() string {
	tabs := make([]string, 0, len(Views()))
	for i, v := range Views() {
		label := fmt.Sprintf("%d %s", i+1, v)
		if m.router.Is(v) {
			tabs = append(tabs, navActiveStyle.Render(label))
		} else {
			tabs = append(tabs, navStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}
