package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/bookaura/internal/bookapi"
)

type feature struct {
	title       string
	description string
}

var landingFeatures = []feature{
	{"Smart Search", "Find books based on your interests, mood, or specific topics."},
	{"Enriched Book Details", "Author, publication date, target audience and similar books."},
	{"Literary Expert Chat", "Ask the assistant about themes, relevance and comparisons."},
}

var learnMoreFeatures = []feature{
	{"Intelligent Book Discovery", "Queries are matched semantically, beyond simple keyword matching."},
	{"AI-Powered Literary Expert", "Chat about a specific book for analysis and interpretation."},
	{"Enriched Book Information", "Author information, publication dates, tags, target audience and curated metadata."},
}

var learnMoreEndpoints = []feature{
	{"POST " + bookapi.EndpointSearch, "Semantic search for books based on user queries"},
	{"POST " + bookapi.EndpointBookBot, "Chat with AI literary expert about specific books"},
	{"POST " + bookapi.EndpointEnriched, "Get comprehensive book metadata and details"},
}

// landingModel is the welcome screen. Enter takes the user to discovery.
type landingModel struct {
	router *Router
}

func (m landingModel) Update(msg tea.Msg) (landingModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "g":
			m.router.Navigate(ViewDiscover)
		case "l":
			m.router.Navigate(ViewLearnMore)
		}
	}
	return m, nil
}

func (m landingModel) View() string {
	header := headerStyle.Render("BookAura - AI-Powered Book Discovery")
	body := renderFeatures(landingFeatures)
	help := helpStyle.Render("Enter get started | l learn more | 1/2/3 switch view | q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}

// learnMoreModel describes the service and its endpoints.
type learnMoreModel struct {
	router  *Router
	baseURL string
}

func (m learnMoreModel) Update(msg tea.Msg) (learnMoreModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		m.router.Navigate(ViewDiscover)
	}
	return m, nil
}

func (m learnMoreModel) View() string {
	header := headerStyle.Render("How BookAura works")
	features := renderFeatures(learnMoreFeatures)

	endpointsHeader := labelStyle.Render(fmt.Sprintf("API endpoints at %s", m.baseURL))
	endpoints := renderFeatures(learnMoreEndpoints)

	categories := labelStyle.Render(fmt.Sprintf("%d categories", len(bookapi.Categories))) + "\n" +
		cardBodyStyle.Render(strings.Join(bookapi.Categories, ", "))

	help := helpStyle.Render("Enter start searching | 1/2/3 switch view | q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, features, endpointsHeader, endpoints, categories, help)
}

func renderFeatures(features []feature) string {
	lines := make([]string, 0, len(features))
	for _, f := range features {
		lines = append(lines, cardTitleStyle.Render(f.title)+"\n  "+cardBodyStyle.Render(f.description))
	}
	return strings.Join(lines, "\n") + "\n"
}
