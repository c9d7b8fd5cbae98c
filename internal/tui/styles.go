package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("214")
	mutedColor  = lipgloss.Color("244")
	errorColor  = lipgloss.Color("161")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	navStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("247"))

	navActiveStyle = navStyle.Copy().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110"))

	userMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	botLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("178"))

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254"))

	cardBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("248"))
)
