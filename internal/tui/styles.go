package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")). // bright blue
			PaddingBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10")) // bright green

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")) // white

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")) // gray

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")) // bright green

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			PaddingTop(1)
)
