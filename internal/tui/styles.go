package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sebastiantruijens/moviefinder/internal/theme"
)

// Styling constants
var (
	// Colors
	primaryColor   = lipgloss.Color(theme.Primary)
	secondaryColor = lipgloss.Color(theme.Cream)
	accentColor    = lipgloss.Color(theme.Accent)
	dimColor       = lipgloss.Color(theme.Dim)
	chipColor      = lipgloss.Color(theme.Dark)

	// Text styles
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	normalTextStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	dimTextStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	highlightedTextStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Empty)).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)).
			Bold(true)

	// Tab bar
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondaryColor).
			Background(primaryColor).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(dimColor).
				Padding(0, 2)

	// Component styles
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	focusedInputStyle = inputStyle.
				BorderForeground(primaryColor)

	chipStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Background(chipColor).
			Padding(0, 1)

	selectedChipStyle = chipStyle.
				Background(primaryColor).
				Bold(true)

	actionStyle = lipgloss.NewStyle().
			Foreground(chipColor).
			Background(primaryColor).
			Padding(0, 1)

	detailsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)
)
