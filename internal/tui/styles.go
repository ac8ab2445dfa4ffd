package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent      = lipgloss.Color("#8B5CF6")
	colorAccentSoft  = lipgloss.Color("#C4B5FD")
	colorMuted       = lipgloss.Color("#9CA3AF")
	colorSuccess     = lipgloss.Color("#22C55E")
	colorDestructive = lipgloss.Color("#EF4444")
	colorWarning     = lipgloss.Color("#F59E0B")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	boldStyle  = lipgloss.NewStyle().Bold(true)

	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(colorMuted)
	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorAccent)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Width(18).
			Align(lipgloss.Center).
			Padding(0, 1)
	popularCardStyle  = cardStyle.BorderForeground(colorAccent)
	selectedCardStyle = cardStyle.
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(colorAccentSoft)
	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorAccent).
			Padding(0, 1)
	priceStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccentSoft)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2).
			Width(56)
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Width(30).
			Padding(0, 1)
	focusedInputStyle = inputStyle.BorderForeground(colorAccent)
	noteStyle         = lipgloss.NewStyle().Foreground(colorWarning)
	successStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)

	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSuccess).
			Padding(0, 1)
	destructiveToastStyle = toastStyle.BorderForeground(colorDestructive)

	footerStyle = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)
)
