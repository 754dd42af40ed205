package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#65a30d"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#a8a29e"))
	contentStyle    = lipgloss.NewStyle().Italic(true)
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0891b2"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
