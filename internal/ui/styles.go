// Package ui is the interactive terminal front end of the task list.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#8BC34A")
	muted  = lipgloss.Color("#7a869a")
	danger = lipgloss.Color("#e53935")
)

// Styles holds the lipgloss styles used by the view.
type Styles struct {
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Help     lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	TaskID   lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Heading:  lipgloss.NewStyle().Bold(true),
		Help:     lipgloss.NewStyle().Foreground(muted),
		Cursor:   lipgloss.NewStyle().Foreground(accent),
		Selected: lipgloss.NewStyle().Bold(true),
		TaskID:   lipgloss.NewStyle().Foreground(muted),
		Error:    lipgloss.NewStyle().Foreground(danger),
	}
}
