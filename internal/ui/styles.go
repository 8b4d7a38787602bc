package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles the screen renders with.
type Styles struct {
	Header    lipgloss.Style
	Summary   lipgloss.Style
	Cursor    lipgloss.Style
	Title     lipgloss.Style
	Completed lipgloss.Style
	Untitled  lipgloss.Style
	Edit      lipgloss.Style
	Toggle    lipgloss.Style
	Delete    lipgloss.Style
	Save      lipgloss.Style
	Help      lipgloss.Style
	Empty     lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Summary:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Title:     lipgloss.NewStyle(),
		Completed: lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8")),
		Untitled:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
		Edit:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		Toggle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		Delete:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Save:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Empty:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
	}
}
