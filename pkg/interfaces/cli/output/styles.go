package output

import "github.com/charmbracelet/lipgloss"

// Styles collects the lipgloss styles used by the renderer.
type Styles struct {
	Heading  lipgloss.Style
	Menu     lipgloss.Style
	Warning  lipgloss.Style
	Total    lipgloss.Style
	Farewell lipgloss.Style
}

// DefaultStyles returns the standard terminal styling.
func DefaultStyles() Styles {
	return Styles{
		Heading:  lipgloss.NewStyle().Bold(true),
		Menu:     lipgloss.NewStyle().Faint(true),
		Warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Total:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Farewell: lipgloss.NewStyle().Italic(true),
	}
}
