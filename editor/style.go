package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text     lipgloss.Style
	EmptyRow lipgloss.Style
	Cursor   lipgloss.Style
	Status   lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:     lipgloss.NewStyle(),
		EmptyRow: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:   lipgloss.NewStyle().Reverse(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("237")),
	}
}
