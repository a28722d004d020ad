// Package tui provides the terminal UI used for remote sessions,
// including SSH server support via Wish.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles for the recolor session view.
type Theme struct {
	Title      lipgloss.Style
	Prompt     lipgloss.Style
	Result     lipgloss.Style
	Miss       lipgloss.Style
	Notice     lipgloss.Style
	Help       lipgloss.Style
	HistoryDim lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Result:     lipgloss.NewStyle().Bold(true),
		Miss:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HistoryDim: lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
}

// Swatch renders a small color block for a hex code. Works for both
// 6-digit muted and 8-digit vivid codes; the alpha digits are dropped
// since terminals have no alpha channel.
func Swatch(hex string) string {
	if len(hex) >= 6 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#" + hex[:6])).
			Render("██")
	}
	return "  "
}
