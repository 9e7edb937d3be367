package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"ankadash/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// the active period and data freshness on the right.
func RenderStatusBar(width int, period, dataNote string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	left := " [m]ês  [r]ecarregar  [q] sair"
	right := fmt.Sprintf("Período: %s ", period)
	if dataNote != "" {
		right = fmt.Sprintf("%s  %s", dataNote, right)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
