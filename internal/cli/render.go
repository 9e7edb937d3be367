package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette matching the web dashboard (slate surfaces, emerald accents).
var (
	ColorBorder  = lipgloss.Color("#1E293B")
	ColorTextDim = lipgloss.Color("#475569")
	ColorMuted   = lipgloss.Color("#64748B")
	ColorText    = lipgloss.Color("#E2E8F0")
	ColorGreen   = lipgloss.Color("#22C55E")
	ColorRed     = lipgloss.Color("#EF4444")
	ColorCyan    = lipgloss.Color("#06B6D4")
	ColorAmber   = lipgloss.Color("#EAB308")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan)
	cellStyle   = lipgloss.NewStyle().Foreground(ColorText)
	frameStyle  = lipgloss.NewStyle().Foreground(ColorTextDim)
	noteStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Table is a bordered text table for command output. Columns after the
// first are right-aligned unless LeftAlign marks them otherwise.
type Table struct {
	Title     string
	Headers   []string
	Rows      [][]string
	LeftAlign map[int]bool
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(58).
		Align(lipgloss.Center).
		Padding(0, 1)
	return box.Render(titleStyle.Render(title))
}

// RenderNote renders a muted single-line notice (stale data, hints).
func RenderNote(text string) string {
	return noteStyle.Render("  " + text)
}

func columnWidths(t Table) []int {
	cols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func renderRule(widths []int, left, mid, right string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return frameStyle.Render(left + strings.Join(parts, mid) + right)
}

func (t Table) renderRow(widths []int, cells []string, style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(frameStyle.Render("│"))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := w - lipgloss.Width(cell)
		if pad < 0 {
			pad = 0
		}
		if i == 0 || t.LeftAlign[i] {
			b.WriteString(style.Render(" " + cell + strings.Repeat(" ", pad) + " "))
		} else {
			b.WriteString(style.Render(" " + strings.Repeat(" ", pad) + cell + " "))
		}
		b.WriteString(frameStyle.Render("│"))
	}
	return b.String()
}

// RenderTable renders a bordered table with headers and rows. A row
// of the single cell "---" draws a separator rule.
func RenderTable(t Table) string {
	if len(t.Headers) == 0 && len(t.Rows) == 0 {
		return ""
	}
	widths := columnWidths(t)

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}
	b.WriteString(renderRule(widths, "╭", "┬", "╮") + "\n")
	if len(t.Headers) > 0 {
		b.WriteString(t.renderRow(widths, t.Headers, headerStyle) + "\n")
		b.WriteString(renderRule(widths, "├", "┼", "┤") + "\n")
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(renderRule(widths, "├", "┼", "┤") + "\n")
			continue
		}
		b.WriteString(t.renderRow(widths, row, cellStyle) + "\n")
	}
	b.WriteString(renderRule(widths, "╰", "┴", "╯") + "\n")
	return b.String()
}

// RenderSparkline draws a unicode block sparkline for a value series.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	blocks := []rune("▁▂▃▄▅▆▇█")

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}

// RenderBar draws a horizontal bar scaled against maxValue, followed by
// the formatted value. Used for flow and mix breakdowns.
func RenderBar(value, maxValue float64, width int, color lipgloss.Color, formatted string) string {
	barLen := 0
	if maxValue > 0 && value > 0 {
		barLen = int(value / maxValue * float64(width))
		if barLen > width {
			barLen = width
		}
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
	return fmt.Sprintf("%s %s", bar, noteStyle.Render(formatted))
}
