package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ankadash/internal/cli"
	"ankadash/internal/report"
	"ankadash/internal/tui/components"
	"ankadash/internal/tui/theme"
)

// renderAssets is the Ativos tab: every registered asset with its
// allocated total under the current filter.
func (a App) renderAssets(width int) string {
	t := theme.Active

	allocated := make(map[int64]float64, len(a.snap.Assets))
	for _, s := range a.mix {
		allocated[s.AssetID] = s.Value
	}

	assets := a.snap.Assets
	sorted := make([]int, len(assets))
	for i := range sorted {
		sorted[i] = i
	}
	sort.Slice(sorted, func(x, y int) bool {
		return allocated[assets[sorted[x]].ID] > allocated[assets[sorted[y]].ID]
	})

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	tickerStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	inner := components.CardInnerWidth(width)
	nameW := inner - 38
	if nameW < 12 {
		nameW = 12
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-8s %-*s %-6s %14s", "Ticker", nameW, "Nome", "Bolsa", "Alocado")))
	b.WriteString("\n")

	for _, idx := range sorted {
		asset := assets[idx]
		name := asset.Name
		if len(name) > nameW {
			name = name[:nameW-1] + "…"
		}
		b.WriteString(tickerStyle.Render(fmt.Sprintf("%-8s ", asset.Ticker)))
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s ", nameW, name)))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-6s", asset.Exchange)))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%14s", cli.FormatCurrencyBRL(allocated[asset.ID]))))
		b.WriteString("\n")
	}
	if len(assets) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("Nenhum ativo cadastrado"))
	}

	total := report.TotalInvested(report.FilterAllocations(a.snap.Allocations, a.month))
	title := fmt.Sprintf("Ativos (%s)  Total %s",
		cli.FormatCount(int64(len(assets))), cli.FormatCurrencyBRL(total))

	return components.ContentCard(title, strings.TrimRight(b.String(), "\n"), width)
}
