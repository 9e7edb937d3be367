package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ankadash/internal/cli"
	"ankadash/internal/report"
	"ankadash/internal/tui/components"
	"ankadash/internal/tui/theme"
)

// renderFlow is the Fluxo tab: monthly inflow and outflow side by side,
// with the net for the filtered period.
func (a App) renderFlow(width int) string {
	t := theme.Active

	if len(a.flow) == 0 {
		return components.ContentCard("Captação",
			lipgloss.NewStyle().Foreground(t.TextDim).Render("Sem movimentações no período"), width)
	}

	inner := components.CardInnerWidth(width)
	barW := (inner - 28) / 2
	if barW < 8 {
		barW = 8
	}

	maxVal := 0.0
	for _, p := range a.flow {
		if p.Inflow > maxVal {
			maxVal = p.Inflow
		}
		if p.Outflow > maxVal {
			maxVal = p.Outflow
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	inStyle := lipgloss.NewStyle().Foreground(t.Green)
	outStyle := lipgloss.NewStyle().Foreground(t.Red)
	netStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var b strings.Builder
	for _, p := range a.flow {
		inFill := int(p.Inflow / maxVal * float64(barW))
		outFill := int(p.Outflow / maxVal * float64(barW))

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-7s", p.Label)))
		b.WriteString(outStyle.Render(strings.Repeat(" ", barW-outFill) + strings.Repeat("█", outFill)))
		b.WriteString(labelStyle.Render("│"))
		b.WriteString(inStyle.Render(strings.Repeat("█", inFill) + strings.Repeat(" ", barW-inFill)))
		b.WriteString(netStyle.Render(fmt.Sprintf(" %14s", cli.FormatCurrencyBRL(p.Inflow-p.Outflow))))
		b.WriteString("\n")
	}

	totals := report.SummarizeMovements(report.FilterMovements(a.snap.Movements, a.month))
	b.WriteString("\n")
	b.WriteString(inStyle.Render(fmt.Sprintf("Entradas %s", cli.FormatCurrencyBRL(totals.Deposits))))
	b.WriteString(labelStyle.Render("   "))
	b.WriteString(outStyle.Render(fmt.Sprintf("Saídas %s", cli.FormatCurrencyBRL(totals.Withdrawals))))
	b.WriteString(labelStyle.Render("   "))
	b.WriteString(netStyle.Render(fmt.Sprintf("Líquido %s", cli.FormatCurrencyBRL(totals.Net))))

	return components.ContentCard("Captação mensal  (saídas ◂ │ ▸ entradas)", b.String(), width)
}
