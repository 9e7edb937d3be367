package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ankadash/internal/cli"
	"ankadash/internal/tui/components"
	"ankadash/internal/tui/theme"
)

// renderOverview is the Panorama tab: KPI cards, custody evolution, and
// the allocation mix.
func (a App) renderOverview(width int) string {
	t := theme.Active

	metrics := make([]components.Metric, 0, len(a.kpis))
	for _, k := range a.kpis {
		metrics = append(metrics, components.Metric{
			Label: k.Title,
			Value: k.Value,
			Delta: cli.FormatDelta(k.Difference),
		})
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, width))
	b.WriteString("\n")

	custodyW := width * 3 / 5
	mixW := width - custodyW

	custodyBody := lipgloss.NewStyle().Foreground(t.TextDim).Render("Sem alocações no período")
	if len(a.custody) > 0 {
		values := make([]float64, len(a.custody))
		labels := make([]string, len(a.custody))
		for i, p := range a.custody {
			values[i] = p.Value
			labels[i] = p.Label
		}
		custodyBody = components.BarChart(values, labels, t.Accent, components.CardInnerWidth(custodyW), 8)
	}

	mixLabels := make([]string, len(a.mix))
	mixValues := make([]float64, len(a.mix))
	mixFormatted := make([]string, len(a.mix))
	for i, s := range a.mix {
		mixLabels[i] = s.Name
		mixValues[i] = s.Value
		mixFormatted[i] = cli.FormatCurrencyBRL(s.Value)
	}
	mixBody := components.HBarList(mixLabels, mixValues, mixFormatted, t.Cyan, components.CardInnerWidth(mixW))

	b.WriteString(components.CardRow([]string{
		components.ContentCard("Evolução de custódia", custodyBody, custodyW),
		components.ContentCard("Mix de alocação", mixBody, mixW),
	}))

	return b.String()
}
