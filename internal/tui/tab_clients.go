package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ankadash/internal/cli"
	"ankadash/internal/model"
	"ankadash/internal/tui/components"
	"ankadash/internal/tui/theme"
)

// renderClients is the Clientes tab: the book of clients ranked by
// invested total, plus the active ratio.
func (a App) renderClients(width int) string {
	t := theme.Active

	clients := make([]model.Client, len(a.snap.Clients))
	copy(clients, a.snap.Clients)
	sort.Slice(clients, func(i, j int) bool {
		return a.totals[clients[i].ID] > a.totals[clients[j].ID]
	})

	active := 0
	for _, c := range clients {
		if c.IsActive {
			active++
		}
	}
	ratio := 0.0
	if len(clients) > 0 {
		ratio = float64(active) / float64(len(clients))
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	activeStyle := lipgloss.NewStyle().Foreground(t.Green)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	inner := components.CardInnerWidth(width)
	nameW := inner - 40
	if nameW < 16 {
		nameW = 16
	}

	var b strings.Builder
	b.WriteString(components.RatioBar("Clientes ativos", ratio, 16, inner-26))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %-10s %14s", nameW, "Nome", "Status", "Investido")))
	b.WriteString("\n")

	shown := clients
	maxRows := a.height - 14
	if maxRows > 0 && len(shown) > maxRows {
		shown = shown[:maxRows]
	}
	for _, c := range shown {
		name := c.Name
		if len(name) > nameW {
			name = name[:nameW-1] + "…"
		}
		status := activeStyle.Render(fmt.Sprintf("%-10s", cli.FormatActive(c.IsActive)))
		if !c.IsActive {
			status = inactiveStyle.Render(fmt.Sprintf("%-10s", cli.FormatActive(c.IsActive)))
		}
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s ", nameW, name)))
		b.WriteString(status)
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%14s", cli.FormatCurrencyBRL(a.totals[c.ID]))))
		b.WriteString("\n")
	}
	if len(shown) < len(clients) {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("… e mais %d clientes", len(clients)-len(shown))))
		b.WriteString("\n")
	}

	return components.ContentCard(
		fmt.Sprintf("Clientes (%s)", cli.FormatCount(int64(len(clients)))),
		strings.TrimRight(b.String(), "\n"),
		width,
	)
}
