package cli

import (
	"fmt"

	"ankadash/internal/model"
	"ankadash/internal/report"
)

// KPICards shapes computed KPI values into the four display tuples the
// dashboard renders. Titles switch with the KPI mode: trend cards
// compare months, period cards describe the filtered month only.
func KPICards(v report.KPIValues) []model.KPI {
	inflowTitle := "Entradas do mês"
	netTitle := "Saldo líquido"
	if v.Filtered {
		inflowTitle = "Entradas no período"
		netTitle = "Saldo líquido do período"
	}

	return []model.KPI{
		{
			Title:      "Clientes ativos",
			Value:      fmt.Sprintf("%d/%d", v.ActiveClients, v.TotalClients),
			Difference: v.ActiveRatio,
		},
		{
			Title:      "Total investido",
			Value:      FormatCurrencyBRL(v.TotalInvested),
			Difference: v.CustodyDelta,
		},
		{
			Title:      inflowTitle,
			Value:      FormatCurrencyBRL(v.Inflow),
			Difference: v.InflowDelta,
		},
		{
			Title:      netTitle,
			Value:      FormatCurrencyBRL(v.Net),
			Difference: v.NetDelta,
		},
	}
}
