package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ankadash/internal/cli"
	"ankadash/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Dashboard summary: KPIs, custody, flow, and mix",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	snap, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	month := monthFilter()
	allocs := report.FilterAllocations(snap.Allocations, month)
	movs := report.FilterMovements(snap.Movements, month)

	custody := report.CustodySeries(allocs)
	flow := report.FlowSeries(movs)
	mix := report.AllocationMix(allocs, snap.Assets)
	kpis := cli.KPICards(report.ComputeKPIs(snap.Clients, allocs, movs, month))

	title := "PANORAMA  Todos os períodos"
	if month != "" {
		title = fmt.Sprintf("PANORAMA  Mês %s", month)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	if snap.Stale {
		fmt.Println(cli.RenderNote(fmt.Sprintf("Dados locais de %s (backend indisponível)", snap.FetchedAt.Format("02/01/2006"))))
	}
	fmt.Println()

	kpiRows := make([][]string, 0, len(kpis))
	for _, k := range kpis {
		kpiRows = append(kpiRows, []string{k.Title, k.Value, cli.FormatDelta(k.Difference)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Indicadores",
		Headers: []string{"KPI", "Valor", "Variação"},
		Rows:    kpiRows,
	}))

	if len(custody) > 0 {
		values := make([]float64, len(custody))
		custodyRows := make([][]string, 0, len(custody))
		for i, p := range custody {
			values[i] = p.Value
			custodyRows = append(custodyRows, []string{p.Label, cli.FormatCurrencyBRL(p.Value)})
		}
		fmt.Printf("  Evolução de custódia  %s\n", cli.RenderSparkline(values))
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Mês", "Custódia"},
			Rows:    custodyRows,
		}))
	}

	if len(flow) > 0 {
		flowRows := make([][]string, 0, len(flow))
		for _, p := range flow {
			flowRows = append(flowRows, []string{
				p.Label,
				cli.FormatCurrencyBRL(p.Inflow),
				cli.FormatCurrencyBRL(p.Outflow),
				cli.FormatCurrencyBRL(p.Inflow - p.Outflow),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Captação mensal",
			Headers: []string{"Mês", "Entradas", "Saídas", "Líquido"},
			Rows:    flowRows,
		}))
	}

	maxSlice := 0.0
	for _, s := range mix {
		if s.Value > maxSlice {
			maxSlice = s.Value
		}
	}
	fmt.Println("  Mix de alocação")
	for _, s := range mix {
		fmt.Printf("  %-28s %s\n", s.Name, cli.RenderBar(s.Value, maxSlice, 30, cli.ColorCyan, cli.FormatCurrencyBRL(s.Value)))
	}
	fmt.Println()

	return nil
}
