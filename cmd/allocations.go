package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"ankadash/internal/api"
	"ankadash/internal/cli"
	"ankadash/internal/report"
	"ankadash/internal/store"
)

var flagAllocDate string

var allocationsCmd = &cobra.Command{
	Use:     "allocations",
	Aliases: []string{"alloc"},
	Short:   "List allocations for the selected period",
	RunE:    runAllocationsList,
}

var allocationsAddCmd = &cobra.Command{
	Use:   "add <client-id> <asset-id> <quantity> <buy-price>",
	Short: "Record a buy for a client",
	Args:  cobra.ExactArgs(4),
	RunE:  runAllocationsAdd,
}

var allocationsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an allocation",
	Args:  cobra.ExactArgs(1),
	RunE:  runAllocationsRm,
}

func init() {
	allocationsAddCmd.Flags().StringVar(&flagAllocDate, "date", "", "Buy date (YYYY-MM-DD, default today)")

	allocationsCmd.AddCommand(allocationsAddCmd, allocationsRmCmd)
	rootCmd.AddCommand(allocationsCmd)
}

func runAllocationsList(cmd *cobra.Command, _ []string) error {
	snap, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	allocs := report.FilterAllocations(snap.Allocations, monthFilter())

	clientNames := make(map[int64]string, len(snap.Clients))
	for _, c := range snap.Clients {
		clientNames[c.ID] = c.Name
	}
	assetTickers := make(map[int64]string, len(snap.Assets))
	for _, a := range snap.Assets {
		assetTickers[a.ID] = a.Ticker
	}

	rows := make([][]string, 0, len(allocs))
	for _, a := range allocs {
		rows = append(rows, []string{
			strconv.FormatInt(a.ID, 10),
			clientNames[a.ClientID],
			assetTickers[a.AssetID],
			a.Quantity,
			a.BuyPrice,
			cli.FormatDate(a.BuyDate),
		})
	}

	fmt.Println()
	if snap.Stale {
		fmt.Println(cli.RenderNote("Dados locais (backend indisponível)"))
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     fmt.Sprintf("Alocações (%s)  Total %s", cli.FormatCount(int64(len(allocs))), cli.FormatCurrencyBRL(report.TotalInvested(allocs))),
		Headers:   []string{"ID", "Cliente", "Ativo", "Qtd", "Preço", "Data"},
		Rows:      rows,
		LeftAlign: map[int]bool{1: true, 2: true},
	}))
	return nil
}

func runAllocationsAdd(cmd *cobra.Command, args []string) error {
	clientID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid client id %q", args[0])
	}
	assetID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid asset id %q", args[1])
	}
	if _, err := decimal.NewFromString(args[2]); err != nil {
		return fmt.Errorf("invalid quantity %q", args[2])
	}
	if _, err := decimal.NewFromString(args[3]); err != nil {
		return fmt.Errorf("invalid buy price %q", args[3])
	}

	date := flagAllocDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}
	created, err := client.CreateAllocation(cmd.Context(), api.AllocationInput{
		ClientID: clientID,
		AssetID:  assetID,
		Quantity: args[2],
		BuyPrice: args[3],
		BuyDate:  date,
	})
	if err != nil {
		return err
	}
	invalidateEntity(store.EntityAllocations)
	fmt.Printf("Alocação %d registrada\n", created.ID)
	return nil
}

func runAllocationsRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid allocation id %q", args[0])
	}
	client, err := newAPIClient()
	if err != nil {
		return err
	}
	if err := client.DeleteAllocation(cmd.Context(), id); err != nil {
		return err
	}
	invalidateEntity(store.EntityAllocations)
	fmt.Printf("Alocação %d removida\n", id)
	return nil
}
