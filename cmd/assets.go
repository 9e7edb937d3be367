package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ankadash/internal/api"
	"ankadash/internal/cli"
	"ankadash/internal/store"
)

var (
	flagAssetName     string
	flagAssetExchange string
	flagAssetCurrency string
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List tradable assets",
	RunE:  runAssetsList,
}

var assetsAddCmd = &cobra.Command{
	Use:   "add <ticker>",
	Short: "Register a new asset",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssetsAdd,
}

func init() {
	assetsAddCmd.Flags().StringVar(&flagAssetName, "name", "", "Asset display name")
	assetsAddCmd.Flags().StringVar(&flagAssetExchange, "exchange", "B3", "Exchange code")
	assetsAddCmd.Flags().StringVar(&flagAssetCurrency, "currency", "BRL", "Trading currency")

	assetsCmd.AddCommand(assetsAddCmd)
	rootCmd.AddCommand(assetsCmd)
}

func runAssetsList(cmd *cobra.Command, _ []string) error {
	snap, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(snap.Assets))
	for _, a := range snap.Assets {
		rows = append(rows, []string{
			strconv.FormatInt(a.ID, 10),
			a.Ticker,
			a.Name,
			a.Exchange,
			a.Currency,
		})
	}

	fmt.Println()
	if snap.Stale {
		fmt.Println(cli.RenderNote("Dados locais (backend indisponível)"))
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     fmt.Sprintf("Ativos (%s)", cli.FormatCount(int64(len(snap.Assets)))),
		Headers:   []string{"ID", "Ticker", "Nome", "Bolsa", "Moeda"},
		Rows:      rows,
		LeftAlign: map[int]bool{1: true, 2: true, 3: true, 4: true},
	}))
	return nil
}

func runAssetsAdd(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}
	name := flagAssetName
	if name == "" {
		name = args[0]
	}
	created, err := client.CreateAsset(cmd.Context(), api.AssetInput{
		Ticker:   args[0],
		Name:     name,
		Exchange: flagAssetExchange,
		Currency: flagAssetCurrency,
	})
	if err != nil {
		return err
	}
	invalidateEntity(store.EntityAssets)
	fmt.Printf("Ativo %d criado: %s\n", created.ID, created.Ticker)
	return nil
}
