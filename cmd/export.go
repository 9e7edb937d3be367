package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"ankadash/internal/api"
	"ankadash/internal/model"
)

var (
	flagExportOut   string
	flagExportLocal bool
)

var exportCmd = &cobra.Command{
	Use:   "export <clients|allocations|movements>",
	Short: "Export records as CSV",
	Long: `Export one record set as CSV. By default the file comes from the
backend's export endpoint; --local writes the snapshot instead, which
also works offline.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"clients", "allocations", "movements"},
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default <entity>.csv)")
	exportCmd.Flags().BoolVar(&flagExportLocal, "local", false, "Write from the local snapshot instead of the backend")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	kind := api.ExportKind(args[0])
	switch kind {
	case api.ExportClients, api.ExportAllocations, api.ExportMovements:
	default:
		return fmt.Errorf("unknown export %q (want clients, allocations, or movements)", args[0])
	}

	dest := flagExportOut
	if dest == "" {
		dest = string(kind) + ".csv"
	}

	if flagExportLocal {
		if err := exportLocal(cmd, kind, dest); err != nil {
			return err
		}
	} else {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		if err := client.DownloadExport(cmd.Context(), kind, dest); err != nil {
			return err
		}
	}

	fmt.Printf("Exportado para %s\n", dest)
	return nil
}

// exportLocal writes a CSV from the snapshot, same column set the
// backend export uses.
func exportLocal(cmd *cobra.Command, kind api.ExportKind, dest string) error {
	snap, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	switch kind {
	case api.ExportClients:
		err = writeClientsCSV(w, snap.Clients)
	case api.ExportAllocations:
		err = writeAllocationsCSV(w, snap.Allocations)
	case api.ExportMovements:
		err = writeMovementsCSV(w, snap.Movements)
	}
	if err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func writeClientsCSV(w *csv.Writer, clients []model.Client) error {
	if err := w.Write([]string{"id", "name", "email", "is_active", "created_at"}); err != nil {
		return err
	}
	for _, c := range clients {
		rec := []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			c.Email,
			strconv.FormatBool(c.IsActive),
			c.CreatedAt,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeAllocationsCSV(w *csv.Writer, allocs []model.Allocation) error {
	if err := w.Write([]string{"id", "client_id", "asset_id", "quantity", "buy_price", "buy_date"}); err != nil {
		return err
	}
	for _, a := range allocs {
		rec := []string{
			strconv.FormatInt(a.ID, 10),
			strconv.FormatInt(a.ClientID, 10),
			strconv.FormatInt(a.AssetID, 10),
			a.Quantity,
			a.BuyPrice,
			a.BuyDate,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeMovementsCSV(w *csv.Writer, movs []model.Movement) error {
	if err := w.Write([]string{"id", "client_id", "type", "amount", "date", "note"}); err != nil {
		return err
	}
	for _, m := range movs {
		rec := []string{
			strconv.FormatInt(m.ID, 10),
			strconv.FormatInt(m.ClientID, 10),
			string(m.Type),
			m.Amount,
			m.Date,
			m.Note,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
