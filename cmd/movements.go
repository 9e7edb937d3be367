package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"ankadash/internal/api"
	"ankadash/internal/cli"
	"ankadash/internal/model"
	"ankadash/internal/report"
	"ankadash/internal/store"
)

var (
	flagMovDate string
	flagMovNote string
)

var movementsCmd = &cobra.Command{
	Use:     "movements",
	Aliases: []string{"mov"},
	Short:   "List cash movements for the selected period",
	RunE:    runMovementsList,
}

var movementsAddCmd = &cobra.Command{
	Use:   "add <client-id> <deposit|withdrawal> <amount>",
	Short: "Record a deposit or withdrawal",
	Args:  cobra.ExactArgs(3),
	RunE:  runMovementsAdd,
}

var movementsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a movement",
	Args:  cobra.ExactArgs(1),
	RunE:  runMovementsRm,
}

func init() {
	movementsAddCmd.Flags().StringVar(&flagMovDate, "date", "", "Movement date (YYYY-MM-DD, default today)")
	movementsAddCmd.Flags().StringVar(&flagMovNote, "note", "", "Free-form note")

	movementsCmd.AddCommand(movementsAddCmd, movementsRmCmd)
	rootCmd.AddCommand(movementsCmd)
}

func movementLabel(t model.MovementType) string {
	if t == model.MovementDeposit {
		return "Depósito"
	}
	return "Resgate"
}

func runMovementsList(cmd *cobra.Command, _ []string) error {
	snap, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	movs := report.FilterMovements(snap.Movements, monthFilter())
	totals := report.SummarizeMovements(movs)

	clientNames := make(map[int64]string, len(snap.Clients))
	for _, c := range snap.Clients {
		clientNames[c.ID] = c.Name
	}

	rows := make([][]string, 0, len(movs)+2)
	for _, m := range movs {
		rows = append(rows, []string{
			strconv.FormatInt(m.ID, 10),
			clientNames[m.ClientID],
			movementLabel(m.Type),
			m.Amount,
			cli.FormatDate(m.Date),
			m.Note,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "Líquido", cli.FormatCurrencyBRL(totals.Net), "", ""})

	fmt.Println()
	if snap.Stale {
		fmt.Println(cli.RenderNote("Dados locais (backend indisponível)"))
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     fmt.Sprintf("Movimentações (%s)  Entradas %s  Saídas %s", cli.FormatCount(int64(len(movs))), cli.FormatCurrencyBRL(totals.Deposits), cli.FormatCurrencyBRL(totals.Withdrawals)),
		Headers:   []string{"ID", "Cliente", "Tipo", "Valor", "Data", "Nota"},
		Rows:      rows,
		LeftAlign: map[int]bool{1: true, 2: true, 5: true},
	}))
	return nil
}

func runMovementsAdd(cmd *cobra.Command, args []string) error {
	clientID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid client id %q", args[0])
	}

	var typ model.MovementType
	switch args[1] {
	case "deposit", "deposito", "depósito":
		typ = model.MovementDeposit
	case "withdrawal", "resgate", "saque":
		typ = model.MovementWithdrawal
	default:
		return fmt.Errorf("invalid movement type %q (want deposit or withdrawal)", args[1])
	}

	if _, err := decimal.NewFromString(args[2]); err != nil {
		return fmt.Errorf("invalid amount %q", args[2])
	}

	date := flagMovDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}
	created, err := client.CreateMovement(cmd.Context(), api.MovementInput{
		ClientID: clientID,
		Type:     typ,
		Amount:   args[2],
		Date:     date,
		Note:     flagMovNote,
	})
	if err != nil {
		return err
	}
	invalidateEntity(store.EntityMovements)
	fmt.Printf("Movimentação %d registrada (%s)\n", created.ID, movementLabel(created.Type))
	return nil
}

func runMovementsRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid movement id %q", args[0])
	}
	client, err := newAPIClient()
	if err != nil {
		return err
	}
	if err := client.DeleteMovement(cmd.Context(), id); err != nil {
		return err
	}
	invalidateEntity(store.EntityMovements)
	fmt.Printf("Movimentação %d removida\n", id)
	return nil
}
