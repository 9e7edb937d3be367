package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"ankadash/internal/api"
	"ankadash/internal/cli"
	"ankadash/internal/report"
	"ankadash/internal/store"
)

var (
	flagClientEmail    string
	flagClientInactive bool
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List clients with their invested totals",
	RunE:  runClientsList,
}

var clientsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new client",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientsAdd,
}

var clientsUpdateCmd = &cobra.Command{
	Use:   "update <id> <name>",
	Short: "Update a client's name, email, or status",
	Args:  cobra.ExactArgs(2),
	RunE:  runClientsUpdate,
}

var clientsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a client",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientsRm,
}

func init() {
	clientsAddCmd.Flags().StringVar(&flagClientEmail, "email", "", "Client email")
	clientsAddCmd.Flags().BoolVar(&flagClientInactive, "inactive", false, "Register as inactive")
	clientsUpdateCmd.Flags().StringVar(&flagClientEmail, "email", "", "Client email")
	clientsUpdateCmd.Flags().BoolVar(&flagClientInactive, "inactive", false, "Mark as inactive")

	clientsCmd.AddCommand(clientsAddCmd, clientsUpdateCmd, clientsRmCmd)
	rootCmd.AddCommand(clientsCmd)
}

func runClientsList(cmd *cobra.Command, _ []string) error {
	snap, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	allocs := report.FilterAllocations(snap.Allocations, monthFilter())
	totals := report.ClientTotals(allocs)

	clients := snap.Clients
	sort.Slice(clients, func(i, j int) bool { return totals[clients[i].ID] > totals[clients[j].ID] })

	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			c.Email,
			cli.FormatActive(c.IsActive),
			cli.FormatCurrencyBRL(totals[c.ID]),
		})
	}

	fmt.Println()
	if snap.Stale {
		fmt.Println(cli.RenderNote("Dados locais (backend indisponível)"))
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     fmt.Sprintf("Clientes (%s)", cli.FormatCount(int64(len(clients)))),
		Headers:   []string{"ID", "Nome", "Email", "Status", "Investido"},
		Rows:      rows,
		LeftAlign: map[int]bool{1: true, 2: true, 3: true},
	}))
	return nil
}

func runClientsAdd(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}
	created, err := client.CreateClient(cmd.Context(), clientInput(args[0]))
	if err != nil {
		return err
	}
	invalidateEntity(store.EntityClients)
	fmt.Printf("Cliente %d criado: %s\n", created.ID, created.Name)
	return nil
}

func runClientsUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid client id %q", args[0])
	}
	client, err := newAPIClient()
	if err != nil {
		return err
	}
	updated, err := client.UpdateClient(cmd.Context(), id, clientInput(args[1]))
	if err != nil {
		return err
	}
	invalidateEntity(store.EntityClients)
	fmt.Printf("Cliente %d atualizado: %s (%s)\n", updated.ID, updated.Name, cli.FormatActive(updated.IsActive))
	return nil
}

func runClientsRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid client id %q", args[0])
	}
	client, err := newAPIClient()
	if err != nil {
		return err
	}
	if err := client.DeleteClient(cmd.Context(), id); err != nil {
		return err
	}
	invalidateEntity(store.EntityClients)
	fmt.Printf("Cliente %d removido\n", id)
	return nil
}

func clientInput(name string) api.ClientInput {
	return api.ClientInput{
		Name:     name,
		Email:    flagClientEmail,
		IsActive: !flagClientInactive,
	}
}
