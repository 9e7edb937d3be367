package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ankadash/internal/config"
	"ankadash/internal/report"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to ankadash!")
	fmt.Println()

	// 1. Backend URL
	fmt.Println("  1. Backend URL")
	fmt.Printf("     Current: %s\n", cfg.API.BaseURL)
	fmt.Print("     > ")
	baseURL, _ := reader.ReadString('\n')
	baseURL = strings.TrimSpace(baseURL)
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	fmt.Println()

	// 2. Default month filter
	fmt.Println("  2. Default month filter")
	fmt.Println(`     "all" for every period, or "01".."12" for one month [default: all]`)
	fmt.Print("     > ")
	month, _ := reader.ReadString('\n')
	month = strings.TrimSpace(month)
	if month == "" {
		month = "all"
	}
	if !report.ValidMonthFilter(month) {
		return fmt.Errorf("invalid month %q (want 01..12 or all)", month)
	}
	cfg.General.DefaultMonth = month
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Slate Dark [default]")
	fmt.Println("     (2) Slate Light")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "slate-light"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "slate-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `ankadash setup` anytime to reconfigure.")
	fmt.Println("  Next: `ankadash login` to authenticate.")
	fmt.Println()

	return nil
}
