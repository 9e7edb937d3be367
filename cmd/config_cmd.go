package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ankadash/internal/config"
	"ankadash/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [API]")
	fmt.Printf("    Base URL: %s\n", cfg.API.BaseURL)
	if config.OpenSession().Token() != "" {
		fmt.Println("    Session:  logged in")
	} else {
		fmt.Println("    Session:  not logged in")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default month: %s\n", cfg.General.DefaultMonth)
	fmt.Printf("    Offline:       %v\n", cfg.General.Offline)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Printf("  Snapshot cache: %s\n", store.CachePath())
	fmt.Println("  Run `ankadash setup` to reconfigure.")
	return nil
}
