// Package cmd implements the ankadash CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"ankadash/internal/api"
	"ankadash/internal/config"
	"ankadash/internal/model"
	"ankadash/internal/report"
	"ankadash/internal/store"
)

var (
	flagMonth   string
	flagAPIURL  string
	flagOffline bool
	flagNoCache bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "ankadash",
	Short: "Investment office dashboard CLI",
	Long:  "Client, allocation, and cash flow dashboards for the investment office backend.",
	RunE:  runSummary,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		applyConfigDefaults(cmd)
		if !report.ValidMonthFilter(flagMonth) {
			return fmt.Errorf("invalid --month %q (want 01..12 or all)", flagMonth)
		}
		return nil
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	// A local .env is optional; missing files are fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "all", `Month filter ("01".."12" or "all")`)
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Serve from the local snapshot, skip the backend")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip the local snapshot cache entirely")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// applyConfigDefaults lets config.toml set month and offline defaults;
// explicit flags always win.
func applyConfigDefaults(cmd *cobra.Command) {
	cfg, err := config.Load()
	if err != nil {
		return
	}
	if !cmd.Flags().Changed("month") && report.ValidMonthFilter(cfg.General.DefaultMonth) && cfg.General.DefaultMonth != "" {
		flagMonth = cfg.General.DefaultMonth
	}
	if !cmd.Flags().Changed("offline") && cfg.General.Offline {
		flagOffline = true
	}
}

// monthFilter returns the active month filter, "" when unfiltered.
func monthFilter() string {
	if flagMonth == "" || flagMonth == "all" {
		return ""
	}
	return flagMonth
}

// newAPIClient builds the backend client from config, session, and flags.
func newAPIClient() (*api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	baseURL := cfg.API.BaseURL
	if flagAPIURL != "" {
		baseURL = flagAPIURL
	}
	return api.New(baseURL, config.OpenSession().Token()), nil
}

// openCache opens the snapshot store, returning nil when disabled or
// unavailable. Callers treat a nil cache as "no snapshot".
func openCache() *store.Cache {
	if flagNoCache {
		return nil
	}
	cache, err := store.Open(store.CachePath())
	if err != nil {
		progress("Snapshot cache unavailable: %v", err)
		return nil
	}
	return cache
}

// loadSnapshot is the shared data path for every read command: fetch
// the four record sets from the backend, falling back to the local
// snapshot when offline or unreachable. A fresh fetch refreshes the
// snapshot; a fallback is marked stale and reported, never mixed.
func loadSnapshot(ctx context.Context) (model.Snapshot, error) {
	cache := openCache()
	if cache != nil {
		defer func() { _ = cache.Close() }()
	}

	if flagOffline {
		return loadCached(cache, errors.New("offline mode"))
	}

	client, err := newAPIClient()
	if err != nil {
		return model.Snapshot{}, err
	}

	progress("Fetching records...")
	snap, err := client.FetchSnapshot(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return model.Snapshot{}, fmt.Errorf("not logged in (run `ankadash login`): %w", err)
		}
		progress("Backend unreachable, trying local snapshot")
		return loadCached(cache, err)
	}

	if cache != nil {
		if err := cache.SaveSnapshot(snap); err != nil {
			progress("Could not refresh snapshot: %v", err)
		}
	}
	return snap, nil
}

// loadCached serves the last stored snapshot, or surfaces cause when
// nothing usable is stored.
func loadCached(cache *store.Cache, cause error) (model.Snapshot, error) {
	if cache == nil {
		return model.Snapshot{}, fmt.Errorf("no snapshot available: %w", cause)
	}
	complete, err := cache.Complete()
	if err != nil || !complete {
		return model.Snapshot{}, fmt.Errorf("no complete snapshot stored: %w", cause)
	}
	snap, err := cache.LoadSnapshot()
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	return snap, nil
}

// invalidateEntity busts one entity's snapshot rows after a mutation.
func invalidateEntity(entity string) {
	cache := openCache()
	if cache == nil {
		return
	}
	defer func() { _ = cache.Close() }()
	if err := cache.Invalidate(entity); err != nil {
		progress("Snapshot invalidation failed: %v", err)
	}
}

func progress(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "  "+format+"\n", args...)
}
