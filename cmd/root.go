package cmd

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/codifymate/caprep/internal/config"
	"github.com/codifymate/caprep/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "caprep",
	Short: "Terminal prep for the California real estate exam",
	Long:  "CAprep — terminal study app for the California real estate salesperson exam: practice by topic, timed exam simulations, progress tracking, and AI concept explanations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A .env in the working directory supplies CAPREP_* and API keys during
	// development. Missing file is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CAPREP_DB env var)")

	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then CAPREP_DB, then the configured data dir.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("CAPREP_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	p := filepath.Join(cfg.Data.Dir, "caprep.db")
	return p, store.EnsureDir(p)
}
