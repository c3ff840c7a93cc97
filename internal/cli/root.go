package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath  string
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:   "spx",
	Short: "splitpixel - deterministic A/B variation assignment for websites",
	Long: `splitpixel assigns website visitors to one of four experiment
variations (A, B, C, D) deterministically, with no server-side session
state. A self-contained script embedded on the host site computes the
assignment client-side and reports it through an image beacon.

Single Go binary, embedded SQLite, no external services.

Running without a subcommand starts the server (same as 'spx init').`,
	RunE: runInit, // Default action is to start server
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", getEnvOrDefault("SPX_DB_PATH", "./splitpixel.db"), "database path")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "./splitpixel.toml", "config file path")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
