package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/splitpixel/splitpixel/internal/config"
	"github.com/splitpixel/splitpixel/internal/store"
)

// withStore opens the database, executes the function, and handles cleanup.
func withStore(fn func(*store.SQLiteStore) error) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer s.Close()

	return fn(s)
}

// loadConfig reads the TOML config file, then lets the --db flag
// override its database path.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cfgPath, cmd.Flags().Changed("config"))
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("db") {
		cfg.DBPath = dbPath
	} else if dbPath != "./splitpixel.db" {
		// Env var default differs from the built-in default
		cfg.DBPath = dbPath
	}

	return cfg, nil
}
