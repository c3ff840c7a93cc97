package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/splitpixel/splitpixel/internal/server"
	"github.com/splitpixel/splitpixel/internal/store"
)

var (
	servePort    int
	serveBaseURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the splitpixel HTTP server.

The server provides:
  - Embed script endpoint at /s/{projectId}
  - Tracking beacon at /track
  - Stats API at /api/stats/{projectId}
  - Health check endpoint

Example:
  spx serve --port 8080 --base-url https://spx.example.com`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on")
	serveCmd.Flags().StringVar(&serveBaseURL, "base-url", "", "public base URL embedded in generated scripts")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if servePort != 0 {
		cfg.Port = servePort
	} else if p := os.Getenv("SPX_PORT"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			cfg.Port = parsed
		}
	}
	if serveBaseURL != "" {
		cfg.BaseURL = serveBaseURL
	}

	s, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer s.Close()

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	srv := server.New(s, cfg.Port, cfg.BaseURL, logger)
	return srv.Start()
}
