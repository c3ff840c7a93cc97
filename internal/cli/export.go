package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/splitpixel/splitpixel/internal/store"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <projectId>",
	Short: "Export raw event data",
	Long: `Export raw visitor events in CSV or JSON format.

Examples:
  spx export proj_abc123 --format csv > events.csv
  spx export proj_abc123 --format json > events.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "output format (csv or json)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	projectID := args[0]

	if exportFormat != "csv" && exportFormat != "json" {
		return fmt.Errorf("invalid format: must be 'csv' or 'json'")
	}

	return withStore(func(s *store.SQLiteStore) error {
		ctx := context.Background()

		if _, err := s.GetProject(ctx, projectID); err != nil {
			if err == store.ErrNotFound {
				return fmt.Errorf("project '%s' not found", projectID)
			}
			return fmt.Errorf("failed to get project: %w", err)
		}

		events, err := s.GetEvents(ctx, projectID)
		if err != nil {
			return fmt.Errorf("failed to get events: %w", err)
		}

		if exportFormat == "json" {
			return exportJSON(events)
		}
		return exportCSV(events)
	})
}

func exportCSV(events []*store.VisitorEvent) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"id", "project_id", "visitor_id", "variation", "user_agent", "referrer", "created_at"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, e := range events {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.ProjectID,
			e.VisitorID,
			e.Variation,
			e.UserAgent,
			e.Referrer,
			e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	return nil
}

func exportJSON(events []*store.VisitorEvent) error {
	type jsonEvent struct {
		ID        int64  `json:"id"`
		ProjectID string `json:"project_id"`
		VisitorID string `json:"visitor_id"`
		Variation string `json:"variation"`
		UserAgent string `json:"user_agent,omitempty"`
		Referrer  string `json:"referrer,omitempty"`
		CreatedAt string `json:"created_at"`
	}

	out := make([]jsonEvent, 0, len(events))
	for _, e := range events {
		out = append(out, jsonEvent{
			ID:        e.ID,
			ProjectID: e.ProjectID,
			VisitorID: e.VisitorID,
			Variation: e.Variation,
			UserAgent: e.UserAgent,
			Referrer:  e.Referrer,
			CreatedAt: e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
