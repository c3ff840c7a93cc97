package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/splitpixel/splitpixel/internal/assign"
	"github.com/splitpixel/splitpixel/internal/stats"
	"github.com/splitpixel/splitpixel/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats <projectId>",
	Short: "Show per-variation counts for a project",
	Long:  `Show the total event count and the count for each variation.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	projectID := args[0]

	return withStore(func(s *store.SQLiteStore) error {
		ctx := context.Background()

		project, err := s.GetProject(ctx, projectID)
		if err != nil {
			if err == store.ErrNotFound {
				return fmt.Errorf("project '%s' not found", projectID)
			}
			return fmt.Errorf("failed to get project: %w", err)
		}

		counts, err := s.GetVariationCounts(ctx, projectID)
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}
		result := stats.Aggregate(projectID, counts)

		fmt.Printf("PROJECT: %s\n", project.ID)
		if project.Name != "" {
			fmt.Printf("NAME: %s\n", project.Name)
		}
		state := "active"
		if !project.Active {
			state = "inactive"
		}
		fmt.Printf("STATE: %s\n", state)
		fmt.Printf("CREATED: %s\n", project.CreatedAt.Format("2006-01-02"))
		fmt.Println()

		fmt.Println("VARIATION  EVENTS   SHARE")
		fmt.Println(strings.Repeat("─", 30))

		for _, sym := range assign.Variations {
			count := result.ByVariation[sym]
			share := "0%"
			if result.Total > 0 {
				share = fmt.Sprintf("%.1f%%", float64(count)/float64(result.Total)*100)
			}
			fmt.Printf("%-9s  %-7s  %s\n", sym, formatNumber(count), share)
		}

		fmt.Println(strings.Repeat("─", 30))
		fmt.Printf("TOTAL      %s\n", formatNumber(result.Total))

		return nil
	})
}
