package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/splitpixel/splitpixel/internal/stats"
	"github.com/splitpixel/splitpixel/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Long:  `List all projects with their status and event totals.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	return withStore(func(s *store.SQLiteStore) error {
		ctx := context.Background()

		projects, err := s.ListProjects(ctx)
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		if len(projects) == 0 {
			fmt.Println("No projects yet.")
			fmt.Println()
			fmt.Println("Create one with:")
			fmt.Println("  spx create --name \"Landing page\"")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tACTIVE\tEVENTS\tCREATED")

		for _, p := range projects {
			counts, err := s.GetVariationCounts(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("failed to get counts for project %s: %w", p.ID, err)
			}
			result := stats.Aggregate(p.ID, counts)

			active := "yes"
			if !p.Active {
				active = "no"
			}

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				p.ID,
				p.Name,
				active,
				formatNumber(result.Total),
				p.CreatedAt.Format("2006-01-02"),
			)
		}

		w.Flush()
		return nil
	})
}

func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%d,%03d", n/1000, n%1000)
	}
	return fmt.Sprintf("%d,%03d,%03d", n/1000000, (n/1000)%1000, n%1000)
}
