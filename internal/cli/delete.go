package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/splitpixel/splitpixel/internal/store"
)

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}

func newDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <projectId>",
		Short: "Delete a project and all of its events",
		Long: `Delete a project. All of its recorded visitor events are deleted
with it; this cannot be undone.

Example:
  spx delete proj_abc123 --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]

			return withStore(func(s *store.SQLiteStore) error {
				ctx := context.Background()

				if !force {
					events, err := s.GetEvents(ctx, projectID)
					if err != nil {
						return fmt.Errorf("failed to check events: %w", err)
					}
					if len(events) > 0 {
						return fmt.Errorf("project '%s' has %d recorded events; re-run with --force to delete them", projectID, len(events))
					}
				}

				err := s.DeleteProject(ctx, projectID)
				if err == store.ErrNotFound {
					return fmt.Errorf("project '%s' not found", projectID)
				}
				if err != nil {
					return fmt.Errorf("failed to delete project: %w", err)
				}

				fmt.Printf("Deleted project '%s' and its events.\n", projectID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete even if events are recorded")

	return cmd
}
