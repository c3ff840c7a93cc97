package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/splitpixel/splitpixel/internal/store"
)

var activateCmd = &cobra.Command{
	Use:   "activate <projectId>",
	Short: "Activate a project",
	Long: `Activate a project so its embed script serves the real assignment
logic. Takes effect for new page loads within the script's short cache
window.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setActive(args[0], true)
	},
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate <projectId>",
	Short: "Deactivate a project",
	Long: `Deactivate a project. Its embed endpoint keeps answering with a
success status, but serves an inert placeholder instead of the
assignment script.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setActive(args[0], false)
	},
}

func init() {
	rootCmd.AddCommand(activateCmd)
	rootCmd.AddCommand(deactivateCmd)
}

func setActive(projectID string, active bool) error {
	return withStore(func(s *store.SQLiteStore) error {
		err := s.SetProjectActive(context.Background(), projectID, active)
		if err == store.ErrNotFound {
			return fmt.Errorf("project '%s' not found", projectID)
		}
		if err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}

		if active {
			fmt.Printf("Project '%s' is now active.\n", projectID)
		} else {
			fmt.Printf("Project '%s' is now inactive.\n", projectID)
		}
		return nil
	})
}
