package cli

import (
	"context"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/cobra"

	"github.com/splitpixel/splitpixel/internal/script"
	"github.com/splitpixel/splitpixel/internal/store"
)

// projectIDAlphabet keeps generated identifiers inside the safe
// character class the script generator embeds verbatim.
const projectIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func init() {
	rootCmd.AddCommand(newCreateCmd())
}

func newCreateCmd() *cobra.Command {
	var (
		name     string
		inactive bool
	)

	cmd := &cobra.Command{
		Use:   "create [id]",
		Short: "Create a new project",
		Long: `Create a new project. The project identifier is generated unless
you supply one; supplied identifiers are restricted to letters, digits,
hyphen and underscore because they are embedded in the served script.

Examples:
  spx create --name "Landing page"
  spx create landing-v2 --name "Landing page v2"
  spx create holdout --inactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
				if !script.ValidProjectID(id) {
					return fmt.Errorf("invalid project id %q: only letters, digits, '-' and '_' are allowed", id)
				}
			} else {
				suffix, err := gonanoid.Generate(projectIDAlphabet, 12)
				if err != nil {
					return fmt.Errorf("failed to generate project id: %w", err)
				}
				id = "proj_" + suffix
			}

			return withStore(func(s *store.SQLiteStore) error {
				ctx := context.Background()

				project, err := s.CreateProject(ctx, id, name, !inactive)
				if err != nil {
					return fmt.Errorf("failed to create project: %w", err)
				}

				fmt.Printf("Created project '%s'\n", project.ID)
				if project.Name != "" {
					fmt.Printf("  Name: %s\n", project.Name)
				}
				fmt.Printf("  Active: %v\n", project.Active)
				fmt.Println()
				fmt.Println("Embed on your site:")
				fmt.Printf("  <script src=\"https://YOUR-URL/s/%s\" async></script>\n", project.ID)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "human-readable project name")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "create the project in the inactive state")

	return cmd
}
