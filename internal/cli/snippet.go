package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/splitpixel/splitpixel/internal/snippets"
	"github.com/splitpixel/splitpixel/internal/store"
)

func init() {
	rootCmd.AddCommand(newSnippetCmd())
}

func newSnippetCmd() *cobra.Command {
	var framework string
	var serverURL string

	cmd := &cobra.Command{
		Use:   "snippet <projectId>",
		Short: "Generate integration code for a project",
		Long:  "Generate copy-paste-ready code for embedding a project's experiment script into your application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

				fw := snippets.Framework(framework)
				if framework == "" {
					picked, err := promptFramework()
					if err != nil {
						return err
					}
					fw = snippets.Framework(picked)
				}

				url := serverURL
				if url == "" {
					// Last server run persisted its public URL
					if saved, err := s.GetSetting(ctx, "server_url"); err == nil && saved != "" {
						url = saved
					} else {
						url, err = promptServerURL()
						if err != nil {
							return err
						}
					}
				}

				files, err := snippets.Generate(fw, snippets.Config{
					ProjectID: project.ID,
					ServerURL: strings.TrimRight(url, "/"),
				})
				if err != nil {
					return fmt.Errorf("failed to generate snippet: %w", err)
				}

				printSnippets(files)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&framework, "framework", "f", "", "framework (html, react, vue)")
	cmd.Flags().StringVarP(&serverURL, "server-url", "s", "", "server URL (e.g., https://spx.example.com)")

	return cmd
}

func promptServerURL() (string, error) {
	prompt := promptui.Prompt{
		Label:   "Server URL",
		Default: "http://localhost:8080",
	}
	return prompt.Run()
}

func printSnippets(files []snippets.SnippetFile) {
	for i, f := range files {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("--- %s ---\n", f.Filename)
		fmt.Println(f.Content)
	}
}
