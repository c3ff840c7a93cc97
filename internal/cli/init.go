package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/splitpixel/splitpixel/internal/server"
	"github.com/splitpixel/splitpixel/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Start splitpixel server with setup instructions",
	Long: `Start the splitpixel server and show integration instructions.

The server provides:
  - Embed script endpoint at /s/{projectId}
  - Tracking beacon at /track
  - Stats API for dashboards

Create a project first with 'spx create', then embed its script.

Example:
  spx init
  spx init --port 8080`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on")
	initCmd.Flags().StringVar(&serveBaseURL, "base-url", "", "public base URL embedded in generated scripts")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	// Prompt for framework to show appropriate instructions
	framework, err := promptFramework()
	if err != nil {
		return err
	}

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

	printStartupInstructions(framework, cfg.Port)

	// Start server quietly (we printed our own message)
	return srv.StartQuiet()
}

func promptFramework() (string, error) {
	frameworks := []string{
		"HTML (vanilla JavaScript)",
		"React / Next.js",
		"Vue",
		"Other",
	}

	prompt := promptui.Select{
		Label: "Your framework",
		Items: frameworks,
		Size:  4,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		if err == promptui.ErrInterrupt {
			os.Exit(0)
		}
		return "", err
	}

	switch idx {
	case 1:
		return "react", nil
	case 2:
		return "vue", nil
	default:
		return "html", nil
	}
}

func printStartupInstructions(framework string, port int) {
	fmt.Println()
	fmt.Printf("Server running at http://localhost:%d\n", port)
	fmt.Println()
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println()

	fmt.Println("1. Create a project")
	fmt.Println()
	fmt.Println("   spx create --name \"Landing page\"")
	fmt.Println()

	fmt.Println("2. Add the embed script to your site")
	fmt.Println()
	fmt.Printf("   <script src=\"https://YOUR-URL/s/PROJECT_ID\" async></script>\n")
	fmt.Println()

	fmt.Println("3. Gate content on the assigned variation")
	fmt.Println()
	printFrameworkExample(framework)
	fmt.Println()

	fmt.Println(strings.Repeat("-", 60))
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  create           Create a project")
	fmt.Println("  list             List all projects")
	fmt.Println("  stats <id>       Show per-variation counts")
	fmt.Println("  snippet <id>     Generate integration code")
	fmt.Println()
	fmt.Println("Press Ctrl+C to stop")
}

func printFrameworkExample(framework string) {
	switch framework {
	case "react":
		fmt.Println(`   const variation = useVariation(); // see 'spx snippet <id> -f react'
   return variation === 'A' ? <NewHero /> : <OldHero />;`)
	case "vue":
		fmt.Println(`   <!-- see 'spx snippet <id> -f vue' -->
   <h1 v-if="variation === 'A'">New hero</h1>`)
	default:
		fmt.Println(`   <div data-spx-show="A,B">Shown to A and B</div>
   <div data-spx-show="C,D">Shown to C and D</div>`)
	}
}
