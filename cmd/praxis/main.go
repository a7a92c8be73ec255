package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/praxisdev/praxis/cmd/praxis/commands"
	"github.com/praxisdev/praxis/config"
	"github.com/praxisdev/praxis/logger"
)

var rootCmd = &cobra.Command{
	Use:   "praxis",
	Short: "praxis - Scaffold a reasoning protocol for AI coding assistants",
	Long: `praxis - Scaffold a reasoning protocol for AI coding assistants.

praxis detects your project's technology stacks and generates the protocol
documents each assistant platform reads: canonical documents, per-platform
rule files, agent roles, and a diagnostic skill.

Available commands:
  init    - Scaffold the protocol into a project
  detect  - Detect project stacks without writing anything
  serve   - Expose init/detect as MCP tools over stdio
  version - Show build information

Examples:
  praxis init .                        # Scaffold for all platforms
  praxis init . --target claude,cursor # Two platforms only
  praxis init . --dry-run              # Report without writing
  praxis detect .                      # Show the detected stack table`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := logger.Initialize(cfg.JSONLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if verbose, _ := cmd.Flags().GetCount("verbose"); verbose > 0 {
			logger.SetVerbosity(verbose)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail)")

	rootCmd.AddCommand(commands.InitCmd)
	rootCmd.AddCommand(commands.DetectCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
