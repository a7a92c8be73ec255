package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/praxisdev/praxis/config"
	"github.com/praxisdev/praxis/errors"
	"github.com/praxisdev/praxis/scaffold"
)

var (
	initTarget    string
	initDryRun    bool
	initOverwrite bool
)

// InitCmd represents the init command
var InitCmd = &cobra.Command{
	Use:   "init [PROJECT_ROOT]",
	Short: "Scaffold the praxis protocol into a project",
	Long: `Scaffold the praxis protocol into a project.

Detects the project's technology stacks, copies the canonical document tree,
writes the PRAXIS.md entrypoint and backlog index, and generates the rule
files for each selected assistant platform.

Examples:
  praxis init .                          # Current directory, all platforms
  praxis init ~/src/api --target claude  # One platform
  praxis init . --dry-run                # Report intended writes only
  praxis init . --overwrite              # Replace existing files`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInitCommand,
}

func init() {
	InitCmd.Flags().StringVarP(&initTarget, "target", "t", "", "Platform selector: id, comma-separated list, or \"all\"")
	InitCmd.Flags().BoolVar(&initDryRun, "dry-run", false, "Report intended writes without touching the filesystem")
	InitCmd.Flags().BoolVar(&initOverwrite, "overwrite", false, "Replace existing destination files")
}

func runInitCommand(cmd *cobra.Command, args []string) error {
	projectRoot := "."
	if len(args) == 1 {
		projectRoot = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	targets := cfg.Targets
	if initTarget != "" {
		targets = scaffold.ParseTarget(initTarget)
	}
	overwrite := cfg.Overwrite
	if cmd.Flags().Changed("overwrite") {
		overwrite = initOverwrite
	}

	result, err := scaffold.Init(projectRoot, targets, nil, scaffold.Options{
		DryRun:    initDryRun,
		Overwrite: overwrite,
	})
	if err != nil {
		return errors.Wrap(err, "init failed")
	}

	displayStacks(result.Stacks)
	pterm.Println()
	for _, line := range result.Results {
		switch {
		case strings.HasPrefix(line, "platform "):
			pterm.Println(pterm.Bold.Sprint(line))
		default:
			pterm.Println(line)
		}
	}
	pterm.Println()

	if result.DryRun {
		pterm.Info.Printf("Dry run: no files were written (%s)\n", result.ProjectPath)
	} else {
		pterm.Success.Printf("Praxis initialized in %s (target: %s)\n", result.ProjectPath, result.Target)
	}
	return nil
}
