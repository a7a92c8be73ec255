package commands

import (
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/praxisdev/praxis/errors"
	"github.com/praxisdev/praxis/scaffold/stack"
)

// DetectCmd represents the detect command
var DetectCmd = &cobra.Command{
	Use:   "detect [PROJECT_ROOT]",
	Short: "Detect project stacks without writing anything",
	Long: `Detect project stacks without writing anything.

Scans the project root and its immediate subdirectories for technology
stacks and prints what init would feed into the templates. Pure read.

Examples:
  praxis detect .           # Current directory
  praxis detect ~/src/shop  # Another project`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetectCommand,
}

func runDetectCommand(cmd *cobra.Command, args []string) error {
	projectRoot := "."
	if len(args) == 1 {
		projectRoot = args[0]
	}
	projectPath, err := filepath.Abs(projectRoot)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve project root %s", projectRoot)
	}

	stacks := stack.Detect(projectPath)
	displayStacks(stacks)
	return nil
}

// displayStacks renders detected stacks as a terminal table.
func displayStacks(stacks []stack.Definition) {
	rows := pterm.TableData{{"Stack", "Path", "Languages", "Frameworks", "Test", "Types", "Lint", "Packages"}}
	for _, d := range stacks {
		path := d.Path
		if path == "" {
			path = "."
		}
		rows = append(rows, []string{
			d.Name,
			path,
			strings.Join(d.Languages, ", "),
			strings.Join(d.Frameworks, ", "),
			d.TestRunner,
			d.TypeChecker,
			d.Linter,
			d.PackageManager,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
