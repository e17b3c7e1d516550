package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/taskforge/internal/cli/formatter"
	"github.com/alexanderramin/taskforge/internal/config"
	"github.com/alexanderramin/taskforge/internal/scaffold"
	"github.com/spf13/cobra"
)

// App holds run-wide settings shared by CLI commands.
type App struct {
	// Color enables styled output. Set from TTY detection in main so piped
	// output stays plain.
	Color bool
}

// NewRootCmd creates the top-level "taskforge" command. Scaffolding is the
// root action itself; subcommands cover auxiliary operations.
func NewRootCmd(app *App) *cobra.Command {
	var projectName, path, unit string
	var modules []string

	root := &cobra.Command{
		Use:   "taskforge",
		Short: "Scaffold a task-tracking workspace",
		Long: `Taskforge creates a directory-based task-tracking structure: a tasks/
tree with backlog, active, and completed directories, a configuration file,
a task index, a README, and one completed example task.

Re-running against the same path overwrites the generated files with fresh
content; edits made between runs are not preserved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !config.ValidComplexityUnits[unit] {
				return fmt.Errorf("invalid complexity unit %q (valid: %s)",
					unit, strings.Join(config.UnitNames(), ", "))
			}
			base, err := resolveBasePath(path)
			if err != nil {
				return err
			}

			cfg := config.Build(projectName, config.ComplexityUnit(unit), modules)
			res, err := scaffold.Materialize(cfg, base, time.Now())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScaffoldSummary(res, cfg, app.Color))
			return nil
		},
	}

	root.Flags().StringVar(&projectName, "project-name", "", "Project name")
	root.Flags().StringVar(&path, "path", ".", "Base path for the workspace (must already exist)")
	root.Flags().StringVar(&unit, "complexity-unit", "units",
		"Complexity unit ("+strings.Join(config.UnitNames(), "|")+")")
	root.Flags().StringSliceVar(&modules, "modules", nil, "Module names (repeatable or comma-separated)")
	_ = root.MarkFlagRequired("project-name")

	root.AddCommand(newInspectCmd(app))

	return root
}

// resolveBasePath resolves path to an absolute directory that already exists.
// Called before any write so a bad path aborts with no side effects.
func resolveBasePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("base path %s does not exist", abs)
	}
	if err != nil {
		return "", fmt.Errorf("stat base path: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("base path %s is not a directory", abs)
	}
	return abs, nil
}
