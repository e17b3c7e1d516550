package cli

import (
	"fmt"

	"github.com/alexanderramin/taskforge/internal/cli/formatter"
	"github.com/alexanderramin/taskforge/internal/config"
	"github.com/spf13/cobra"
)

func newInspectCmd(app *App) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the configuration of a scaffolded workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := resolveBasePath(path)
			if err != nil {
				return err
			}
			cfg, err := config.Load(base)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConfigInspect(cfg, app.Color))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Workspace base path")

	return cmd
}
