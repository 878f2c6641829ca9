package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/grip/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <name> [version]",
		Short: "Fetch a dependency and integrate it into the project",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := ""
			if len(args) > 1 {
				version = args[1]
			}
			output, _ := cmd.Flags().GetString("output")

			return c.app.Install(cmd.Context(), ".", args[0], app.InstallOptions{
				Version: version,
				Output:  output,
			})
		},
	}
}
