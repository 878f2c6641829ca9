package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [args...]",
		Short: "Run the built executable, forwarding extra arguments",
		Args:  cobra.ArbitraryArgs,
		// Everything after "run" belongs to the target executable, including
		// anything that looks like a flag.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), ".", args)
		},
	}
}
