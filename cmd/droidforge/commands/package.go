package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "package [apps...]",
		Short: "Build release APKs (all declared apps when none are named)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Build(cmd.Context(), args, true)
		},
	}
}
