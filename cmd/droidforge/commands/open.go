package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <app>",
		Short: "Open the app's generated project folder in the file manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Open(cmd.Context(), args[0])
		},
	}
}
