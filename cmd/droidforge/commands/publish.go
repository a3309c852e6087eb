package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish [apps...]",
		Short: "Copy finished APKs into the distribution directory",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			return c.app.Publish(cmd.Context(), args, !debug)
		},
	}
	cmd.Flags().Bool("debug", false, "Publish the debug APK instead of the release APK")
	return cmd
}
