package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), c.Config.String())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.configPath)
			return nil
		},
	})

	return cmd
}
