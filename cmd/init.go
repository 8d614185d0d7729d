package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/steuyve/lsh/core/config"
)

// initCmd writes the default configuration and an SSH host key.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the lsh configuration in the config directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		_, err := config.Initialize(afero.NewOsFs(), cfgPath)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
