// Package cmd holds the lsh command tree.
package cmd

import (
	"errors"
	"io/fs"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/steuyve/lsh/core/config"
)

var cfgPath string

// loadConfig reads the configuration directory, falling back to the
// embedded defaults when no file exists there.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("path", cfgPath).Debug("no configuration found, using defaults")
		return config.Default(), nil
	}
	return configuration, err
}

// rootCmd runs the interactive shell when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "lsh",
	Short: "A simple shell",
	Long: `lsh is a minimal interactive command interpreter: it reads a line,
splits it into whitespace-delimited tokens, runs builtins (cd, help,
exit) in-process and everything else as an external program.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
