package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/steuyve/lsh/core"
	"github.com/steuyve/lsh/core/builtin"
	"github.com/steuyve/lsh/core/launch"
	"github.com/steuyve/lsh/core/sessionlog"
)

// runInteractive is the root command: the interpreter on the process's
// own terminal.
func runInteractive(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	isTerminal := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())

	var recorder *sessionlog.Recorder
	if cfg.LogDir != "" {
		fd, err := core.OpenSessionLog(cfg.LogDir)
		if err != nil {
			logrus.WithError(err).Warn("session log unavailable")
		} else {
			defer fd.Close()
			recorder = sessionlog.New(fd)
		}
	}

	shell, err := core.NewShell(core.Options{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		IsTerminal: isTerminal,
		Launcher:   launch.NewProc(),
		Log:        recorder,
		NoColor:    core.SuppressColor(cfg.Color, isTerminal),
	})
	if err != nil {
		return err
	}
	defer shell.Close()

	status, err := shell.RunStartup(cfg.Startup)
	if err != nil || status == builtin.Terminate {
		return err
	}

	return shell.Run()
}
