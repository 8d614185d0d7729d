// Package core wires the interpreter together: the prompt, the
// read-eval loop and the builtin-vs-external dispatcher.
package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abiosoft/readline"
	"github.com/sirupsen/logrus"

	"github.com/steuyve/lsh/core/builtin"
	"github.com/steuyve/lsh/core/config"
	"github.com/steuyve/lsh/core/launch"
	"github.com/steuyve/lsh/core/sessionlog"
	"github.com/steuyve/lsh/core/token"
)

// EnvUser names the variable consulted for the prompt's user segment.
const EnvUser = "USER"

// Shell is one interpreter instance. The working directory it shows
// and mutates is process-wide state; every concurrent Shell in the
// same process observes the same directory.
type Shell struct {
	Readline *readline.Instance
	Builtins builtin.Registry
	Launcher launch.Launcher
	Log      *sessionlog.Recorder

	stdout  io.Writer
	stderr  io.Writer
	getenv  func(string) string
	getwd   func() (string, error)
	chdir   func(string) error
	noColor bool
}

// Options configure a Shell. Zero-valued fields fall back to the
// process's own streams and OS state.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// IsTerminal tells the line editor whether it may use terminal
	// escape sequences.
	IsTerminal bool

	// Width reports the terminal width for the line editor; optional.
	Width func() int

	// Getenv and Getwd supply the prompt's user and directory
	// segments; defaults read the real environment and CWD. Chdir is
	// what the cd builtin mutates; default os.Chdir.
	Getenv func(string) string
	Getwd  func() (string, error)
	Chdir  func(string) error

	Builtins builtin.Registry
	Launcher launch.Launcher
	Log      *sessionlog.Recorder
	NoColor  bool
}

// NewShell builds a Shell and its line reader. Close releases the
// reader when the caller is done.
func NewShell(opts Options) (*Shell, error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if opts.Getwd == nil {
		opts.Getwd = os.Getwd
	}
	if opts.Chdir == nil {
		opts.Chdir = os.Chdir
	}
	if opts.Builtins == nil {
		opts.Builtins = builtin.Default()
	}
	if opts.Launcher == nil {
		opts.Launcher = &launch.Stream{
			Stdin:  opts.Stdin,
			Stdout: opts.Stdout,
			Stderr: opts.Stderr,
		}
	}

	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(opts.Stdin),
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
		FuncIsTerminal: func() bool {
			return opts.IsTerminal
		},
	}
	if opts.Width != nil {
		cfg.FuncGetWidth = opts.Width
	}
	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &Shell{
		Readline: rl,
		Builtins: opts.Builtins,
		Launcher: opts.Launcher,
		Log:      opts.Log,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
		getenv:   opts.Getenv,
		getwd:    opts.Getwd,
		chdir:    opts.Chdir,
		noColor:  opts.NoColor,
	}, nil
}

func (s *Shell) Close() error {
	return s.Readline.Close()
}

// Prompt renders `user@cwd> ` from the USER variable and the current
// working directory.
func (s *Shell) Prompt() string {
	wd, err := s.getwd()
	if err != nil {
		wd = "?"
	}
	return fmt.Sprintf("%s@%s> ", s.getenv(EnvUser), wd)
}

func (s *Shell) env() *builtin.Env {
	return &builtin.Env{
		Stdout:  s.stdout,
		Stderr:  s.stderr,
		Chdir:   s.chdir,
		NoColor: s.noColor,
	}
}

// Execute dispatches one tokenized command: blank lines are ignored,
// an exact builtin-name match runs in-process and anything else goes
// to the launcher. A non-nil error is fatal to the whole shell.
func (s *Shell) Execute(args []string) (builtin.Status, error) {
	if len(args) == 0 {
		return builtin.Continue, nil
	}

	handler, isBuiltin := s.Builtins[args[0]]

	wd, _ := s.getwd()
	if err := s.Log.Record(sessionlog.Entry{
		User:    s.getenv(EnvUser),
		Dir:     wd,
		Argv:    args,
		Builtin: isBuiltin,
	}); err != nil {
		logrus.WithError(err).Warn("session log write failed")
	}

	if isBuiltin {
		return handler(s.env(), args), nil
	}

	if err := s.Launcher.Launch(args); err != nil {
		return builtin.Terminate, err
	}
	return builtin.Continue, nil
}

// RunStartup dispatches configured startup lines through the normal
// loop before the first prompt.
func (s *Shell) RunStartup(lines []string) (builtin.Status, error) {
	for _, line := range lines {
		status, err := s.Execute(token.Split(line))
		if err != nil || status == builtin.Terminate {
			return status, err
		}
	}
	return builtin.Continue, nil
}

// Run drives the read-eval loop until a dispatch asks to stop or a
// fatal error occurs. End of input is read as a blank line and does
// not end the loop on its own; only `exit` (or a fatal error) does.
func (s *Shell) Run() error {
	for {
		s.Readline.SetPrompt(s.Prompt())
		line, err := s.Readline.Readline()

		switch {
		case errors.Is(err, io.EOF):
			line = ""
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case err != nil:
			return fmt.Errorf("read line: %w", err)
		}

		status, err := s.Execute(token.Split(line))
		if err != nil {
			return err
		}
		if status == builtin.Terminate {
			return nil
		}
	}
}

// SuppressColor maps a configured color mode onto a concrete decision
// for the stream the shell writes to.
func SuppressColor(mode string, isTerminal bool) bool {
	switch mode {
	case config.ColorAlways:
		return false
	case config.ColorNever:
		return true
	default:
		return !isTerminal
	}
}
