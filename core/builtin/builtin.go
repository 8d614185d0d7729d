// Package builtin holds the commands the interpreter runs in-process.
package builtin

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
)

// Status tells the read-eval loop whether to keep running.
type Status bool

const (
	Continue  Status = true
	Terminate Status = false
)

// Env is the slice of the interpreter a builtin may touch. Builtins
// write user output to Stdout and diagnostics to Stderr; the only
// mutation they can perform is a working-directory change.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Chdir  func(dir string) error

	// NoColor suppresses terminal colors in builtin output.
	NoColor bool
}

// Func is a builtin handler. The dispatcher guarantees args is
// non-empty and args[0] is the name the builtin was registered under.
type Func func(env *Env, args []string) Status

// Registry maps a command name to its handler. The registry is built
// once at startup and never mutated afterwards.
type Registry map[string]Func

// Default returns the fixed builtin table: cd, help and exit.
func Default() Registry {
	r := Registry{
		"cd":   Cd,
		"exit": Exit,
	}
	r["help"] = Help(r)
	return r
}

// Names returns the registered command names in sorted order.
func (r Registry) Names() []string {
	var names []string
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cd changes the process-wide working directory. Failures are reported
// and the loop continues; cd never stops the interpreter.
func Cd(env *Env, args []string) Status {
	if len(args) < 2 {
		fmt.Fprintln(env.Stderr, `lsh: expected argument to "cd"`)
		return Continue
	}
	// Arguments past the first are ignored.
	if err := env.Chdir(args[1]); err != nil {
		fmt.Fprintf(env.Stderr, "lsh: cd: %v\n", err)
	}
	return Continue
}

// Help returns the help builtin for the given registry so the listing
// always matches what is actually registered.
func Help(r Registry) Func {
	return func(env *Env, args []string) Status {
		banner := color.New(color.FgCyan, color.Bold)
		if env.NoColor {
			banner.DisableColor()
		}
		banner.Fprintln(env.Stdout, "lsh: a simple shell")
		fmt.Fprintln(env.Stdout, "Type program names and arguments, and hit enter.")
		fmt.Fprintln(env.Stdout, "The following are built in:")
		for _, name := range r.Names() {
			fmt.Fprintf(env.Stdout, "\t%s\n", name)
		}
		fmt.Fprintln(env.Stdout, "Use the man command for information on other programs.")
		return Continue
	}
}

// Exit stops the read-eval loop. It prints nothing and ignores any
// arguments.
func Exit(env *Env, args []string) Status {
	return Terminate
}
