package launch

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Stream launches commands with stdio wired to arbitrary readers and
// writers, for callers whose terminal is not a set of real files (an
// SSH session, a test buffer). Waiting is delegated to os/exec, which
// only reports a child as done once it has terminated.
type Stream struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var _ Launcher = (*Stream)(nil)

func (l *Stream) Launch(args []string) error {
	path, err := exec.LookPath(args[0])
	if err != nil {
		fmt.Fprintf(l.Stderr, "lsh: %v\n", err)
		return nil
	}

	cmd := exec.Command(path)
	cmd.Args = args
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(l.Stderr, "lsh: %v\n", err)
		return nil
	}

	err = cmd.Wait()
	var exitErr *exec.ExitError
	if err == nil || errors.As(err, &exitErr) {
		// A failing external command does not stop the interpreter.
		return nil
	}
	return fmt.Errorf("wait for %s: %w", args[0], err)
}
