//go:build unix

package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Proc launches commands with the interpreter's own file descriptors,
// environment and working directory, and waits on the child directly.
// It requires real files for stdio; use Stream when the interpreter is
// wired to arbitrary readers and writers.
type Proc struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

// NewProc returns a launcher bound to the process's standard streams.
func NewProc() *Proc {
	return &Proc{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

var _ Launcher = (*Proc)(nil)

func (l *Proc) Launch(args []string) error {
	path, err := exec.LookPath(args[0])
	if err != nil {
		fmt.Fprintf(l.Stderr, "lsh: %v\n", err)
		return nil
	}

	child, err := os.StartProcess(path, args, &os.ProcAttr{
		Files: []*os.File{l.Stdin, l.Stdout, l.Stderr},
	})
	if err != nil {
		fmt.Fprintf(l.Stderr, "lsh: %v\n", err)
		return nil
	}
	defer child.Release()

	return waitUntilDone(child.Pid)
}

// waitUntilDone blocks until pid exits or is killed. The wait uses
// WUNTRACED so a job-control stop is observed and waited through
// rather than mistaken for termination.
func waitUntilDone(pid int) error {
	var status unix.WaitStatus
	for {
		_, err := unix.Wait4(pid, &status, unix.WUNTRACED, nil)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return fmt.Errorf("wait for pid %d: %w", pid, err)
		}
		if terminal(status) {
			return nil
		}
		// Stopped: wait again until the child actually terminates.
	}
}

// terminal reports whether the wait status describes a child that is
// done, as opposed to one stopped by a job-control signal.
func terminal(status unix.WaitStatus) bool {
	return status.Exited() || status.Signaled()
}
