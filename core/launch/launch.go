// Package launch spawns external commands and waits for them to
// finish. It is the interpreter's only interface to process creation.
package launch

// Launcher runs an external command described by a non-empty argument
// vector, blocking the caller until the child reaches a terminal state
// (exited or killed by a signal; a merely stopped child does not count).
//
// Recoverable failures such as an unresolvable command name or a spawn
// failure are reported on the launcher's error stream and yield a nil
// return so the interpreter keeps running. A non-nil error means the
// wait machinery itself failed and the interpreter cannot safely
// continue.
type Launcher interface {
	Launch(args []string) error
}
