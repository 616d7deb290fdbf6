package pstatus

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// Windows has no wait status word, only an exit code, so finished processes
// are decoded as simplified statuses: there is never a terminating signal
// or a core dump to report.

// FromProcessState splits the exit code carried by a finished process
// state. The second value is false when the state holds no exit code.
func FromProcessState(ps *os.ProcessState) (Status, bool) {
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok {
		return Split(int(ws.ExitCode), Simplified), true
	}
	return Status{}, false
}

// FromError splits the exit code carried by an error returned from running
// a command. A nil error means a clean zero exit. The second value is false
// when the error carries no process state.
func FromError(err error) (Status, bool) {
	if err == nil {
		return Split(0, Simplified), true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return FromProcessState(exitErr.ProcessState)
	}
	return Status{}, false
}
