//go:build !windows

package pstatus

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// FromWaitStatus splits a status captured directly from the wait family of
// system calls.
func FromWaitStatus(ws unix.WaitStatus) Status {
	return Split(int(ws), Native)
}

// FromProcessState splits the wait status carried by a finished process
// state. The second value is false when the state holds no native wait
// status.
func FromProcessState(ps *os.ProcessState) (Status, bool) {
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok {
		return Split(int(ws), Native), true
	}
	return Status{}, false
}

// FromError splits the wait status carried by an error returned from
// running a command. A nil error means a clean zero exit. The second value
// is false when the error carries no process state.
func FromError(err error) (Status, bool) {
	if err == nil {
		return Split(0, Native), true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return FromProcessState(exitErr.ProcessState)
	}
	return Status{}, false
}
