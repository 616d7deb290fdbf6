package pstatus

import (
	"encoding/json"
	"fmt"
	"syscall"
)

// exitSignalOffset is the conventional offset a shell adds to a terminating
// signal number when reporting it as an exit code.
const exitSignalOffset = 128

// String renders the status in a human readable form, such as
// "exited with status 0" or "killed by signal SIGKILL (core dumped)".
func (s Status) String() string {
	if sig, ok := s.Signal(); ok {
		str := "killed by signal " + SignalString(syscall.Signal(sig))
		if core, _ := s.Core(); core {
			str += " (core dumped)"
		}
		return str
	}
	if exit, ok := s.Exit(); ok {
		return fmt.Sprintf("exited with status %d", exit)
	}
	return "no exit status or signal"
}

// ShellExitCode collapses the status into the single exit code a POSIX shell
// would report: the exit code itself after a normal exit, 128 plus the
// signal number after a signal death, and -1 when the status carries
// neither.
func (s Status) ShellExitCode() int {
	if exit, ok := s.Exit(); ok {
		return exit
	}
	if sig, ok := s.Signal(); ok {
		return exitSignalOffset + sig
	}
	return -1
}

// MarshalJSON encodes the status with explicit nulls for absent fields, so
// consumers can tell an exit code of zero from no exit code at all.
func (s Status) MarshalJSON() ([]byte, error) {
	var out struct {
		Exit   *int  `json:"exit"`
		Signal *int  `json:"signal"`
		Core   *bool `json:"core"`
		OK     bool  `json:"ok"`
	}
	if exit, ok := s.Exit(); ok {
		out.Exit = &exit
	}
	if sig, ok := s.Signal(); ok {
		out.Signal = &sig
	}
	if core, ok := s.Core(); ok {
		out.Core = &core
	}
	out.OK = s.OK()
	return json.Marshal(out)
}
