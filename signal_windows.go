package pstatus

import "syscall"

// SignalString returns the runtime's name for a signal number. Windows has
// no signal numbering of its own, so the Go runtime's names are as good as
// it gets.
func SignalString(s syscall.Signal) string {
	return s.String()
}
