package pstatus

// Status is the result of splitting a termination status. It is an immutable
// value; each field reports its own presence, so an exit code of zero is
// distinguishable from no exit code at all.
type Status struct {
	exit      int
	signal    int
	core      bool
	hasExit   bool
	hasSignal bool
	hasCore   bool
}

// Exit returns the exit code and whether the process terminated by exiting
// normally.
func (s Status) Exit() (int, bool) {
	return s.exit, s.hasExit
}

// Signal returns the signal number and whether the process was terminated by
// a signal.
func (s Status) Signal() (int, bool) {
	return s.signal, s.hasSignal
}

// Core returns the core dump flag and whether the encoding carried core dump
// information at all. Simplified statuses never do.
func (s Status) Core() (bool, bool) {
	return s.core, s.hasCore
}

// OK reports whether the process exited normally with an exit code of zero.
func (s Status) OK() bool {
	exit, ok := s.Exit()
	return ok && exit == 0
}
