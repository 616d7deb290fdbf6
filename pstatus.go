// Package pstatus splits raw process termination statuses into their exit
// code, terminating signal and core dump flag.
//
// It understands two encodings. Native mode decodes the wait status word
// produced by the operating system's wait family of system calls. Simplified
// mode decodes the return code convention used by higher level process
// wrappers, where a non-negative value is an exit code, a negative value's
// magnitude is a signal number, and core dump information does not exist.
package pstatus

import (
	"fmt"
	"math"
)

// Mode selects the status encoding that Split decodes.
type Mode int

const (
	// Native decodes the bit layout of a raw wait status word.
	Native Mode = iota

	// Simplified decodes the return code convention of higher level
	// process wrappers.
	Simplified
)

func (m Mode) String() string {
	switch m {
	case Native:
		return "native"
	case Simplified:
		return "simplified"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Split decodes a raw termination status according to mode. It is a pure
// function and never fails; every integer has a defined decoding under both
// modes.
//
// The magnitude of math.MinInt is not representable, so in Simplified mode
// that one status decodes to a signal of math.MaxInt.
func Split(status int, mode Mode) Status {
	if mode == Simplified {
		return splitSimplified(status)
	}
	return splitNative(status)
}

// waitStatus picks apart the bit layout shared by waitpid style status
// words: the low 7 bits hold the terminating signal (zero for a normal
// exit, all ones for a stopped or continued process), bit 7 is the core
// dump flag, and the byte above holds the exit code.
type waitStatus int

const (
	statusMask    = 0x7f
	statusCore    = 0x80
	statusShift   = 8
	statusExited  = 0
	statusStopped = 0x7f
)

func (w waitStatus) exited() bool {
	return w&statusMask == statusExited
}

func (w waitStatus) signaled() bool {
	return w&statusMask != statusExited && w&statusMask != statusStopped
}

func (w waitStatus) exitStatus() int {
	return int(w>>statusShift) & 0xff
}

func (w waitStatus) signal() int {
	return int(w & statusMask)
}

// coreDump reads the core flag without classifying the word first, so it is
// meaningful even for stopped or continued statuses.
func (w waitStatus) coreDump() bool {
	return w&statusCore != 0
}

func splitNative(status int) Status {
	w := waitStatus(status)
	s := Status{core: w.coreDump(), hasCore: true}
	if w.signaled() {
		s.signal = w.signal()
		s.hasSignal = true
	}
	if w.exited() {
		s.exit = w.exitStatus()
		s.hasExit = true
	}
	return s
}

func splitSimplified(status int) Status {
	if status >= 0 {
		return Status{exit: status, hasExit: true}
	}
	sig := -status
	if sig < 0 {
		// -math.MinInt wraps back to math.MinInt
		sig = math.MaxInt
	}
	return Status{signal: sig, hasSignal: true}
}
