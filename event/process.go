package event

import (
	"github.com/marcas756/myos-sub001/dlist"
	"github.com/marcas756/myos-sub001/process"
)

// ThreadFunc is the signature every registered process's thread
// function must have: given its resume-token Proto and the Event it is
// being dispatched with, run until the next yield and report the
// outcome (spec §4.4).
type ThreadFunc func(*process.Proto, *Event) process.ThreadResult

// Process is one registered, runnable protothread. Callers allocate
// the struct themselves (a local var, a field of a larger struct) and
// register it with Scheduler.Start/Spawn - the same caller-owns-the-
// struct convention as ptimer.Timer/etimer.Timer/ctimer.Timer - so
// Start can tell "p is already a live member of the process list"
// apart from "p is fresh" by inspecting p itself (spec §4.4 point 1's
// idempotence requirement: "if already in the process list, return
// unchanged").
type Process struct {
	// Name identifies the process for logging/debugging; it carries no
	// runtime meaning and need not be unique.
	Name string

	proto     process.Proto
	fn        ThreadFunc
	node      dlist.Node[*Process]
	started   bool
	exited    bool
	needsPoll bool
}

// Exited reports whether this Process has returned process.Exited and
// been removed from its Scheduler's process list. A Target referring
// to an exited Process is rejected with ErrProcessExited rather than
// dispatched (spec §4.6/§4.7 "silent cancellation if owner exited" is
// handled by etimer/ctimer checking IsRegistered themselves before
// posting/firing; Scheduler.Post/PostSync reject it outright).
func (p *Process) Exited() bool {
	return p.exited
}
