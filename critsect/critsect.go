package critsect

import "sync"

// Section is the scoped interrupt-masking contract (spec §4.1, §6 item 4).
// Enter blocks until exclusive access is held; Exit releases it. Nesting
// from the same logical context must not deadlock.
type Section interface {
	Enter()
	Exit()
}

// Guard enters s and returns a function that exits it, so callers can
// write:
//
//	defer critsect.Guard(s)()
func Guard(s Section) func() {
	s.Enter()
	return s.Exit
}

// Nop is a Section that performs no synchronization at all, for use on a
// single-goroutine host where task and "interrupt" context never actually
// run concurrently (e.g. a simulated rtimer driven from the same
// goroutine as the scheduler).
type Nop struct{}

// Enter implements Section.
func (Nop) Enter() {}

// Exit implements Section.
func (Nop) Exit() {}

// Mutex is a Section backed by a sync.Mutex, for hosted backends where the
// "interrupt" is actually a concurrent goroutine (e.g. rtimerhosted's
// timer-driven goroutine racing the scheduler goroutine).
//
// Unlike the arch-level nestable disable/enable spec §4.1 describes,
// Go offers no per-goroutine reentrant mutex: Mutex must be entered
// exactly once per public operation and never nested within the same
// call chain. ptimer and event.Queue are structured so every exported
// method enters the section at most once, which satisfies this.
type Mutex struct {
	mu   sync.Mutex
	held bool
}

// Enter acquires the section.
func (m *Mutex) Enter() {
	m.mu.Lock()
	m.held = true
}

// Exit releases the section.
func (m *Mutex) Exit() {
	m.held = false
	m.mu.Unlock()
}

// Held reports whether the section is currently held by some goroutine.
// Intended for assertions in tests and InvariantViolation checks, not for
// synchronization decisions.
func (m *Mutex) Held() bool {
	return m.held
}
