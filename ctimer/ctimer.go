package ctimer

import (
	"github.com/marcas756/myos-sub001/event"
	"github.com/marcas756/myos-sub001/ptimer"
	"github.com/marcas756/myos-sub001/ts"
)

// Callback is invoked when a Timer expires, with the data it was
// started with.
type Callback func(data any)

// Timer is a callback timer: a ptimer.Timer paired with a Callback and
// the Process that was active when it was started.
type Timer struct {
	pt       ptimer.Timer
	callback Callback
	data     any
	owner    *event.Process
}

// Manager is the shared machinery behind every ctimer.Timer: the
// ptimer.List they're scheduled on and the Scheduler whose
// active-context stack Start captures from and Callback invocation
// pushes onto.
type Manager struct {
	timers *ptimer.List
	sched  *event.Scheduler
}

// NewManager builds a Manager over timers and sched.
func NewManager(timers *ptimer.List, sched *event.Scheduler) *Manager {
	return &Manager{timers: timers, sched: sched}
}

// Start arms t to invoke callback(data) after span ticks, capturing
// sched.Current() as t's owner - the Go rendition of ctimer_start's
// ctimer->context = PROCESS_THIS().
func (m *Manager) Start(t *Timer, span ts.Span, callback Callback, data any) {
	t.callback = callback
	t.data = data
	t.owner = m.sched.Current()
	m.timers.Start(&t.pt, span, func(*ptimer.Timer) { m.fire(t) })
}

// Stop cancels t.
func (m *Manager) Stop(t *Timer) {
	m.timers.Stop(&t.pt)
}

// Expired reports whether t's deadline has already passed.
func (m *Manager) Expired(t *Timer) bool {
	return m.timers.Expired(&t.pt)
}

func (m *Manager) fire(t *Timer) {
	// an owner that exited before this Timer fired cancels the
	// callback silently (spec §4.7) - ctimer has no queue to fall
	// back to, unlike etimer's re-fire-pending retry.
	if t.owner != nil && !m.sched.IsRegistered(t.owner) {
		return
	}
	if t.callback == nil {
		return
	}

	m.sched.PushActive(t.owner)
	defer m.sched.PopActive()
	t.callback(t.data)
}
