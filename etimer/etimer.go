package etimer

import (
	"github.com/marcas756/myos-sub001/event"
	"github.com/marcas756/myos-sub001/ptimer"
	"github.com/marcas756/myos-sub001/rtimer"
	"github.com/marcas756/myos-sub001/slist"
	"github.com/marcas756/myos-sub001/ts"
)

// Timer is an event-posting timer: a ptimer.Timer bound to a fixed
// owner Process, plus the event it posts to it on expiry - spec §4.6's
// etimer_start(&mut Etimer, span, &Process, event_id, data).
type Timer struct {
	pt     ptimer.Timer
	node   slist.Node[*Timer]
	owner  *event.Process
	evID   event.ID
	evData any
}

// Owner returns the Process this Timer posts its event to.
func (t *Timer) Owner() *event.Process {
	return t.owner
}

// Manager is the shared machinery behind every etimer.Timer: the
// ptimer.List they're all scheduled on, the Scheduler they post to,
// and the set of Timers whose last post attempt hit a full queue and
// must be retried.
type Manager struct {
	timers  *ptimer.List
	sched   *event.Scheduler
	pending slist.List[*Timer]
}

// NewManager builds a Manager over timers and sched, and takes over
// rt's interrupt handler so every ptimer.List.Poll pass is immediately
// followed by a retry of any pending etimer posts (spec §6 open
// question 3). rt must be the same Controller timers was built on.
func NewManager(rt *rtimer.Controller, timers *ptimer.List, sched *event.Scheduler) *Manager {
	m := &Manager{timers: timers, sched: sched}
	rt.SetHandler(func() {
		timers.Poll()
		m.retryPending()
	})
	return m
}

// Start (re)arms t to post {eventID, data} to owner in span ticks -
// spec §4.6's etimer_start(&mut Etimer, span, &Process, event_id,
// data). Most callers that just want a wakeup tick pass event.Timeout
// and nil data, but t can carry any application-defined event.ID/data
// pair, same as a plain Post would.
func (m *Manager) Start(t *Timer, span ts.Span, owner *event.Process, eventID event.ID, data any) {
	t.owner = owner
	t.evID = eventID
	t.evData = data
	m.pending.Remove(&t.node)
	m.timers.Start(&t.pt, span, func(*ptimer.Timer) { m.fire(t) })
}

// Restart re-arms t for another span ticks measured from now, keeping
// its existing owner and span.
func (m *Manager) Restart(t *Timer) {
	m.timers.Restart(&t.pt)
}

// Reset re-arms t for another span ticks measured from its previous
// deadline - "fire once and re-phase" (spec §6 open question 2), the
// operation a periodic poll driver calls in its WAIT_EVENT_UNTIL loop.
func (m *Manager) Reset(t *Timer) {
	m.timers.Reset(&t.pt)
}

// Stop cancels t: it is unlinked from both the deadline-ordered list
// and the pending-retry set.
func (m *Manager) Stop(t *Timer) {
	m.timers.Stop(&t.pt)
	m.pending.Remove(&t.node)
}

// Expired reports whether t's deadline has already passed.
func (m *Manager) Expired(t *Timer) bool {
	return m.timers.Expired(&t.pt)
}

func (m *Manager) fire(t *Timer) {
	m.post(t)
}

// post attempts to deliver {t.evID, t.evData, Target: t.owner}. An
// owner that has already exited is a silent cancellation (spec §4.6);
// a full queue links t into the pending set for retry on the next
// poll pass, rather than losing the event.
func (m *Manager) post(t *Timer) {
	if !m.sched.IsRegistered(t.owner) {
		m.pending.Remove(&t.node)
		return
	}

	if err := m.sched.Post(event.Event{ID: t.evID, Data: t.evData, Target: t.owner}); err != nil {
		m.pending.PushFront(&t.node)
		return
	}

	m.pending.Remove(&t.node)
}

func (m *Manager) retryPending() {
	m.pending.Each(func(n *slist.Node[*Timer]) bool {
		t := n.Value
		m.pending.Remove(n)
		m.post(t)
		return true
	})
}
