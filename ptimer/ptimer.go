package ptimer

import (
	"github.com/marcas756/myos-sub001/critsect"
	"github.com/marcas756/myos-sub001/rtimer"
	"github.com/marcas756/myos-sub001/slist"
	"github.com/marcas756/myos-sub001/ts"
)

// Handler is invoked when a Timer expires, with the Timer that fired.
// It runs from whatever calls List.Poll (directly, or via the rtimer
// Controller's interrupt path) and must not block.
type Handler func(*Timer)

// Timer is one deadline-ordered entry: start is the tick it was last
// (re)phased from, span how far past start it expires. Both etimer and
// ctimer embed a Timer as their underlying mechanism.
type Timer struct {
	node    slist.Node[*Timer]
	start   ts.Timestamp
	span    ts.Span
	handler Handler
}

// Deadline returns the absolute tick this Timer expires at.
func (t *Timer) Deadline() ts.Timestamp {
	return ts.Deadline(t.start, t.span)
}

// Span reports the interval this Timer was (re)started with.
func (t *Timer) Span() ts.Span {
	return t.span
}

// List owns a set of Timers and the single rtimer.Controller they
// share. Construct with New, which wires itself as the Controller's
// handler.
type List struct {
	sec    critsect.Section
	clock  ts.Source
	rt     *rtimer.Controller
	timers slist.List[*Timer]
}

// New builds a List driven by clock and rt, guarded by sec. It installs
// itself as rt's interrupt handler, so rt must not already have one
// (or it will be replaced).
func New(clock ts.Source, rt *rtimer.Controller, sec critsect.Section) *List {
	l := &List{
		sec:   sec,
		clock: clock,
		rt:    rt,
	}
	rt.SetHandler(l.Poll)
	return l
}

func deadlineLess(a, b *slist.Node[*Timer]) bool {
	return ts.Before(a.Value.Deadline(), b.Value.Deadline())
}

// insert links t into the sorted position and re-arms rt if t is now
// (or remains) the soonest deadline. Caller must hold l.sec.
func (l *List) insert(t *Timer) {
	l.timers.InsertSorted(&t.node, deadlineLess)
	l.rearmLocked()
}

// rearmLocked arms rt at the current head's deadline, if any. Caller
// must hold l.sec.
func (l *List) rearmLocked() {
	if head := l.timers.Front(); head != nil {
		l.rt.Arm(head.Value.Deadline())
	}
}

// Start (re)initialises t to fire span ticks from now and links it
// into the list, replacing any previous schedule t had.
func (l *List) Start(t *Timer, span ts.Span, handler Handler) {
	l.sec.Enter()
	defer l.sec.Exit()

	t.start = l.clock.Now()
	t.span = span
	t.handler = handler
	l.insert(t)
}

// Restart re-arms t for another span ticks measured from now, keeping
// its existing span and handler. Unlike Reset, this resynchronises to
// the current tick rather than the timer's original phase.
func (l *List) Restart(t *Timer) {
	l.sec.Enter()
	defer l.sec.Exit()

	t.start = l.clock.Now()
	l.insert(t)
}

// Reset re-arms t for another span ticks measured from its *previous*
// deadline, not from now - "fire once and re-phase" (spec §9 open
// question 2): a timer polled long after it was due does not drift its
// schedule forward to chase the clock, and does not fire a storm of
// immediate repeats to catch up.
func (l *List) Reset(t *Timer) {
	l.sec.Enter()
	defer l.sec.Exit()

	t.start = t.Deadline()
	l.insert(t)
}

// Stop unlinks t, if linked, and re-arms rt at the new head. A stopped
// Timer that was never started, or already stopped, is a no-op.
func (l *List) Stop(t *Timer) {
	l.sec.Enter()
	defer l.sec.Exit()

	l.timers.Remove(&t.node)
	l.rearmLocked()
}

// Expired reports whether t's deadline has already passed, without
// mutating or unlinking it.
func (l *List) Expired(t *Timer) bool {
	return ts.Expired(l.clock.Now(), t.Deadline())
}

// Linked reports whether t is currently scheduled.
func (t *Timer) Linked() bool {
	return t.node.Linked()
}

// Poll walks the list from the head, firing (and unlinking) every
// Timer whose deadline has passed, then re-arms rt at the new head.
// It is installed as rt's interrupt handler by New, and may also be
// called directly (e.g. by a cooperative scheduler's idle loop) as a
// belt-and-braces catch-up poll.
func (l *List) Poll() {
	l.sec.Enter()
	defer l.sec.Exit()

	now := l.clock.Now()
	for {
		head := l.timers.Front()
		if head == nil {
			break
		}
		t := head.Value
		if !ts.Expired(now, t.Deadline()) {
			break
		}
		l.timers.Remove(head)
		if t.handler != nil {
			t.handler(t)
		}
	}
	l.rearmLocked()
}
