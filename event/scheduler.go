package event

import (
	"github.com/marcas756/myos-sub001/critsect"
	"github.com/marcas756/myos-sub001/dlist"
	"github.com/marcas756/myos-sub001/myoslog"
	"github.com/marcas756/myos-sub001/process"
)

// Config holds Scheduler construction parameters, applied via Option
// (spec §6's config surface: event_queue_capacity et al.).
type Config struct {
	QueueCapacity int
	Section       critsect.Section
	Logger        *myoslog.Logger
}

// Option configures a Scheduler at construction, mirroring the
// teacher's functional-options constructors (eventloop.New(opts
// ...LoopOption)).
type Option func(*Config)

// WithQueueCapacity sets the bounded event queue's capacity. Default 64.
func WithQueueCapacity(n int) Option {
	return func(c *Config) { c.QueueCapacity = n }
}

// WithCritsect sets the Section guarding the event queue against
// concurrent access from a timer interrupt path; the process list is
// not guarded by it. Default is
// critsect.Nop{}, correct only for a single-goroutine host.
func WithCritsect(s critsect.Section) Option {
	return func(c *Config) { c.Section = s }
}

// WithLogger sets the Scheduler's diagnostic logger. Default is nil
// (myoslog.Nop), which logs nothing.
func WithLogger(l *myoslog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// Scheduler is the event-driven dispatcher (spec §4.5): a bounded
// Queue, a LIFO-of-registration process list, and an active-context
// stack used to attribute timers/events started mid-dispatch to the
// process currently running.
type Scheduler struct {
	queue     *Queue
	processes dlist.List[*Process]
	active    []*Process
	wake      chan struct{}
	log       *myoslog.Logger
}

// New builds a Scheduler from the given options.
func New(opts ...Option) *Scheduler {
	cfg := Config{
		QueueCapacity: 64,
		Section:       critsect.Nop{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Scheduler{
		queue: NewQueue(cfg.QueueCapacity, cfg.Section),
		wake:  make(chan struct{}, 1),
		log:   cfg.Logger,
	}
}

// Start registers p under name, links it into the process list, and
// dispatches it once with {event.Init, initData} before returning -
// mirroring process_start's immediate synchronous
// thread(pt, {INIT, init_data}) call (spec §4.4 point 3).
//
// If p is already a live member of the process list, Start changes
// nothing and returns ErrAlreadyStarted (spec §4.4 point 1: "if
// already in the process list, return unchanged") - callers that want
// a clean restart after exit must pass a fresh or exited *Process.
func (s *Scheduler) Start(p *Process, name string, fn ThreadFunc, initData any) error {
	if p.started && !p.exited {
		return ErrAlreadyStarted
	}

	*p = Process{Name: name, fn: fn, started: true}
	p.node.Value = p
	s.processes.PushFront(&p.node)

	s.log.Info().Str("name", name).Log("process started")

	s.dispatch(p, Event{ID: Init, Data: initData})
	return nil
}

// Spawn starts a child process exactly like Start - the name makes the
// parent/child relationship explicit for spec §4.4's SPAWN. A spawned
// process's eventual exit, whether by returning process.Exited or by
// Stop, is broadcast as {event.Exit, Data: p} (see exit below), so a
// parent thread waits for it with ordinary protothread dispatch code:
//
//	case stateWaitChild:
//		if ev.ID != event.Exit || ev.Data != &child {
//			return pt.Wait(stateWaitChild)
//		}
//
// No separate blocking primitive is needed beyond that guarantee.
func (s *Scheduler) Spawn(p *Process, name string, fn ThreadFunc, initData any) error {
	return s.Start(p, name, fn, initData)
}

// Stop dispatches a final event.Exit to p (if it hasn't already
// exited) and removes it from the process list regardless of what the
// thread function returns - a process cannot refuse to be stopped.
func (s *Scheduler) Stop(p *Process) {
	if p.exited {
		return
	}
	s.dispatch(p, Event{ID: Exit, Target: p})
	if !p.exited {
		s.exit(p)
	}
}

// exit retires p: it is unlinked from the process list and its exit is
// broadcast as a queued {event.Exit, Data: p}, so any process
// PT_WAIT_EVENT'ing for it (spec §4.4's SPAWN) observes it on the next
// RunOnce. This goes through the ordinary queue, not PostSync -
// exit is commonly reached from deep inside a dispatch already in
// progress (a child exiting synchronously inside its own Start call,
// itself called from its parent's still-running thread function), and
// an immediate reentrant broadcast back into that same in-flight
// thread function would observe stale protothread state. The queued
// broadcast is delivered once the current dispatch has fully unwound.
// A full queue drops the notification silently rather than panicking;
// there is no caller here to report the failure to.
func (s *Scheduler) exit(p *Process) {
	p.exited = true
	s.processes.Remove(&p.node)
	_ = s.Post(Event{ID: Exit, Data: p})
}

// Pause flags p to be polled again on the scheduler's next unit of
// work, without consuming bounded-queue capacity - spec §4.4's PAUSE
// ("yield and post a POLL event to self"), rendered the way Contiki's
// process_poll()/PROCESS_PAUSE pairing does it: the poll request lives
// outside the queue entirely, so it can never fail with ErrQueueFull,
// and RunOnce drains it ahead of any queued event (spec §4.5 point 5:
// "needs_poll ... drained before RunOnce/Run report idle").
func (s *Scheduler) Pause(p *Process) {
	p.needsPoll = true
	s.wakeup()
}

// IsRegistered reports whether p is non-nil and still a live member of
// this Scheduler's process list.
func (s *Scheduler) IsRegistered(p *Process) bool {
	return p != nil && p.started && !p.exited
}

// Current returns the process whose thread function is presently
// executing (the top of the active-context stack), or nil if none is
// - this is the Go rendition of PROCESS_THIS().
func (s *Scheduler) Current() *Process {
	if len(s.active) == 0 {
		return nil
	}
	return s.active[len(s.active)-1]
}

// PushActive pushes p onto the active-context stack. ctimer uses this
// to attribute its synchronous callback invocation to the process that
// was active when ctimer.Start captured it, even though the callback
// itself runs outside of Scheduler.RunOnce's own dispatch call.
func (s *Scheduler) PushActive(p *Process) {
	s.active = append(s.active, p)
}

// PopActive pops the most recently pushed active-context entry. It
// must be paired with a preceding PushActive.
func (s *Scheduler) PopActive() {
	if len(s.active) == 0 {
		return
	}
	s.active = s.active[:len(s.active)-1]
}

// validateTarget reports whether ev's non-nil Target is fit to receive
// an event: nil (broadcast) always passes; a Target that was never
// started is ErrUnknownTarget; one that has already exited is
// ErrProcessExited.
func (s *Scheduler) validateTarget(p *Process) error {
	switch {
	case p == nil:
		return nil
	case !p.started:
		return ErrUnknownTarget
	case p.exited:
		return ErrProcessExited
	default:
		return nil
	}
}

// Post enqueues ev and wakes a blocked Run. It returns ErrUnknownTarget
// or ErrProcessExited if ev.Target isn't a live registered process
// (checked eagerly, before the event ever touches the queue), or
// ErrQueueFull if the queue is at capacity - the event is never
// silently dropped on the caller's behalf (spec §3).
func (s *Scheduler) Post(ev Event) error {
	if err := s.validateTarget(ev.Target); err != nil {
		return err
	}
	if err := s.queue.Post(ev); err != nil {
		return err
	}
	s.wakeup()
	return nil
}

// PostSync dispatches ev immediately, bypassing the bounded queue
// entirely - spec §4.4's post_sync, documented there "for cross-process
// notifications that must not race with normal events". It is what
// uibutton uses to post its button events, so that every interested
// process has observed the event by the time the call that fired it
// returns. (exit does not use it: a process's termination is broadcast
// through the queue via Post.)
// PostSync applies the same target validation as Post, but can never
// fail with ErrQueueFull since it never touches the queue.
func (s *Scheduler) PostSync(ev Event) error {
	if err := s.validateTarget(ev.Target); err != nil {
		return err
	}
	if ev.Target != nil {
		s.dispatch(ev.Target, ev)
		return nil
	}
	for _, p := range s.ProcessList() {
		s.dispatch(p, ev)
	}
	return nil
}

func (s *Scheduler) wakeup() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// dispatch runs p's thread function with ev, pushing/popping the
// active-context stack around the call, and retires p if it exits.
func (s *Scheduler) dispatch(p *Process, ev Event) {
	if p.exited {
		return
	}
	s.PushActive(p)
	result := p.fn(&p.proto, &ev)
	s.PopActive()

	if result == process.Exited {
		s.exit(p)
	}
}

// ProcessList returns every live process, oldest-started first - the
// O(n) lookup of spec §3's "Process list". The process list is linked
// LIFO-of-start (PushFront on Start, per spec §3); walking from Back()
// via Prev() recovers registration order without a separate sequence
// counter (spec §6 open question 1).
func (s *Scheduler) ProcessList() []*Process {
	out := make([]*Process, 0, s.processes.Len())
	for n := s.processes.Back(); n != nil; n = n.Prev() {
		out = append(out, n.Value)
	}
	return out
}

// nextPolled returns the oldest-registered process with a pending
// Pause request, or nil if none is pending. Poll delivery is drained
// with priority over queued events so a paused process is never
// starved by, nor mistaken for, an idle scheduler (spec §4.5 point 5).
func (s *Scheduler) nextPolled() *Process {
	for n := s.processes.Back(); n != nil; n = n.Prev() {
		if n.Value.needsPoll {
			return n.Value
		}
	}
	return nil
}

// RunOnce performs a single unit of work and reports whether any was
// available: a pending Pause request takes priority and is dispatched
// as {event.Poll}; otherwise a single queued event (unicast or
// broadcast) is popped and dispatched. False means no process needed
// polling and the queue was empty - true idle (spec §4.5 point 5).
func (s *Scheduler) RunOnce() bool {
	if p := s.nextPolled(); p != nil {
		p.needsPoll = false
		s.dispatch(p, Event{ID: Poll, Target: p})
		return true
	}

	ev, ok := s.queue.Pop()
	if !ok {
		return false
	}

	if ev.Target != nil {
		if s.IsRegistered(ev.Target) {
			s.dispatch(ev.Target, ev)
		}
		return true
	}

	for _, p := range s.ProcessList() {
		s.dispatch(p, ev)
	}
	return true
}

// Run drains pending work via RunOnce until none remains, then blocks
// until Post/Pause wakes it or stop is closed/signalled. It returns
// once stop fires and pending work has been fully drained one last
// time.
func (s *Scheduler) Run(stop <-chan struct{}) {
	for {
		for s.RunOnce() {
		}
		select {
		case <-stop:
			for s.RunOnce() {
			}
			return
		case <-s.wake:
		}
	}
}
