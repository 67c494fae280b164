package rtimer

import "github.com/marcas756/myos-sub001/ts"

// Backend is what a concrete architecture provides: a monotonic clock
// read and a means to arm one hardware timer for a future tick. It is
// the Go analogue of rtimer_arch_now/rtimer_arch_timer_set.
type Backend interface {
	Now() ts.Timestamp
	Set(stop ts.Timestamp)
}

// Handler is invoked (in whatever context the Backend fires from, e.g.
// a hosted goroutine standing in for an ISR) when the armed timer
// expires. It takes no arguments and returns nothing by design: spec
// §4.2 allows only minimal, non-blocking work at this layer.
type Handler func()

// Controller enforces "at most one timer armed" over a Backend. ptimer
// is the sole intended caller: it re-arms the Controller every time its
// own deadline-ordered list's head changes.
type Controller struct {
	backend Backend
	handler Handler
	armed   bool
}

// New wraps backend in a Controller. The returned Controller has no
// handler and is not armed.
func New(backend Backend) *Controller {
	return &Controller{backend: backend}
}

// Now reads the backend's monotonic clock.
func (c *Controller) Now() ts.Timestamp {
	return c.backend.Now()
}

// SetHandler installs the function invoked on expiry. It is normally
// called once, by whatever owns this Controller (ptimer.New), before
// any timer is armed.
func (c *Controller) SetHandler(h Handler) {
	c.handler = h
}

// Arm schedules the backend to fire at stop, superseding any
// previously armed deadline - only the single latest Arm call matters,
// matching the original's "set a new absolute stop value, the
// hardware only ever tracks one" contract.
func (c *Controller) Arm(stop ts.Timestamp) {
	c.backend.Set(stop)
	c.armed = true
}

// Armed reports whether a deadline is currently outstanding.
func (c *Controller) Armed() bool {
	return c.armed
}

// OnInterrupt must be invoked by the Backend when its hardware timer
// fires. It clears the armed flag and runs the installed Handler, if
// any; it is a no-op if no Handler was installed.
func (c *Controller) OnInterrupt() {
	c.armed = false
	if c.handler != nil {
		c.handler()
	}
}
