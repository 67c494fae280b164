package rtimerhosted

import (
	"sync"
	"time"

	"github.com/marcas756/myos-sub001/rtimer"
	"github.com/marcas756/myos-sub001/ts"
	"golang.org/x/sys/unix"
)

// backend implements rtimer.Backend on top of a monotonic clock read
// via unix.ClockGettime and a single time.Timer that re-arms on every
// Set call, mirroring "the hardware only ever tracks one deadline".
type backend struct {
	mu      sync.Mutex
	epoch   ts.Timestamp // monotonic reading at construction; Now does not offset by it
	started time.Time    // wall-clock instant paired with epoch
	timer   *time.Timer
	onFire  func()
}

// New builds an rtimer.Controller backed by the host's monotonic clock
// and a goroutine-driven one-shot timer. The returned func stops any
// outstanding timer and must be called to release resources.
func New() (*rtimer.Controller, func()) {
	b := &backend{started: time.Now()}
	b.epoch = b.readNow()

	ctrl := rtimer.New(b)
	b.onFire = ctrl.OnInterrupt

	stop := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.timer != nil {
			b.timer.Stop()
			b.timer = nil
		}
	}

	return ctrl, stop
}

// readNow reads CLOCK_MONOTONIC directly, the way rtimer_arch_now would
// read a free-running hardware counter, rather than deriving from
// time.Since(b.started) - this keeps the clock source genuinely
// independent of process-local wall-clock bookkeeping.
func (b *backend) readNow() ts.Timestamp {
	var tv unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &tv); err != nil {
		// a monotonic clock read failing is not a recoverable condition
		// on any host this backend targets.
		panic("rtimerhosted: clock_gettime(CLOCK_MONOTONIC) failed: " + err.Error())
	}
	ms := tv.Sec*1000 + tv.Nsec/1_000_000
	return ts.Timestamp(uint32(ms))
}

// Now implements rtimer.Backend.
func (b *backend) Now() ts.Timestamp {
	return b.readNow()
}

// Set implements rtimer.Backend: arms (or re-arms) the single
// underlying time.Timer to fire at stop, measured against the live
// monotonic clock so drift in how long Set itself took doesn't matter.
func (b *backend) Set(stop ts.Timestamp) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delay := time.Duration(ts.Diff(stop, b.readNow())) * time.Millisecond
	if delay < 0 {
		delay = 0
	}

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(delay, b.fire)
}

func (b *backend) fire() {
	b.mu.Lock()
	onFire := b.onFire
	b.mu.Unlock()
	if onFire != nil {
		onFire()
	}
}
