package ctimer_test

import (
	"testing"

	"github.com/marcas756/myos-sub001/critsect"
	"github.com/marcas756/myos-sub001/ctimer"
	"github.com/marcas756/myos-sub001/event"
	"github.com/marcas756/myos-sub001/process"
	"github.com/marcas756/myos-sub001/ptimer"
	"github.com/marcas756/myos-sub001/rtimer"
	"github.com/marcas756/myos-sub001/ts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	now ts.Timestamp
}

func (b *fakeBackend) Now() ts.Timestamp { return b.now }
func (b *fakeBackend) Set(ts.Timestamp)  {}

func newFixture() (*fakeBackend, *rtimer.Controller, *ctimer.Manager, *event.Scheduler) {
	backend := &fakeBackend{}
	ctrl := rtimer.New(backend)
	sched := event.New()
	timers := ptimer.New(backend, ctrl, critsect.Nop{})
	mgr := ctimer.NewManager(timers, sched)
	return backend, ctrl, mgr, sched
}

func startOwner(t *testing.T, sched *event.Scheduler, fn event.ThreadFunc) *event.Process {
	t.Helper()
	var owner event.Process
	require.NoError(t, sched.Start(&owner, "owner", fn, nil))
	return &owner
}

func TestCallbackInvokedOnExpiry(t *testing.T) {
	backend, ctrl, mgr, sched := newFixture()

	owner := startOwner(t, sched, func(pt *process.Proto, ev *event.Event) process.ThreadResult {
		return pt.Wait(1)
	})

	var called bool
	var payload string
	var ct ctimer.Timer

	// Start must be invoked as if from within owner's own thread
	// function, so Current() captures it as the owner - the test
	// drives this directly via PushActive/PopActive the way
	// Scheduler.dispatch would.
	sched.PushActive(owner)
	mgr.Start(&ct, 10, func(data any) {
		called = true
		payload = data.(string)
	}, "hello")
	sched.PopActive()

	backend.now = 10
	ctrl.OnInterrupt()

	assert.True(t, called)
	assert.Equal(t, "hello", payload)
}

func TestCallbackSeesOwnerAsActiveContext(t *testing.T) {
	backend, ctrl, mgr, sched := newFixture()

	owner := startOwner(t, sched, func(pt *process.Proto, ev *event.Event) process.ThreadResult {
		return pt.Wait(1)
	})

	var seenOwner *event.Process
	var ct ctimer.Timer

	sched.PushActive(owner)
	mgr.Start(&ct, 10, func(data any) {
		seenOwner = sched.Current()
	}, nil)
	sched.PopActive()

	backend.now = 10
	ctrl.OnInterrupt()

	assert.Same(t, owner, seenOwner)
	assert.Nil(t, sched.Current(), "active stack must be empty again after the callback returns")
}

func TestExitedOwnerSilentlyCancelsCallback(t *testing.T) {
	backend, ctrl, mgr, sched := newFixture()

	owner := startOwner(t, sched, func(pt *process.Proto, ev *event.Event) process.ThreadResult {
		return pt.Exit()
	})
	require.True(t, owner.Exited())

	var called bool
	var ct ctimer.Timer
	sched.PushActive(owner)
	mgr.Start(&ct, 10, func(data any) { called = true }, nil)
	sched.PopActive()

	backend.now = 10
	assert.NotPanics(t, ctrl.OnInterrupt)
	assert.False(t, called)
}

func TestStopPreventsCallback(t *testing.T) {
	backend, ctrl, mgr, sched := newFixture()
	owner := startOwner(t, sched, func(pt *process.Proto, ev *event.Event) process.ThreadResult {
		return pt.Wait(1)
	})

	var called bool
	var ct ctimer.Timer
	sched.PushActive(owner)
	mgr.Start(&ct, 10, func(data any) { called = true }, nil)
	sched.PopActive()

	mgr.Stop(&ct)
	backend.now = 10
	ctrl.OnInterrupt()

	assert.False(t, called)
}
