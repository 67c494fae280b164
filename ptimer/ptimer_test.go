package ptimer_test

import (
	"testing"

	"github.com/marcas756/myos-sub001/critsect"
	"github.com/marcas756/myos-sub001/ptimer"
	"github.com/marcas756/myos-sub001/rtimer"
	"github.com/marcas756/myos-sub001/ts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a controllable clock/arm stand-in: Now is set
// directly by the test, Set just records what deadline rtimer last
// asked to be armed at.
type fakeBackend struct {
	now     ts.Timestamp
	lastSet ts.Timestamp
}

func (b *fakeBackend) Now() ts.Timestamp     { return b.now }
func (b *fakeBackend) Set(stop ts.Timestamp) { b.lastSet = stop }

func newFixture() (*fakeBackend, *rtimer.Controller, *ptimer.List) {
	backend := &fakeBackend{now: 0}
	ctrl := rtimer.New(backend)
	list := ptimer.New(backend, ctrl, critsect.Nop{})
	return backend, ctrl, list
}

func TestStartArmsRtimerAtDeadline(t *testing.T) {
	backend, _, list := newFixture()
	var timer ptimer.Timer

	list.Start(&timer, 10, nil)

	assert.Equal(t, ts.Timestamp(10), timer.Deadline())
	assert.Equal(t, ts.Timestamp(10), backend.lastSet)
	assert.True(t, timer.Linked())
}

func TestPollFiresExpiredTimerAndUnlinks(t *testing.T) {
	backend, ctrl, list := newFixture()
	var timer ptimer.Timer
	var fired int

	list.Start(&timer, 5, func(*ptimer.Timer) { fired++ })

	backend.now = 5
	ctrl.OnInterrupt() // simulate the armed deadline firing

	assert.Equal(t, 1, fired)
	assert.False(t, timer.Linked())
}

func TestPollDoesNotFireBeforeDeadline(t *testing.T) {
	backend, ctrl, list := newFixture()
	var timer ptimer.Timer
	var fired int

	list.Start(&timer, 100, func(*ptimer.Timer) { fired++ })

	backend.now = 50
	ctrl.OnInterrupt()

	assert.Equal(t, 0, fired)
	assert.True(t, timer.Linked())
}

func TestListOrdersBySoonestDeadlineAndRearms(t *testing.T) {
	backend, _, list := newFixture()
	var a, b, c ptimer.Timer

	list.Start(&a, 100, nil)
	list.Start(&b, 10, nil)
	list.Start(&c, 50, nil)

	// the soonest deadline (b, at 10) must be what rtimer was last
	// armed for, regardless of start order.
	assert.Equal(t, ts.Timestamp(10), backend.lastSet)
}

func TestStopUnlinksAndRearmsNewHead(t *testing.T) {
	backend, _, list := newFixture()
	var a, b ptimer.Timer

	list.Start(&a, 10, nil)
	list.Start(&b, 20, nil)
	require.Equal(t, ts.Timestamp(10), backend.lastSet)

	list.Stop(&a)

	assert.False(t, a.Linked())
	assert.Equal(t, ts.Timestamp(20), backend.lastSet)
}

func TestResetRephasesFromPreviousDeadlineNotNow(t *testing.T) {
	backend, _, list := newFixture()
	var timer ptimer.Timer

	list.Start(&timer, 10, nil) // deadline 10

	backend.now = 35 // way past due, simulating a missed poll
	list.Reset(&timer)

	// re-phase from the *original* deadline (10), not from now (35):
	// new deadline is 10+10=20, already expired, not 35+10=45.
	assert.Equal(t, ts.Timestamp(20), timer.Deadline())
	assert.True(t, list.Expired(&timer))
}

func TestRestartResynchronisesFromNow(t *testing.T) {
	backend, _, list := newFixture()
	var timer ptimer.Timer

	list.Start(&timer, 10, nil)
	backend.now = 35
	list.Restart(&timer)

	assert.Equal(t, ts.Timestamp(45), timer.Deadline())
}

func TestExpiredReportsWithoutMutating(t *testing.T) {
	backend, _, list := newFixture()
	var timer ptimer.Timer
	list.Start(&timer, 10, nil)

	backend.now = 9
	assert.False(t, list.Expired(&timer))

	backend.now = 10
	assert.True(t, list.Expired(&timer))
	assert.True(t, timer.Linked(), "Expired must not unlink")
}

func TestPollFiresMultipleExpiredTimersInDeadlineOrder(t *testing.T) {
	backend, ctrl, list := newFixture()
	var order []int
	var a, b, c ptimer.Timer

	list.Start(&a, 30, func(*ptimer.Timer) { order = append(order, 1) })
	list.Start(&b, 10, func(*ptimer.Timer) { order = append(order, 2) })
	list.Start(&c, 20, func(*ptimer.Timer) { order = append(order, 3) })

	backend.now = 100
	ctrl.OnInterrupt()

	assert.Equal(t, []int{2, 3, 1}, order)
}
