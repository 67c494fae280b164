package event

import (
	"github.com/marcas756/myos-sub001/critsect"
	"github.com/marcas756/myos-sub001/ringbuf"
)

// Queue is the bounded ring buffer of pending Events (spec §3 "bounded
// ring buffer... overflow policy"), guarded by a critsect.Section since
// Post may be called from the same context that also drives rtimer's
// interrupt handler.
type Queue struct {
	sec critsect.Section
	buf *ringbuf.Ring[Event]
}

// NewQueue creates a Queue with room for capacity pending events,
// guarded by sec.
func NewQueue(capacity int, sec critsect.Section) *Queue {
	return &Queue{
		sec: sec,
		buf: ringbuf.New[Event](capacity),
	}
}

// Post appends ev to the tail of the queue. It returns ErrQueueFull,
// without blocking or retrying, if the queue is at capacity.
func (q *Queue) Post(ev Event) error {
	q.sec.Enter()
	defer q.sec.Exit()

	if !q.buf.Push(ev) {
		return ErrQueueFull
	}
	return nil
}

// Pop removes and returns the head Event, if any.
func (q *Queue) Pop() (Event, bool) {
	q.sec.Enter()
	defer q.sec.Exit()

	return q.buf.Pop()
}

// Len reports how many events are currently queued.
func (q *Queue) Len() int {
	q.sec.Enter()
	defer q.sec.Exit()

	return q.buf.Len()
}

// Empty reports whether the queue currently holds no events.
func (q *Queue) Empty() bool {
	q.sec.Enter()
	defer q.sec.Exit()

	return q.buf.Empty()
}
