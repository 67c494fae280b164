package ringbuf

import "golang.org/x/exp/constraints"

// Ring is a fixed-capacity FIFO. The zero value is not usable; construct
// with New. Ring is not safe for concurrent use - callers that share a
// Ring between task and interrupt context must guard it with a
// critsect.Section.
type Ring[T any] struct {
	buf  []T
	r, w uint
}

// New creates a Ring with the given capacity, rounded up to the next
// power of two (mask-based indexing requires it). capacity must be
// positive. capacity's type is generic over constraints.Integer so a
// caller can size a Ring directly from whatever integer type it
// already has on hand (a config field typed uint16, an event.ID
// width, ...) without a manual int(...) conversion at the call site -
// the same width-generic numeric-constraint style
// go-catrate/ring.go uses golang.org/x/exp/constraints for, applied
// here to the capacity parameter rather than the element type (this
// ring's element, event.Event, isn't constraints.Ordered the way
// catrate's rate-limited values are).
func New[T any, N constraints.Integer](capacity N) *Ring[T] {
	if capacity <= 0 {
		panic("ringbuf: capacity must be positive")
	}
	size := N(1)
	for size < capacity {
		size <<= 1
	}
	return &Ring[T]{buf: make([]T, size)}
}

func (x *Ring[T]) mask(v uint) uint {
	return v & (uint(len(x.buf)) - 1)
}

// Len returns the number of queued elements.
func (x *Ring[T]) Len() int {
	return int(x.w - x.r)
}

// Cap returns the usable capacity (a power of two, possibly larger than
// requested).
func (x *Ring[T]) Cap() int {
	return len(x.buf)
}

// Full reports whether the ring is at capacity.
func (x *Ring[T]) Full() bool {
	return x.Len() == x.Cap()
}

// Empty reports whether the ring holds no elements.
func (x *Ring[T]) Empty() bool {
	return x.Len() == 0
}

// Push appends value to the tail. It reports false without modifying the
// ring if it is already full - overflow is never silent (spec §3:
// "events are never silently dropped"; the caller decides what to do
// with the failure).
func (x *Ring[T]) Push(value T) bool {
	if x.Full() {
		return false
	}
	x.buf[x.mask(x.w)] = value
	x.w++
	return true
}

// Pop removes and returns the head element. ok is false if the ring was
// empty, in which case the zero value of T is returned.
func (x *Ring[T]) Pop() (value T, ok bool) {
	if x.Empty() {
		return value, false
	}
	i := x.mask(x.r)
	value = x.buf[i]
	var zero T
	x.buf[i] = zero
	x.r++
	return value, true
}

// Peek returns the head element without removing it.
func (x *Ring[T]) Peek() (value T, ok bool) {
	if x.Empty() {
		return value, false
	}
	return x.buf[x.mask(x.r)], true
}
