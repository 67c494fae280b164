// Package ringbuf implements a generic, fixed-capacity FIFO ring buffer.
//
// It backs the event queue (spec §3: "a bounded ring buffer of events
// with capacity E"). The indexing scheme (mask arithmetic over a
// power-of-two-sized backing slice, read/write cursors) is adapted from
// go-catrate's ringBuffer, simplified from an order-preserving,
// insert-anywhere ring (catrate sorts by timestamp) to a plain FIFO,
// since events have no intrinsic order beyond arrival.
package ringbuf
