package event

import "errors"

// ErrQueueFull is returned by Queue.Post/Scheduler.Post when the
// bounded ring is already at capacity. Spec §3: "events are never
// silently dropped" - the caller always learns of the failure and
// decides what to do (etimer's re-fire-pending retry is the one place
// in this module that acts on it automatically).
var ErrQueueFull = errors.New("event: queue full")

// ErrAlreadyStarted is returned by Scheduler.Start/Spawn when p is
// already a live member of the process list - spec §4.4 point 1: "if
// already in the process list, return unchanged."
var ErrAlreadyStarted = errors.New("event: process already started")

// ErrUnknownTarget is returned by Scheduler.Post/PostSync when a
// non-nil Event.Target has never been registered via Start/Spawn.
var ErrUnknownTarget = errors.New("event: unknown target process")

// ErrProcessExited is returned by Scheduler.Post/PostSync when a
// non-nil Event.Target has already exited.
var ErrProcessExited = errors.New("event: target process already exited")
