// Package rtimer is the "at most one armed" hardware one-shot timer
// contract (spec §4.2, §6): a Controller that can have exactly one
// deadline pending, backed by whatever concrete clock/arch a Backend
// implements. rtimerhosted supplies the hosted/Linux backend.
//
// The Controller itself does no locking: arming races with firing are
// the backend's problem to serialize (a real ISR can't run concurrently
// with the code that armed it; rtimerhosted's goroutine-based backend
// uses its own mutex for the same reason a hosted "ISR" can actually
// overlap the arming call in a way a single-core interrupt never does).
package rtimer
