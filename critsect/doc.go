// Package critsect provides the scoped critical-section primitive used to
// guard data shared between task context and interrupt (or interrupt-like)
// context: the ptimer list, the event queue, and rtimer arming.
//
// Entering saves the current interrupt-enable state and disables
// interrupts; leaving restores the saved state. On the arch targets spec
// §4.1 describes, entry is nestable; the hosted Mutex implementation in
// this package is not reentrant (see its doc comment) and callers must
// enter exactly once per public operation instead.
package critsect
