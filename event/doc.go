// Package event is the event queue and scheduler at the centre of the
// cooperative core (spec §4.5, §3): a bounded Queue of Event values,
// a Scheduler that dispatches each one to its unicast target or
// broadcasts it to every registered Process, and an active-context
// stack so a timer or event posted while a process's thread function
// is running is correctly attributed to that process rather than to
// whatever last called Scheduler.RunOnce.
//
// Grounded on src/core/scheduler.c's scheduler_run (check queue ->
// receive -> dispatch unicast-or-broadcast -> dequeue) and spec §3's
// Process/Event data model, generalised from a fixed static task list
// to runtime registration via Scheduler.Start/Stop the way the teacher's eventloop
// generalises a single goroutine's callback queue into a registry of
// targets.
package event
