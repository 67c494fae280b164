// Package ctimer is a ptimer.Timer that invokes a callback directly on
// expiry, with the Process active when ctimer.Manager.Start was called
// pushed as the active context for the duration of that callback
// (spec §4.7) - grounded on original_source/project/source/os/ctimer.c,
// whose ctimer_start captures PROCESS_THIS() into ctimer->context and
// whose timeout handler wraps the callback in
// PROCESS_CONTEXT_BEGIN/END.
//
// Unlike etimer, a ctimer callback runs synchronously from whatever
// calls ptimer.List.Poll; there is no queue to retry against, so a
// full event queue has no bearing on ctimer (spec §6 open question 3)
// and an owner that has already exited silently cancels the callback
// rather than invoking it.
package ctimer
