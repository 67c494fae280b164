// Package etimer is a ptimer.Timer that posts event.Timeout to a fixed
// owner Process on expiry (spec §4.6), rather than invoking a callback
// directly - the mechanism most of this module's own processes
// (including uibutton's poll driver) use to wake on a schedule.
//
// Expiry runs from ptimer.List.Poll, which may itself be running from
// an interrupt-equivalent context; posting can therefore fail with
// event.ErrQueueFull. Per spec §6 open question 3, that failure is not
// fatal: the Timer marks itself "re-fire pending" and the rtimer
// handler installed by NewManager retries the post right after its
// next ptimer.List.Poll pass (on the next rtimer interrupt), rather
// than the event being lost. A Timer whose owner has already exited is cancelled
// silently instead of posted.
package etimer
