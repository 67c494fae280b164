// Package process defines the resume-token and outcome-tag vocabulary
// shared by every protothread-style thread function in this module:
// Proto (the small integer identifying where a thread last yielded) and
// ThreadResult (what happened on this dispatch).
//
// Spec §9 re-architects the original's preprocessor-based protothread
// macros (which abuse switch/case labels inside a single C function) as
// an explicit Go state machine: a thread function is
//
//	func(pt *process.Proto, ev *event.Event) process.ThreadResult
//
// structured as a switch over pt.Label(), one case per resume point
// (BEGIN, each WAIT_EVENT/WAIT_EVENT_UNTIL/WAIT_UNTIL/YIELD/PAUSE, and
// END). A case that isn't ready to advance calls pt.Wait(sameLabel) to
// stay put; one that's ready calls pt.Wait(nextLabel), or pt.Exit() at
// the end. This package only supplies the two small types the
// convention is built from - the actual switch lives in each process's
// own thread function (see event and uibutton for worked examples).
package process
