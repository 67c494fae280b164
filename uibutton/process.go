package uibutton

import (
	"github.com/marcas756/myos-sub001/etimer"
	"github.com/marcas756/myos-sub001/event"
	"github.com/marcas756/myos-sub001/process"
	"github.com/marcas756/myos-sub001/ts"
)

// TicksPerSecond is the poll rate, in Hz, the driver process runs
// buttons at.
const TicksPerSecond = 50

// PollSpan is one poll period expressed as a ts.Span, derived from
// TicksPerSecond - the original's TIMESTAMP_TICKS_PER_SEC/50 ticks.
const PollSpan ts.Span = 1000 / TicksPerSecond

const labelLoop = 1

// StartDriver registers a process that polls buttons at TicksPerSecond
// for as long as the process runs, the Go rendition of
// original_source/project/source/myos/portable/ui/uibuttons_process.c.
// StartDriver runs InitAll over buttons once, before the driver starts;
// every poll tick then walks the same slice, so an element replaced
// afterwards is polled without having been initialised.
func StartDriver(sched *event.Scheduler, timers *etimer.Manager, buttons []*Button) *event.Process {
	InitAll(buttons)

	var tmr etimer.Timer
	p := &event.Process{}

	err := sched.Start(p, "uibutton-driver", func(pt *process.Proto, ev *event.Event) process.ThreadResult {
		switch pt.Label() {
		case process.Begin:
			timers.Start(&tmr, PollSpan, sched.Current(), event.Timeout, nil)
			return pt.Wait(labelLoop)

		case labelLoop:
			if ev.ID != event.Timeout {
				return pt.Wait(labelLoop)
			}
			// catch up on every elapsed period before re-arming, the
			// Go rendition of the original's do/while(etimer_expired)
			// loop - guards against a stalled scheduler skipping
			// polls rather than just running them late.
			for {
				PollAll(buttons)
				timers.Reset(&tmr)
				if !timers.Expired(&tmr) {
					break
				}
			}
			return pt.Wait(labelLoop)
		}
		return pt.Exit()
	}, nil)
	if err != nil {
		// StartDriver is only ever called with a fresh *event.Process,
		// so the only possible error is a programming mistake, not a
		// runtime condition callers need to handle.
		panic(err)
	}
	return p
}
