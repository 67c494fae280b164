// Command myos-demo wires every package in this module into one
// running system: a hosted rtimer backend drives a ptimer list, which
// backs both an etimer-driven 50Hz button poller and a periodic
// sensor-sampling process, plus a one-shot ctimer calibration step,
// all dispatched through a single event.Scheduler.
package main

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joeycumines/logiface"
	"github.com/marcas756/myos-sub001/critsect"
	"github.com/marcas756/myos-sub001/ctimer"
	"github.com/marcas756/myos-sub001/etimer"
	"github.com/marcas756/myos-sub001/event"
	"github.com/marcas756/myos-sub001/fp16"
	"github.com/marcas756/myos-sub001/itempool"
	"github.com/marcas756/myos-sub001/myoslog"
	"github.com/marcas756/myos-sub001/process"
	"github.com/marcas756/myos-sub001/ptimer"
	"github.com/marcas756/myos-sub001/rtimer/rtimerhosted"
	"github.com/marcas756/myos-sub001/uibutton"
)

// reading is one simulated sensor sample, allocated from a fixed pool
// rather than the heap - standing in for spec §5's "no dynamic
// allocation in the core" on a host where the GC would otherwise do
// the job invisibly.
type reading struct {
	value fp16.Q
}

// sensorWave is a small scripted triangle wave, in Q8.8, read one
// sample per poll - a deterministic stand-in for an ADC channel.
var sensorWave = buildSensorWave()

func buildSensorWave() []fp16.Q {
	const frac = 8
	out := make([]fp16.Q, 0, 20)
	for v := 0; v <= 9; v++ {
		out = append(out, fp16.FromFloat(float64(v), frac))
	}
	for v := 9; v >= 0; v-- {
		out = append(out, fp16.FromFloat(float64(v), frac))
	}
	return out
}

const sensorFrac = 8

const (
	labelSensorLoop = 1
)

func main() {
	log := myoslog.NewZerolog(os.Stdout, logiface.LevelInfo)

	ctrl, stopRtimer := rtimerhosted.New()
	defer stopRtimer()

	// timers and the scheduler use distinct critsect.Mutex instances -
	// see DESIGN.md's concurrency-constraint note: etimer posts into
	// the scheduler's queue from inside a ptimer.List.Poll pass, so
	// sharing one non-reentrant Mutex across both would deadlock.
	timers := ptimer.New(ctrl, ctrl, &critsect.Mutex{})

	sched := event.New(
		event.WithQueueCapacity(128),
		event.WithCritsect(&critsect.Mutex{}),
		event.WithLogger(log),
	)

	etimers := etimer.NewManager(ctrl, timers, sched)
	ctimers := ctimer.NewManager(timers, sched)

	var buttonLine int32 // atomic bool, flipped by simulateInput
	button := uibutton.New(
		"demo-button",
		func() bool { return atomic.LoadInt32(&buttonLine) != 0 },
		uibutton.DefaultConfig(),
		uibutton.AllFeatures(),
		sched,
		log,
	)
	uibutton.StartDriver(sched, etimers, []*uibutton.Button{button})

	startSensorProcess(sched, etimers, ctimers, log)

	stop := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		close(stop)
	}()
	go simulateInput(&buttonLine, stop)

	log.Info().Log("myos demo starting")
	sched.Run(stop)
	log.Info().Log("myos demo stopped")
}

// startSensorProcess registers a process that samples sensorWave at
// 10Hz via etimer, plus a one-shot ctimer "calibration" step fired
// once at startup - exercising both timer flavours against the same
// scheduler.
func startSensorProcess(sched *event.Scheduler, etimers *etimer.Manager, ctimers *ctimer.Manager, log *myoslog.Logger) {
	pool := itempool.New[reading](4)
	var sampleTimer etimer.Timer
	var calibTimer ctimer.Timer
	idx := 0

	const sampleSpan = 100 // ticks; ts ticks are milliseconds, so this is 100ms

	var p event.Process
	err := sched.Start(&p, "sensor", func(pt *process.Proto, ev *event.Event) process.ThreadResult {
		switch pt.Label() {
		case process.Begin:
			ctimers.Start(&calibTimer, 10, func(data any) {
				log.Info().Log("sensor calibration complete")
			}, nil)
			etimers.Start(&sampleTimer, sampleSpan, sched.Current(), event.Timeout, nil)
			return pt.Wait(labelSensorLoop)

		case labelSensorLoop:
			if ev.ID != event.Timeout {
				return pt.Wait(labelSensorLoop)
			}
			i, r, ok := pool.Calloc()
			if ok {
				r.value = sensorWave[idx%len(sensorWave)]
				idx++
				log.Info().Float64("value", fp16.ToFloat(r.value, sensorFrac)).Log("sensor sample")
				pool.Free(i)
			}
			etimers.Reset(&sampleTimer)
			return pt.Wait(labelSensorLoop)
		}
		return pt.Exit()
	}, nil)
	if err != nil {
		panic(err)
	}
}

// simulateInput stands in for a physical button line: press for 100ms
// and release, then 150ms later press for 100ms and release again
// (inside the default click window, so the pair counts as a double
// click), then idle until stop.
func simulateInput(line *int32, stop <-chan struct{}) {
	press := func() { atomic.StoreInt32(line, 1) }
	release := func() { atomic.StoreInt32(line, 0) }

	sleep := func(d time.Duration) {
		select {
		case <-time.After(d):
		case <-stop:
		}
	}

	sleep(200 * time.Millisecond)
	press()
	sleep(100 * time.Millisecond)
	release()

	sleep(150 * time.Millisecond)
	press()
	sleep(100 * time.Millisecond)
	release()

	<-stop
}
