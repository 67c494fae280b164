package uibutton

import (
	"github.com/marcas756/myos-sub001/bitarray"
	"github.com/marcas756/myos-sub001/event"
	"github.com/marcas756/myos-sub001/myoslog"
)

// Feature names one independently toggleable engine of the button
// state machine, replacing the original's #if UIBUTTONS_ENABLE_*
// compile-time gates with a runtime bit.
type Feature int

const (
	FeatureDebounce Feature = iota
	FeatureEdges
	FeatureSinglePress
	FeatureLongPress
	FeatureRepeatPress
	FeatureMultiClick
	featureCount
)

// Features is the bitmask of enabled engines, backed by bitarray.
type Features struct {
	bits *bitarray.BitArray
}

// NewFeatures builds a Features value with exactly the given engines
// enabled.
func NewFeatures(enabled ...Feature) Features {
	b := bitarray.New(int(featureCount))
	for _, f := range enabled {
		b.Set(int(f))
	}
	return Features{bits: b}
}

// AllFeatures enables every engine - the original project's default
// build configuration.
func AllFeatures() Features {
	return NewFeatures(FeatureDebounce, FeatureEdges, FeatureSinglePress,
		FeatureLongPress, FeatureRepeatPress, FeatureMultiClick)
}

func (f Features) has(feat Feature) bool {
	return f.bits != nil && f.bits.Test(int(feat))
}

// Event is the action a Button broadcasts through its Scheduler, the
// Go rendition of the original's uibuttons_fire_* extern callbacks.
type Event int

const (
	RisingEdge Event = iota
	FallingEdge
	ShortPress
	LongPress
	LongerPress
	LongestPress
	LongRelease
	LongerRelease
	LongestRelease
	RepeatPress
	SingleClick
	DoubleClick
	TripleClick
)

// eventIDs maps each Event kind to the event.ID it is broadcast under -
// spec §4.8 "every 'emit X' is post_sync(broadcast, event_id_for_X,
// &button)" needs one event.ID per distinct emitted kind, not a single
// shared one a receiver would have to further switch on. The block
// starts at event.UserBase and is this package's alone to own; an
// application wiring its own UserBase-relative IDs elsewhere must
// start past tripleClickEventID.
var eventIDs = [...]event.ID{
	RisingEdge:     event.UserBase,
	FallingEdge:    event.UserBase + 1,
	ShortPress:     event.UserBase + 2,
	LongPress:      event.UserBase + 3,
	LongerPress:    event.UserBase + 4,
	LongestPress:   event.UserBase + 5,
	LongRelease:    event.UserBase + 6,
	LongerRelease:  event.UserBase + 7,
	LongestRelease: event.UserBase + 8,
	RepeatPress:    event.UserBase + 9,
	SingleClick:    event.UserBase + 10,
	DoubleClick:    event.UserBase + 11,
	TripleClick:    event.UserBase + 12,
}

// tripleClickEventID is the last event.ID this package reserves.
const tripleClickEventID = event.UserBase + 12

// EventID returns the event.ID a Button broadcasts when it emits evt.
func EventID(evt Event) event.ID {
	return eventIDs[evt]
}

// EventFromID reverses EventID: given an event.ID this package
// broadcasts under, it reports which Event kind produced it, and
// false if id isn't one of them.
func EventFromID(id event.ID) (Event, bool) {
	for evt := RisingEdge; evt <= TripleClick; evt++ {
		if eventIDs[evt] == id {
			return evt, true
		}
	}
	return 0, false
}

func (e Event) String() string {
	switch e {
	case RisingEdge:
		return "rising_edge"
	case FallingEdge:
		return "falling_edge"
	case ShortPress:
		return "short_press"
	case LongPress:
		return "long_press"
	case LongerPress:
		return "longer_press"
	case LongestPress:
		return "longest_press"
	case LongRelease:
		return "long_release"
	case LongerRelease:
		return "longer_release"
	case LongestRelease:
		return "longest_release"
	case RepeatPress:
		return "repeat_press"
	case SingleClick:
		return "single_click"
	case DoubleClick:
		return "double_click"
	case TripleClick:
		return "triple_click"
	default:
		return "unknown"
	}
}

// Config holds the engine tunables, all expressed in poll counts
// (number of Poll calls, not wall-clock time) exactly as the
// original's uint8 counters are - spec's uibutton driver polls every
// 20ms via etimer, so e.g. DebounceCount: 2 is ~40ms at that rate.
type Config struct {
	DebounceCount        int
	ClickTimeout         int
	RepeatDelay          int
	RepeatRate           int
	LongPressTimeout     int
	LongerPressTimeout   int
	LongestPressTimeout  int
}

// DefaultConfig returns tunables calibrated for a 50Hz (20ms) poll
// rate: ~40ms debounce, ~500ms click window, ~500ms initial repeat
// delay then ~100ms repeat rate, long-press buckets at ~1s/3s/5s.
func DefaultConfig() Config {
	return Config{
		DebounceCount:       2,
		ClickTimeout:        25,
		RepeatDelay:         25,
		RepeatRate:          5,
		LongPressTimeout:    50,
		LongerPressTimeout:  150,
		LongestPressTimeout: 250,
	}
}

type state uint8

const (
	stateReleased state = iota
	statePressed
	stateReleasedDebounce
	statePressedDebounce
)

// Button is one debounced, edge/repeat/long-press/multi-click tracked
// input, grounded on original_source/ui/uibuttons.c's uibutton_t and
// uibuttons_poll.
type Button struct {
	// Name identifies the button for logging; carries no runtime
	// meaning.
	Name string
	// Get reads the button's current raw (undebounced) state: true
	// means pressed.
	Get func() bool

	cfg      Config
	features Features
	sched    *event.Scheduler
	log      *myoslog.Logger

	prevState state

	debounceTimer int
	holdTimer     int
	repeatTimer   int
	clickTimer    int
	clickCount    int
}

// New builds a Button that broadcasts its Events through sched (spec
// §4.8: "every 'emit X' is post_sync(broadcast, event_id_for_X,
// &button)"). log is optional; when non-nil each emitted Event is
// logged at debug level, and a failed post_sync is logged as a
// warning. Call Init once before the first Poll to seed prevState from
// Get, the Go rendition of UIBUTTONS_INIT_ALL.
func New(name string, get func() bool, cfg Config, features Features, sched *event.Scheduler, log *myoslog.Logger) *Button {
	return &Button{Name: name, Get: get, cfg: cfg, features: features, sched: sched, log: log}
}

// Init seeds the button's settled state from a single read of Get,
// without firing any edge - called once before polling begins.
func (b *Button) Init() {
	if b.Get != nil && b.Get() {
		b.prevState = statePressed
	} else {
		b.prevState = stateReleased
	}
}

func pressedState(pressed bool) state {
	if pressed {
		return statePressed
	}
	return stateReleased
}

// fire broadcasts evt as {EventID(evt), Data: b} via sched.PostSync -
// spec §4.8's post_sync(broadcast, event_id_for_X, &button). A Button
// built without a Scheduler (sched == nil) fires nothing; this is only
// useful in tests exercising the state machine in isolation.
func (b *Button) fire(evt Event) {
	if b.log != nil {
		b.log.Debug().Str("button", b.Name).Str("event", evt.String()).Log("button event")
	}
	if b.sched == nil {
		return
	}
	if err := b.sched.PostSync(event.Event{ID: EventID(evt), Data: b}); err != nil && b.log != nil {
		b.log.Warning().Str("button", b.Name).Str("event", evt.String()).Err(err).Log("button event post failed")
	}
}

// transitionPressed reports the rising edge: settled-released to
// currently-pressed.
func (b *Button) transitionPressed(curr bool) bool {
	return b.prevState == stateReleased && curr
}

// transitionReleased reports the falling edge: settled-pressed to
// currently-released.
func (b *Button) transitionReleased(curr bool) bool {
	return b.prevState == statePressed && !curr
}

// transitionHeld reports "still pressed, one more poll while settled
// pressed" - the tick driving repeat press and long-press thresholds.
func (b *Button) transitionHeld(curr bool) bool {
	return b.prevState == statePressed && curr
}

// Poll reads Get once and advances the state machine by exactly one
// tick, broadcasting zero or more Events through the Scheduler passed
// to New. Call it at a steady
// rate (the spec's uibutton driver process does so at 50Hz via
// etimer) - the debounce/repeat/long-press/click timers are all
// counted in Poll calls, not wall-clock time.
func (b *Button) Poll() {
	if b.Get == nil {
		return
	}
	curr := b.Get()

	if b.features.has(FeatureDebounce) {
		if b.transitionPressed(curr) {
			b.prevState = statePressedDebounce
			b.debounceTimer = b.cfg.DebounceCount
		} else if b.transitionReleased(curr) {
			b.prevState = stateReleasedDebounce
			b.debounceTimer = b.cfg.DebounceCount
		}

		switch b.prevState {
		case statePressedDebounce:
			if curr {
				if b.debounceTimer != 0 {
					b.debounceTimer--
					return
				}
				b.prevState = stateReleased
			} else {
				b.prevState = stateReleased
				return
			}
		case stateReleasedDebounce:
			if !curr {
				if b.debounceTimer != 0 {
					b.debounceTimer--
					return
				}
				b.prevState = statePressed
			} else {
				b.prevState = statePressed
				return
			}
		}
	}

	if b.transitionPressed(curr) {
		if b.features.has(FeatureMultiClick) {
			b.clickTimer = b.cfg.ClickTimeout
		}
		if b.features.has(FeatureEdges) {
			b.fire(RisingEdge)
		}
		if b.features.has(FeatureLongPress) {
			b.holdTimer = 0
		}
		if b.features.has(FeatureRepeatPress) {
			b.fire(RepeatPress)
			b.repeatTimer = b.cfg.RepeatDelay
		}
	}

	if b.transitionHeld(curr) {
		if b.features.has(FeatureMultiClick) {
			b.clickTimer = b.cfg.ClickTimeout
		}
		if b.features.has(FeatureLongPress) {
			if b.holdTimer != 255 {
				b.holdTimer++
			}
		}
		if b.features.has(FeatureRepeatPress) {
			b.repeatTimer--
			if b.repeatTimer == 0 {
				b.fire(RepeatPress)
				b.repeatTimer = b.cfg.RepeatRate
			}
		}
		if b.features.has(FeatureLongPress) {
			switch b.holdTimer {
			case b.cfg.LongPressTimeout:
				b.fire(LongPress)
			case b.cfg.LongerPressTimeout:
				b.fire(LongerPress)
			case b.cfg.LongestPressTimeout:
				b.fire(LongestPress)
			}
		}
	}

	if b.transitionReleased(curr) {
		if b.features.has(FeatureMultiClick) {
			b.clickTimer = b.cfg.ClickTimeout
			b.clickCount++
		}
		if b.features.has(FeatureEdges) {
			b.fire(FallingEdge)
		}
		if b.features.has(FeatureLongPress) {
			switch {
			case b.holdTimer < b.cfg.LongPressTimeout:
				b.fire(ShortPress)
			case b.holdTimer < b.cfg.LongerPressTimeout:
				b.fire(LongRelease)
			case b.holdTimer < b.cfg.LongestPressTimeout:
				b.fire(LongerRelease)
			default:
				b.fire(LongestRelease)
			}
		} else if b.features.has(FeatureSinglePress) {
			b.fire(ShortPress)
		}
	}

	if b.features.has(FeatureMultiClick) {
		if b.clickTimer != 0 {
			b.clickTimer--
		} else {
			switch b.clickCount {
			case 0:
			case 1:
				b.fire(SingleClick)
			case 2:
				b.fire(DoubleClick)
			default:
				b.fire(TripleClick)
			}
			b.clickCount = 0
		}
	}

	b.prevState = pressedState(curr)
}

// PollAll polls every Button in buttons, in order - the Go rendition
// of UIBUTTONS_POLL_ALL.
func PollAll(buttons []*Button) {
	for _, b := range buttons {
		b.Poll()
	}
}

// InitAll seeds every Button in buttons from its Get - the Go
// rendition of UIBUTTONS_INIT_ALL.
func InitAll(buttons []*Button) {
	for _, b := range buttons {
		b.Init()
	}
}
