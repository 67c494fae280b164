package ts

import "golang.org/x/exp/constraints"

// TicksPerSecond is the default rate of the coarse (ptimer) monotonic
// counter, in Hz. It corresponds to TIMESTAMP_TICKS_PER_SEC.
const TicksPerSecond = 1000

// Timestamp is a tick count of a monotonic clock. It wraps around its
// width; comparisons between two Timestamp values must go through Diff,
// Before, After, or Compare, never raw relational operators.
type Timestamp uint32

// Span is the unsigned distance between two timestamps.
type Span uint32

// Source reads the current monotonic tick count. Implementations must be
// safe to call from both task and interrupt context; on platforms where
// the underlying counter cannot be read atomically, implementations must
// use a double-read-until-stable protocol (read twice, retry if the two
// reads differ).
type Source interface {
	Now() Timestamp
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() Timestamp

// Now implements Source.
func (f SourceFunc) Now() Timestamp { return f() }

// Diff returns the signed difference (a - b), interpreted as a signed
// integer of the same width as Timestamp. Positive means a is later than
// b; negative means a is earlier than b (accounting for wraparound, as
// long as the true separation is less than half of Timestamp's range).
func Diff(a, b Timestamp) int32 {
	return int32(a - b)
}

// compareWrapped is the width-generic wrap-safe comparator Compare
// reduces to (Before, After and Expired use Diff instead): for an
// unsigned width T, a is "at or after" b iff their unsigned difference
// is no more than half of T's range - this holds as long as the true
// separation between any two compared values is less than half the
// counter's period, the same assumption spec.md's wrap-safe
// comparison relies on. Generic over constraints.Unsigned (rather
// than fixed to uint32) the same way go-catrate/ring.go is generic
// over constraints.Ordered, so a differently-sized counter width
// reuses this logic unchanged.
func compareWrapped[T constraints.Unsigned](a, b T) int {
	d := a - b
	half := ^T(0) / 2
	switch {
	case d == 0:
		return 0
	case d <= half:
		return 1
	default:
		return -1
	}
}

// Compare returns -1, 0, or 1 depending on whether a is before, equal to,
// or after b, under wrap-safe comparison.
func Compare(a, b Timestamp) int {
	return compareWrapped(uint32(a), uint32(b))
}

// Before reports whether a is strictly before b.
func Before(a, b Timestamp) bool { return Diff(a, b) < 0 }

// After reports whether a is strictly after b.
func After(a, b Timestamp) bool { return Diff(a, b) > 0 }

// Expired reports whether deadline has already passed at now, i.e.
// now - deadline >= 0 under wrap-safe comparison.
func Expired(now, deadline Timestamp) bool {
	return Diff(now, deadline) >= 0
}

// Deadline computes start + span, the canonical form of a scheduled
// expiry (spec: "an interval [start, stop] with stop = start + span is
// the canonical form of a scheduled deadline").
func Deadline(start Timestamp, span Span) Timestamp {
	return start + Timestamp(span)
}
