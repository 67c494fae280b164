// Package ts implements the monotonic timestamp service shared by rtimer
// and ptimer: a wrapping tick counter with wrap-safe comparison.
//
// All comparisons are done via the signed difference of two timestamps,
// never via the raw unsigned values, so a counter wraparound never
// produces an incorrect ordering as long as the actual separation between
// the two timestamps being compared is less than half the counter's range.
package ts
