package myoslog

import (
	"io"
	"os"

	"github.com/joeycumines/izerolog"
	"github.com/joeycumines/logiface"
	"github.com/rs/zerolog"
)

// Logger is the type every package in this module accepts for injected
// logging. A nil *Logger is valid and logs nothing - logiface.Logger's
// methods are nil-safe by construction, so packages never need a
// separate "no logger configured" branch.
type Logger = logiface.Logger[logiface.Event]

// Nop is the zero-cost default: a nil Logger, which discards everything.
var Nop *Logger

// NewZerolog builds a Logger backed by zerolog, writing to w at the
// given level. This is the concrete backend cmd/myos-demo wires up,
// mirroring the corpus's own logiface+izerolog pairing.
func NewZerolog(w io.Writer, level logiface.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	zl := zerolog.New(w).With().Timestamp().Logger()
	return izerolog.L.New(
		izerolog.L.WithZerolog(zl),
		izerolog.L.WithLevel(level),
	).Logger()
}
