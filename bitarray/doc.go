// Package bitarray implements a packed bit set, grounded on the original
// project's lib/bitarray.h / myos/src/lib/bitarray.h macro-based bit
// array. It backs uibutton.Features, the Go-native replacement for the
// original's UIBUTTONS_ENABLE_* compile-time feature gates.
package bitarray
