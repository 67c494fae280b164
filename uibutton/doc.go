// Package uibutton is the debounce / edge / repeat / long-press /
// multi-click button state machine (spec §4.8), grounded directly on
// original_source/ui/uibuttons.c's uibuttons_poll, with the original's
// compile-time `#if UIBUTTONS_ENABLE_*` feature gates collapsed into
// one code path gated at runtime by a Features bitmask (spec §9's
// re-architecture guidance), and its polling driven by a 20ms/50Hz
// etimer-based process, the Go rendition of
// original_source/project/source/myos/portable/ui/uibuttons_process.c.
package uibutton
