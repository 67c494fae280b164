// Package myoslog wires github.com/joeycumines/logiface, the structured
// logging facade the teacher corpus's go.mod depends on directly, to a
// github.com/joeycumines/izerolog (zerolog) backend. It provides the
// nil-safe, no-op default every package in this module falls back to
// when a caller doesn't supply a *logiface.Logger[logiface.Event] of
// their own - mirroring the "injected, leveled, structured logger"
// convention used throughout the rest of the go-utilpkg corpus (e.g.
// sql/export.Exporter.Logger), not a package-level mutable global.
package myoslog
