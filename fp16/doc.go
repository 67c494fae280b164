// Package fp16 implements signed Q-format fixed-point arithmetic over a
// 16-bit range, grounded on the original project's lib/fp16/fp16.c/.h.
// Spec §1 lists fixed-point arithmetic among the commodity primitives
// explicitly out of scope for the core; it is supplemented here as a
// leaf package used by cmd/myos-demo to simulate an analog sensor
// reading, without folding it into the core's invariants.
package fp16
