// Package itempool implements a fixed-capacity free-list allocator,
// grounded on the original project's myos/src/lib/itempool.c /
// proj/src/lib/itempool.h. It is the mechanism application code uses to
// satisfy spec §5's "no dynamic allocation in the core" constraint
// outside of the core packages themselves - e.g. the fixed pool of
// preallocated sensor readings in cmd/myos-demo.
package itempool
