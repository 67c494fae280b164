// Package dlist implements a generic intrusive doubly linked list,
// supplementing slist for callers that need O(1) removal without a
// predecessor scan and bidirectional traversal. Grounded on the original
// project's proj/src/lib/dlist.h. The list has no sentinel node and is
// not circular: the head's Prev and the tail's Next are nil.
package dlist
