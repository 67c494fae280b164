// Package slist implements a generic intrusive singly linked list.
//
// A Node is embedded by value inside whatever struct needs list
// membership (a ptimer, a process); the list only ever touches the
// Node's own link field, never allocates, and a Node is a member of at
// most one List at a time - mirroring the single-ownership intrusive
// list convention described by the original project's lib/slist.h and
// restated as the Go re-architecture target in spec §9.
package slist
