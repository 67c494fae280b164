// Package hashutil implements the sdbm string/byte hash, grounded on the
// original project's project/src/mylib/hash_sdbm.c (itself a
// reimplementation of the classic sdbm/gawk hash). It has no role on the
// core's hot path; it exists to generate synthetic keys for itempool
// fixtures, as it does in the original project.
package hashutil
