package hashutil

// SDBM computes the sdbm hash of data, seeded with seed (pass 0 for a
// fresh hash, or a prior result to chain/accumulate across buffers).
//
// hash(i) = hash(i-1) * 65599 + data[i]
//
// expressed via the shift-based identity used by gawk and reused,
// verbatim, by the original project:
//
//	seed = data[i] + (seed << 6) + (seed << 16) - seed
func SDBM(seed uint32, data []byte) uint32 {
	for _, b := range data {
		seed = uint32(b) + (seed << 6) + (seed << 16) - seed
	}
	return seed
}

// SDBMString is a convenience wrapper over SDBM for string input.
func SDBMString(seed uint32, s string) uint32 {
	return SDBM(seed, []byte(s))
}
