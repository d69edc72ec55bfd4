package ir

import "github.com/cespare/xxhash/v2"

// Hasher digests a member name to the 32-bit key used for object lookup.
// The same function must be used when names are stored and when lookup
// keys are presented; it must be deterministic across calls.
type Hasher func(name []byte) uint32

// HashKey is the default Hasher, a 32-bit fold of xxhash. Object lookup
// compares hashes only, with no fallback string comparison: two distinct
// names that collide are indistinguishable to Get and friends.
func HashKey(name []byte) uint32 {
	h := xxhash.Sum64(name)
	return uint32(h>>32) ^ uint32(h)
}

// KeyOf returns the doc's hash of name, for use with GetHash.
func (d *Doc) KeyOf(name string) uint32 {
	return d.hash([]byte(name))
}
