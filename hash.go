package aht

import "github.com/cespare/xxhash/v2"

// Hasher maps an arbitrary byte-string key to a 32-bit hash used for
// bucket dispatch. The table only ever uses hash(key) mod N; any function
// is a valid Hasher, including a constant one — every record then
// collides into a single bucket, but every invariant still holds.
type Hasher func(key []byte) uint32

// DefaultHasher is the Hasher New always uses and NewN falls back to when
// given nil.
// It truncates a 64-bit xxHash digest to 32 bits.
func DefaultHasher(key []byte) uint32 {
	return uint32(xxhash.Sum64(key))
}
