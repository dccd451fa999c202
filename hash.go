package obf

import "github.com/spaolacci/murmur3"

// Hash128 produces the two 64-bit halves of a 128-bit hash of an
// element's byte representation. Implementations must be deterministic,
// and the halves must behave as independent uniform values for the
// double-hashing probe derivation to hold up.
type Hash128 func(data []byte) (h1, h2 uint64)

// Murmur128 is the default Hash128: MurmurHash3 x64_128 seeded with
// HashSeed.
func Murmur128(data []byte) (uint64, uint64) {
	return murmur3.Sum128WithSeed(data, HashSeed)
}
