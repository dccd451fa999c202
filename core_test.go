package obf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedHash pins every element to a chosen (h1, h2) pair so probe
// positions are exactly predictable.
func fixedHash(pairs map[string][2]uint64) Hash128 {
	return func(data []byte) (uint64, uint64) {
		h, ok := pairs[string(data)]
		if !ok {
			return Murmur128(data)
		}
		return h[0], h[1]
	}
}

// TestProbeRoundIndexing pins the per-variant round discipline over the
// shared (h1 + i*h2) mod m derivation. With 29 slots and 2 rounds, an
// element hashed to (10, 7) probes:
//
//	bit-array (rounds 0, 1): slots 10 and 17
//	ordinal   (rounds 1, 2): slots 17 and 24
func TestProbeRoundIndexing(t *testing.T) {
	hash := fixedHash(map[string][2]uint64{
		"x":     {10, 7},
		"at10":  {10, 0}, // probes slot 10 every round
		"at17":  {17, 0}, // probes slot 17 every round
		"at24":  {24, 0}, // probes slot 24 every round
		"from3": {3, 7},  // probes slots 3 then 10 (bit-array rounds)
		"x-ish": {10, 7}, // same probes as x
	})

	bits, err := NewBitArrayFilterWithHash(0.25, 10, hash)
	require.NoError(t, err)
	ord, err := NewOrdinalFilterWithHash(0.25, 10, hash)
	require.NoError(t, err)

	bits.AddString("x")
	ord.AddString("x")

	// Bit-array: slots 10 and 17 are set, slot 3 is not.
	require.True(t, bits.ContainsString("at10"))
	require.True(t, bits.ContainsString("at17"))
	require.False(t, bits.ContainsString("from3"))

	// Ordinal: slot 17 holds rank 1, slot 24 rank 2, slot 10 nothing.
	// Probing slot 17 at both rounds fails round 2 (rank 1 < 2); slot
	// 24's rank 2 satisfies both rounds; x's own probes pass.
	require.False(t, ord.ContainsString("at17"))
	require.True(t, ord.ContainsString("at24"))
	require.False(t, ord.ContainsString("at10"))
	require.True(t, ord.ContainsString("x-ish"))
}

// TestFilterInterface exercises both variants through the shared
// contract.
func TestFilterInterface(t *testing.T) {
	bits, err := NewBitArrayFilter(0.01, 100)
	require.NoError(t, err)
	ord, err := NewOrdinalFilter(0.01, 100)
	require.NoError(t, err)

	for _, f := range []Filter{bits, ord} {
		require.False(t, f.Contains([]byte("k")))
		f.Add([]byte("k"))
		require.True(t, f.Contains([]byte("k")))
		f.Clear()
		require.False(t, f.Contains([]byte("k")))
	}
}

func TestMurmur128Deterministic(t *testing.T) {
	h1a, h2a := Murmur128([]byte("stable"))
	h1b, h2b := Murmur128([]byte("stable"))
	require.Equal(t, h1a, h1b)
	require.Equal(t, h2a, h2b)

	// Distinct inputs should not share a full 128-bit hash.
	h1c, h2c := Murmur128([]byte("other"))
	require.False(t, h1a == h1c && h2a == h2c)
}
