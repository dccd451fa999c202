package obf

import "github.com/bits-and-blooms/bitset"

// BitArrayFilter is the classic Bloom filter variant: one-bit slots,
// probe rounds 0..k-1, each probe setting or testing a single bit.
//
// The zero value is not usable; construct with NewBitArrayFilter. A
// filter exclusively owns its slots and must not be copied; transfer
// ownership with Swap or Move.
type BitArrayFilter struct {
	core core
}

// NewBitArrayFilter sizes and zero-initializes a filter for the target
// false-positive rate and expected element capacity, hashing elements
// with Murmur128. See Sizing for the derivation and the construction
// errors.
func NewBitArrayFilter(falsePositive float64, capacity uint64) (*BitArrayFilter, error) {
	return NewBitArrayFilterWithHash(falsePositive, capacity, Murmur128)
}

// NewBitArrayFilterWithHash is NewBitArrayFilter with a caller-supplied
// hash.
func NewBitArrayFilterWithHash(falsePositive float64, capacity uint64, hash Hash128) (*BitArrayFilter, error) {
	if hash == nil {
		return nil, ErrNilHash
	}
	m, k, err := Sizing(falsePositive, capacity)
	if err != nil {
		return nil, err
	}
	return &BitArrayFilter{core: newBitCore(m, k, hash)}, nil
}

func newBitCore(slotCount, rounds uint64, hash Hash128) core {
	return core{
		slots:     &bitSlots{bits: bitset.New(uint(slotCount))},
		slotCount: slotCount,
		rounds:    rounds,
		hash:      hash,
	}
}

// Add records elem's probe positions. Idempotent.
func (f *BitArrayFilter) Add(elem []byte) {
	f.core.add(elem)
}

// AddString records the raw bytes of s.
func (f *BitArrayFilter) AddString(s string) {
	f.Add([]byte(s))
}

// Contains reports whether elem was possibly added. False means
// definitely not; true may be a false positive at roughly the
// configured target rate.
func (f *BitArrayFilter) Contains(elem []byte) bool {
	return f.core.contains(elem)
}

// ContainsString is Contains over the raw bytes of s.
func (f *BitArrayFilter) ContainsString(s string) bool {
	return f.Contains([]byte(s))
}

// Clear resets every slot to zero. Sizing is unchanged.
func (f *BitArrayFilter) Clear() {
	f.core.clear()
}

// Swap exchanges the two filters' storage, sizing, and hash.
func (f *BitArrayFilter) Swap(other *BitArrayFilter) {
	f.core, other.core = other.core, f.core
}

// Move transfers the filter's storage to a new instance. The receiver
// is left empty and zero-sized but safe to use: Add and Clear become
// no-ops and Contains probes zero rounds.
func (f *BitArrayFilter) Move() *BitArrayFilter {
	moved := &BitArrayFilter{core: f.core}
	f.core = newBitCore(0, 0, f.core.hash)
	return moved
}

// SlotCount returns the number of one-bit slots.
func (f *BitArrayFilter) SlotCount() uint64 {
	return f.core.slotCount
}

// Rounds returns the number of probe rounds per element.
func (f *BitArrayFilter) Rounds() uint64 {
	return f.core.rounds
}

// bitSlots adapts a bit set to the slotStore capability: rounds are
// zero-based and every probe records rank 1.
type bitSlots struct {
	bits *bitset.BitSet
}

func (s *bitSlots) firstRound() uint64 { return 0 }

func (s *bitSlots) rank(uint64) uint8 { return 1 }

func (s *bitSlots) value(idx uint64) uint8 {
	if s.bits.Test(uint(idx)) {
		return 1
	}
	return 0
}

func (s *bitSlots) raise(idx uint64, v uint8) {
	if v != 0 {
		s.bits.Set(uint(idx))
	}
}

func (s *bitSlots) reset() {
	s.bits.ClearAll()
}
