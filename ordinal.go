package obf

// OrdinalFilter generalizes the bit-array variant: each slot holds the
// largest probe-round rank ever written there, and a query round i is
// satisfied only by a slot holding at least i. Probe rounds run 1..k
// (one-based, unlike BitArrayFilter) so the round index doubles as the
// recorded rank. The stronger per-slot predicate can reject elements
// the bit-array variant would accept, at one byte per slot instead of
// one bit.
//
// The zero value is not usable; construct with NewOrdinalFilter. A
// filter exclusively owns its slots and must not be copied; transfer
// ownership with Swap or Move.
type OrdinalFilter struct {
	core core
}

// NewOrdinalFilter sizes and zero-initializes a filter for the target
// false-positive rate and expected element capacity, hashing elements
// with Murmur128. Beyond the Sizing errors, it returns
// ErrRoundOverflow when the derived round count does not fit the
// ordinal slot range (MaxOrdinalRank).
func NewOrdinalFilter(falsePositive float64, capacity uint64) (*OrdinalFilter, error) {
	return NewOrdinalFilterWithHash(falsePositive, capacity, Murmur128)
}

// NewOrdinalFilterWithHash is NewOrdinalFilter with a caller-supplied
// hash.
func NewOrdinalFilterWithHash(falsePositive float64, capacity uint64, hash Hash128) (*OrdinalFilter, error) {
	if hash == nil {
		return nil, ErrNilHash
	}
	m, k, err := Sizing(falsePositive, capacity)
	if err != nil {
		return nil, err
	}
	if k > MaxOrdinalRank {
		return nil, ErrRoundOverflow
	}
	return &OrdinalFilter{core: newOrdinalCore(m, k, hash)}, nil
}

func newOrdinalCore(slotCount, rounds uint64, hash Hash128) core {
	return core{
		slots:     &ordinalSlots{ranks: make([]uint8, slotCount)},
		slotCount: slotCount,
		rounds:    rounds,
		hash:      hash,
	}
}

// Add records elem's probe positions, keeping the maximum rank per
// slot. Idempotent.
func (f *OrdinalFilter) Add(elem []byte) {
	f.core.add(elem)
}

// AddString records the raw bytes of s.
func (f *OrdinalFilter) AddString(s string) {
	f.Add([]byte(s))
}

// Contains reports whether elem was possibly added. False means
// definitely not; true may be a false positive.
func (f *OrdinalFilter) Contains(elem []byte) bool {
	return f.core.contains(elem)
}

// ContainsString is Contains over the raw bytes of s.
func (f *OrdinalFilter) ContainsString(s string) bool {
	return f.Contains([]byte(s))
}

// Clear resets every slot to zero. Sizing is unchanged.
func (f *OrdinalFilter) Clear() {
	f.core.clear()
}

// Swap exchanges the two filters' storage, sizing, and hash.
func (f *OrdinalFilter) Swap(other *OrdinalFilter) {
	f.core, other.core = other.core, f.core
}

// Move transfers the filter's storage to a new instance. The receiver
// is left empty and zero-sized but safe to use: Add and Clear become
// no-ops and Contains probes zero rounds.
func (f *OrdinalFilter) Move() *OrdinalFilter {
	moved := &OrdinalFilter{core: f.core}
	f.core = newOrdinalCore(0, 0, f.core.hash)
	return moved
}

// SlotCount returns the number of ordinal slots.
func (f *OrdinalFilter) SlotCount() uint64 {
	return f.core.slotCount
}

// Rounds returns the number of probe rounds per element.
func (f *OrdinalFilter) Rounds() uint64 {
	return f.core.rounds
}

// ordinalSlots adapts a byte vector to the slotStore capability:
// rounds are one-based and a probe at round i records rank i. Every
// stored rank lies in [0, rounds]; 0 means never written.
type ordinalSlots struct {
	ranks []uint8
}

func (s *ordinalSlots) firstRound() uint64 { return 1 }

func (s *ordinalSlots) rank(i uint64) uint8 { return uint8(i) }

func (s *ordinalSlots) value(idx uint64) uint8 {
	return s.ranks[idx]
}

func (s *ordinalSlots) raise(idx uint64, v uint8) {
	if s.ranks[idx] < v {
		s.ranks[idx] = v
	}
}

func (s *ordinalSlots) reset() {
	clear(s.ranks)
}
