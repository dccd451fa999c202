package obf

// slotStore is the capability a filter variant hands to the shared
// probe engine: its slot storage plus its round discipline. Slots read
// back as small ordinals (a bit slot reads 0 or 1) and only ever grow
// until reset.
type slotStore interface {
	// firstRound is the index of the variant's first probe round; the
	// engine probes rounds firstRound..firstRound+rounds-1.
	firstRound() uint64
	// rank is the value a probe at round i records, and the minimum
	// value that satisfies a query at round i.
	rank(i uint64) uint8
	// value reads the ordinal currently stored at idx.
	value(idx uint64) uint8
	// raise writes v at idx if it exceeds the stored value.
	raise(idx uint64, v uint8)
	// reset returns every slot to zero.
	reset()
}

// core is the variant-agnostic half of a filter: sizing, the hash, and
// the double-hashing probe loops. Both variants embed one and differ
// only in the slotStore they supply.
type core struct {
	slots     slotStore
	slotCount uint64
	rounds    uint64
	hash      Hash128
}

// probe maps round i of an element hashed to (h1, h2) onto a slot
// index.
func (c *core) probe(h1, h2, i uint64) uint64 {
	return (h1 + i*h2) % c.slotCount
}

func (c *core) add(elem []byte) {
	h1, h2 := c.hash(elem)
	first := c.slots.firstRound()
	for i := first; i < first+c.rounds; i++ {
		c.slots.raise(c.probe(h1, h2, i), c.slots.rank(i))
	}
}

func (c *core) contains(elem []byte) bool {
	h1, h2 := c.hash(elem)
	first := c.slots.firstRound()
	for i := first; i < first+c.rounds; i++ {
		if c.slots.value(c.probe(h1, h2, i)) < c.slots.rank(i) {
			return false
		}
	}
	return true
}

func (c *core) clear() {
	c.slots.reset()
}
