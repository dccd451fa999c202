package obf

/*

# Approximate set-membership filters (bit-array and ordinal)

This package provides two compact filters answering "has element X
possibly been added?" with no false negatives and a bounded
false-positive rate:

  - BitArrayFilter: a classic Bloom filter over one-bit slots.
  - OrdinalFilter: a generalization storing, per slot, the largest
    probe-round rank ever written there. Membership requires every
    probed slot to hold a rank at least as large as the querying round,
    a strictly stronger predicate than "bit is set". It trades one byte
    per slot (instead of one bit) for a tighter false-positive
    behavior.

## What the filters are (and are not)

If a filter says "definitely not present", the element was never added.
If it says "maybe present", the element may or may not have been added
(false positives happen at roughly the configured target rate). The
filters never store elements and cannot enumerate or delete them.

## Sizing

Both constructors take a target false-positive rate p in (0, 1) and an
expected element capacity n, and derive the slot count m and probe
round count k with the standard Bloom closed forms:

	m = ceil(-(n * ln p) / (ln 2)^2)
	k = round((m / n) * ln 2)

Sizing exposes the derivation directly.

## Hashing and probe derivation

Elements enter as raw bytes; the caller owns producing a stable byte
representation (the same logical value must always present the same
bytes). One 128-bit hash is computed per Add/Contains call (by default
MurmurHash3 x64_128 with seed 0) and split into two unsigned 64-bit
halves (h1, h2). Probe i addresses slot

	(h1 + i*h2) mod m

so k probe positions cost one hash computation. The two variants
deliberately differ in round indexing: the bit-array filter probes
rounds 0..k-1, the ordinal filter rounds 1..k (the round doubles as the
rank written to the slot). Changing either would change that variant's
false-positive distribution.

## Ownership

A filter exclusively owns its slot storage. Copying a filter struct
aliases that storage and is not supported; transfer it with Swap or
Move instead. A moved-from filter is left empty and zero-sized but safe
to use. The filters are not synchronized: concurrent mutation needs
external locking, though concurrent Contains calls on an unmodified
filter are safe.

*/
