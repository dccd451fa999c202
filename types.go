package obf

import (
	"errors"
	"fmt"
)

const (
	// MaxOrdinalRank is the largest probe-round rank an ordinal slot can
	// hold. Ordinal construction fails when the derived round count
	// exceeds it.
	MaxOrdinalRank = 255

	// HashSeed is the seed passed to the default 128-bit hash.
	HashSeed uint32 = 0
)

// ErrInvalidArgument is the base kind for every construction failure.
// The specific sentinels below wrap it, so errors.Is matches either.
var ErrInvalidArgument = errors.New("obf: invalid argument")

var (
	ErrFalsePositiveRange = fmt.Errorf("%w: false-positive target must be in (0, 1)", ErrInvalidArgument)
	ErrZeroCapacity       = fmt.Errorf("%w: expected capacity must be positive", ErrInvalidArgument)
	ErrRoundOverflow      = fmt.Errorf("%w: derived round count exceeds the ordinal slot range", ErrInvalidArgument)
	ErrNilHash            = fmt.Errorf("%w: hash must not be nil", ErrInvalidArgument)
)

// Filter is the membership contract shared by both variants.
type Filter interface {
	// Add records elem's probe positions. Idempotent.
	Add(elem []byte)
	// Contains reports whether elem was possibly added. False means
	// definitely not; true may be a false positive.
	Contains(elem []byte) bool
	// Clear resets every slot to zero, keeping the filter's sizing.
	Clear()
}

var (
	_ Filter = (*BitArrayFilter)(nil)
	_ Filter = (*OrdinalFilter)(nil)
)
