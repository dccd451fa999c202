package obf

import "math"

// Sizing derives a filter's slot count m and probe round count k from a
// target false-positive rate p and an expected element capacity n:
//
//	m = ceil(-(n * ln p) / (ln 2)^2)
//	k = round((m / n) * ln 2)
//
// m is rounded up so the theoretical false-positive bound is met or
// beaten; k is the optimal round count for the resulting m/n ratio.
//
// Sizing returns ErrFalsePositiveRange unless 0 < p < 1 (NaN is
// rejected), and ErrZeroCapacity when n is 0. Both wrap
// ErrInvalidArgument.
func Sizing(falsePositive float64, capacity uint64) (slotCount, rounds uint64, err error) {
	// Written so a NaN target fails the range check too.
	if !(falsePositive > 0 && falsePositive < 1) {
		return 0, 0, ErrFalsePositiveRange
	}
	if capacity == 0 {
		return 0, 0, ErrZeroCapacity
	}

	n := float64(capacity)
	slotCount = uint64(math.Ceil(-(n * math.Log(falsePositive)) / (math.Ln2 * math.Ln2)))
	rounds = uint64(math.Round(float64(slotCount) / n * math.Ln2))
	return slotCount, rounds, nil
}
