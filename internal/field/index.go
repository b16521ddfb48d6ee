package field

import (
	"fmt"
	"math"
)

// PrevIdx returns the index immediately before i in a ring of n parties,
// wrapping from 0 to n-1. Matches the original source's find_prev_idx.
func PrevIdx(i, n int) int {
	if i == 0 {
		return n - 1
	}
	return i - 1
}

// NextIdx returns the index immediately after i in a ring of n parties,
// wrapping from n-1 to 0.
func NextIdx(i, n int) int {
	if i == n-1 {
		return 0
	}
	return i + 1
}

// Adjacent returns the elements immediately before and after index i in
// list, treating list as a ring. Matches the original source's
// get_adjacent_elements, generalized over any element type since the BD
// core, the compiler protocols and the optimized protocols all call it
// over *ristretto255.Element.
func Adjacent[T any](list []T, i int) (prev, next T) {
	n := len(list)
	return list[PrevIdx(i, n)], list[NextIdx(i, n)]
}

// UpperboundLog returns log2(upperbound+1) for the four valid upperbound
// values this module supports, matching the original source's
// upperbound_log. Any other value is rejected: the range proof and the
// darkpool circuit both size their bit-decomposition off this count, so an
// unrecognized upperbound has no well-defined proof width.
func UpperboundLog(upperbound uint64) (int, error) {
	switch upperbound {
	case math.MaxUint8:
		return 8, nil
	case math.MaxUint16:
		return 16, nil
	case math.MaxUint32:
		return 32, nil
	case math.MaxUint64:
		return 64, nil
	default:
		return 0, fmt.Errorf(
			"upperbound was not among the valid values: %d, %d, %d, %d; was: %d",
			uint64(math.MaxUint8), uint64(math.MaxUint16), uint64(math.MaxUint32), uint64(math.MaxUint64),
			upperbound,
		)
	}
}
