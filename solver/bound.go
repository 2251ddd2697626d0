package solver

import "math/bits"

// FractionalBound is the fractional-knapsack (linear relaxation) upper bound
// for a partial assignment whose decisions cover items[0..level].
//
// items must be in CompareDensity order; accValue and accWeight are the totals
// of the items already taken. Starting at level+1, items are added whole while
// they fit; the first item that does not fit contributes the fraction of its
// value matching the remaining room.
//
// Contracts:
//   - Pure: no argument is modified.
//   - Returns 0 when accWeight > capacity (infeasible prefix).
//   - Returns accValue when level+1 == len(items).
//   - Non-increasing along any root-to-leaf path.
//
// Complexity: O(N - level).
func FractionalBound(items []Item, capacity int64, level int, accValue, accWeight int64) float64 {
	if accWeight > capacity {
		return 0
	}
	var (
		room  = capacity - accWeight
		total = float64(accValue)
		j     int
		it    Item
	)
	for j = level + 1; j < len(items); j++ {
		it = items[j]
		if it.Weight <= room {
			room -= it.Weight
			total += float64(it.Value)
			continue
		}

		return total + float64(room)*float64(it.Value)/float64(it.Weight)
	}

	return total
}

// integerBound returns floor(FractionalBound(...)) computed in exact integer
// arithmetic. No integral completion can exceed it, and it never suffers
// float rounding at large magnitudes, so the B&B engine prunes on it.
//
// The caller guarantees the sum of all values fits int64 (Instance.Validate).
//
// Complexity: O(N - level).
func integerBound(items []Item, capacity int64, level int, accValue, accWeight int64) int64 {
	if accWeight > capacity {
		return 0
	}
	var (
		room  = capacity - accWeight
		total = accValue
		j     int
		it    Item
	)
	for j = level + 1; j < len(items); j++ {
		it = items[j]
		if it.Weight <= room {
			room -= it.Weight
			total += it.Value
			continue
		}
		// room < Weight, so room·Value/Weight < Value and the 128-bit
		// quotient fits in 64 bits (Div64 requires hi < divisor).
		hi, lo := bits.Mul64(uint64(room), uint64(it.Value))
		q, _ := bits.Div64(hi, lo, uint64(it.Weight))

		return total + int64(q)
	}

	return total
}
