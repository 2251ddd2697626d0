package solver

import (
	"cmp"
	"math/bits"
	"slices"
)

// CompareID orders items ascending by original id.
func CompareID(a, b Item) int { return cmp.Compare(a.ID, b.ID) }

// CompareDensity orders items by descending value density Value/Weight,
// breaking ties by ascending id so the order is total and stable.
//
// Densities are compared exactly: a.V·b.W against b.V·a.W as 128-bit
// products. Zero-weight items have unbounded density and come first,
// ordered by descending value among themselves.
//
// Complexity: O(1).
func CompareDensity(a, b Item) int {
	var (
		aFree = a.Weight == 0
		bFree = b.Weight == 0
	)
	switch {
	case aFree && bFree:
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
	case aFree:
		return -1
	case bFree:
		return 1
	default:
		// Descending: compare b's cross product against a's.
		if c := compare128(uint64(b.Value), uint64(a.Weight), uint64(a.Value), uint64(b.Weight)); c != 0 {
			return c
		}
	}

	return CompareID(a, b)
}

// compare128 compares x1·y1 with x2·y2 without overflow.
func compare128(x1, y1, x2, y2 uint64) int {
	hi1, lo1 := bits.Mul64(x1, y1)
	hi2, lo2 := bits.Mul64(x2, y2)
	if c := cmp.Compare(hi1, hi2); c != 0 {
		return c
	}

	return cmp.Compare(lo1, lo2)
}

// SortByID returns a copy of items sorted by ascending id.
func SortByID(items []Item) []Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, CompareID)

	return out
}

// SortByDensity returns a copy of items sorted by CompareDensity.
func SortByDensity(items []Item) []Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, CompareDensity)

	return out
}
