package solver_test

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/knapsack/solver"
	"github.com/stretchr/testify/assert"
)

func ids(items []solver.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}

	return out
}

func TestCompareDensity_Order(t *testing.T) {
	items := []solver.Item{
		{ID: 0, Value: 8, Weight: 4},  // 2.0
		{ID: 1, Value: 10, Weight: 5}, // 2.0, ties with 0
		{ID: 2, Value: 15, Weight: 8}, // 1.875
		{ID: 3, Value: 4, Weight: 3},  // 1.33
		{ID: 4, Value: 1, Weight: 0},  // unbounded
		{ID: 5, Value: 9, Weight: 0},  // unbounded, larger value
		{ID: 6, Value: 0, Weight: 7},  // 0
	}
	got := ids(solver.SortByDensity(items))
	want := []int{5, 4, 0, 1, 2, 3, 6}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("density order mismatch (-want +got):\n%s", diff)
	}
	// Input untouched.
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, ids(items))
}

func TestCompareDensity_ExactAtLargeMagnitudes(t *testing.T) {
	// The two densities differ by one part in ~2^62: float64 sees them equal,
	// cross multiplication does not.
	a := solver.Item{ID: 1, Value: math.MaxInt64, Weight: math.MaxInt64 - 1}
	b := solver.Item{ID: 0, Value: math.MaxInt64 - 1, Weight: math.MaxInt64 - 2}
	assert.Equal(t, float64(a.Value)/float64(a.Weight), float64(b.Value)/float64(b.Weight))
	// a: 1 + 1/(M-1); b: 1 + 1/(M-2); b is denser.
	assert.Equal(t, 1, solver.CompareDensity(a, b))
	assert.Equal(t, -1, solver.CompareDensity(b, a))
}

func TestCompareDensity_TotalOrder(t *testing.T) {
	rng := newRand(1)
	items := make([]solver.Item, 40)
	for i := range items {
		items[i] = solver.Item{ID: i, Value: rng.Int64N(6), Weight: rng.Int64N(4)}
	}
	for _, a := range items {
		assert.Equal(t, 0, solver.CompareDensity(a, a))
		for _, b := range items {
			assert.Equal(t, -solver.CompareDensity(b, a), solver.CompareDensity(a, b))
			if a.ID != b.ID {
				assert.NotZero(t, solver.CompareDensity(a, b), "distinct ids never tie")
			}
			for _, c := range items {
				if solver.CompareDensity(a, b) < 0 && solver.CompareDensity(b, c) < 0 {
					assert.Negative(t, solver.CompareDensity(a, c))
				}
			}
		}
	}
}

func TestSortByID(t *testing.T) {
	items := []solver.Item{{ID: 2}, {ID: 0}, {ID: 1}}
	got := solver.SortByID(items)
	assert.Equal(t, []int{0, 1, 2}, ids(got))
	assert.True(t, slices.IsSortedFunc(got, solver.CompareID))
}
