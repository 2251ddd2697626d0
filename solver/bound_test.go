package solver_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/knapsack/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sorted returns the scenario-1 items in density order: (8,4) (10,5) (15,8) (4,3).
func sorted(t *testing.T) ([]solver.Item, int64) {
	t.Helper()
	inst := mustInstance(t, 11, []int64{8, 10, 15, 4}, []int64{4, 5, 8, 3})

	return solver.SortByDensity(inst.Items), inst.Capacity
}

func TestFractionalBound_Root(t *testing.T) {
	items, k := sorted(t)
	// 8 + 10 whole (w=9), then 2/8 of 15.
	assert.InDelta(t, 21.75, solver.FractionalBound(items, k, -1, 0, 0), 1e-12)
	assert.Equal(t, int64(21), solver.IntegerBound(items, k, -1, 0, 0))
}

func TestFractionalBound_EdgeCases(t *testing.T) {
	items, k := sorted(t)

	// Infeasible prefix.
	assert.Equal(t, 0.0, solver.FractionalBound(items, k, 1, 18, 12))
	assert.Equal(t, int64(0), solver.IntegerBound(items, k, 1, 18, 12))

	// Last level: bound is the accumulated value.
	assert.Equal(t, 19.0, solver.FractionalBound(items, k, len(items)-1, 19, 11))
	assert.Equal(t, int64(19), solver.IntegerBound(items, k, len(items)-1, 19, 11))

	// Empty item list.
	assert.Equal(t, 0.0, solver.FractionalBound(nil, 5, -1, 0, 0))
}

func TestFractionalBound_Pure(t *testing.T) {
	items, k := sorted(t)
	before := slices.Clone(items)
	first := solver.FractionalBound(items, k, 0, 8, 4)
	second := solver.FractionalBound(items, k, 0, 8, 4)
	assert.Equal(t, first, second)
	assert.Equal(t, before, items)
}

func TestIntegerBound_IsFloorOfFractional(t *testing.T) {
	rng := newRand(2)
	for round := 0; round < 200; round++ {
		inst := randomInstance(t, rng, 1+rng.IntN(12), 50, 20)
		items := solver.SortByDensity(inst.Items)
		for level := -1; level < len(items); level++ {
			// Prefix: take items while they fit.
			var v, w int64
			for j := 0; j <= level; j++ {
				if w+items[j].Weight <= inst.Capacity {
					v += items[j].Value
					w += items[j].Weight
				}
			}
			f := solver.FractionalBound(items, inst.Capacity, level, v, w)
			assert.Equal(t, int64(math.Floor(f+1e-9)), solver.IntegerBound(items, inst.Capacity, level, v, w))
		}
	}
}

func TestIntegerBound_NoOverflow(t *testing.T) {
	// room·value needs 128 bits here.
	items := []solver.Item{
		{ID: 0, Value: math.MaxInt64 / 2, Weight: math.MaxInt64},
	}
	got := solver.IntegerBound(items, math.MaxInt64-1, -1, 0, 0)
	assert.Equal(t, int64(math.MaxInt64/2-1), got)
}

// TestBound_SoundAndMonotone checks, along random include/exclude paths, that
// the bound never drops below the best completion and never increases.
func TestBound_SoundAndMonotone(t *testing.T) {
	rng := newRand(3)
	for round := 0; round < 100; round++ {
		inst := randomInstance(t, rng, 1+rng.IntN(10), 30, 15)
		items := solver.SortByDensity(inst.Items)

		var (
			v, w int64
			prev = math.Inf(1)
		)
		for level := -1; level < len(items); level++ {
			if level >= 0 && rng.IntN(2) == 0 && w+items[level].Weight <= inst.Capacity {
				v += items[level].Value
				w += items[level].Weight
			}
			b := solver.FractionalBound(items, inst.Capacity, level, v, w)
			require.LessOrEqual(t, b, prev+1e-9, "bound increased at level %d", level)
			prev = b

			// Best completion of the suffix with the remaining room.
			rest := mustInstance(t, inst.Capacity-w, valuesOf(items[level+1:]), weightsOf(items[level+1:]))
			require.GreaterOrEqual(t, b+1e-9, float64(v+bruteForce(rest)))
		}
	}
}

func valuesOf(items []solver.Item) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.Value
	}

	return out
}

func weightsOf(items []solver.Item) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.Weight
	}

	return out
}
