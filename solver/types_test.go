package solver_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/knapsack/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstance_AssignsIDs(t *testing.T) {
	inst := mustInstance(t, 7, []int64{1, 2, 3}, []int64{4, 5, 6})
	require.Equal(t, 3, inst.N())
	for i, it := range inst.Items {
		assert.Equal(t, i, it.ID)
	}
	assert.Equal(t, int64(7), inst.Capacity)
}

func TestNewInstance_Errors(t *testing.T) {
	cases := []struct {
		name     string
		capacity int64
		values   []int64
		weights  []int64
		want     error
	}{
		{"length_mismatch", 1, []int64{1, 2}, []int64{1}, solver.ErrInputMalformed},
		{"negative_capacity", -1, []int64{1}, []int64{1}, solver.ErrNegativeCapacity},
		{"negative_value", 5, []int64{-1}, []int64{1}, solver.ErrNegativeItem},
		{"negative_weight", 5, []int64{1}, []int64{-3}, solver.ErrNegativeItem},
		{"value_overflow", 5, []int64{math.MaxInt64, 1}, []int64{1, 1}, solver.ErrOverflowRisk},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := solver.NewInstance(tc.capacity, tc.values, tc.weights)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestInstanceValidate_MalformedFamily(t *testing.T) {
	// Every input-shape sentinel belongs to the ErrInputMalformed family.
	for _, err := range []error{solver.ErrNegativeCapacity, solver.ErrNegativeItem, solver.ErrItemIDs} {
		assert.ErrorIs(t, err, solver.ErrInputMalformed)
	}
	assert.NotErrorIs(t, solver.ErrOverflowRisk, solver.ErrInputMalformed)
}

func TestInstanceValidate_IDs(t *testing.T) {
	dup := solver.Instance{Capacity: 3, Items: []solver.Item{{ID: 0, Value: 1, Weight: 1}, {ID: 0, Value: 1, Weight: 1}}}
	require.ErrorIs(t, dup.Validate(), solver.ErrItemIDs)

	oob := solver.Instance{Capacity: 3, Items: []solver.Item{{ID: 1, Value: 1, Weight: 1}}}
	require.ErrorIs(t, oob.Validate(), solver.ErrItemIDs)

	// Any permutation is fine.
	perm := solver.Instance{Capacity: 3, Items: []solver.Item{{ID: 1, Value: 1, Weight: 1}, {ID: 0, Value: 2, Weight: 2}}}
	require.NoError(t, perm.Validate())
}

func TestSolutionValidate(t *testing.T) {
	inst := mustInstance(t, 11, []int64{8, 10, 15, 4}, []int64{4, 5, 8, 3})

	good := solver.Solution{Value: 19, Taken: []bool{false, false, true, true}, Optimal: true}
	require.NoError(t, good.Validate(inst))
	assert.Equal(t, int64(11), good.Weight(inst))
	assert.Equal(t, []int{2, 3}, good.TakenIDs())

	heavy := solver.Solution{Value: 33, Taken: []bool{true, true, true, false}}
	require.ErrorIs(t, heavy.Validate(inst), solver.ErrInfeasibleSolution)

	wrong := solver.Solution{Value: 20, Taken: []bool{false, false, true, true}}
	require.ErrorIs(t, wrong.Validate(inst), solver.ErrValueMismatch)

	short := solver.Solution{Taken: []bool{true}}
	require.ErrorIs(t, short.Validate(inst), solver.ErrItemIDs)
}

func TestSolutionValidate_HugeWeights(t *testing.T) {
	// Two items whose weight sum overflows int64 must be rejected, not wrapped.
	inst := mustInstance(t, math.MaxInt64, []int64{1, 1}, []int64{math.MaxInt64, math.MaxInt64})
	sol := solver.Solution{Value: 2, Taken: []bool{true, true}}
	require.ErrorIs(t, sol.Validate(inst), solver.ErrInfeasibleSolution)
}
