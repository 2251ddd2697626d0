package solver

import (
	"errors"
	"fmt"
)

// Sentinel errors. Refined kinds wrap the broader kind they belong to, so
// errors.Is(err, ErrInputMalformed) holds for every input-shape problem.
var (
	// ErrInputMalformed indicates missing, non-integer or out-of-domain input.
	ErrInputMalformed = errors.New("solver: malformed input")

	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = fmt.Errorf("%w: negative capacity", ErrInputMalformed)

	// ErrNegativeItem indicates an item with a negative value or weight.
	ErrNegativeItem = fmt.Errorf("%w: negative item value or weight", ErrInputMalformed)

	// ErrItemIDs indicates that item ids are not exactly {0..N-1}.
	ErrItemIDs = fmt.Errorf("%w: item ids must be a permutation of 0..N-1", ErrInputMalformed)

	// ErrOverflowRisk indicates that sums of values exceed the int64 range.
	ErrOverflowRisk = errors.New("solver: value sum overflows int64")

	// ErrAllocationFailure indicates that the DP table could not be allocated.
	ErrAllocationFailure = errors.New("solver: dp table allocation failed")

	// ErrInconsistentTable indicates that the DP backtrace disagrees with T[K][N].
	ErrInconsistentTable = errors.New("solver: dp backtrace does not match table optimum")

	// ErrUnsupportedStrategy indicates an unknown Strategy value.
	ErrUnsupportedStrategy = errors.New("solver: unsupported strategy")

	// ErrUnsupportedFrontier indicates an unknown Frontier value.
	ErrUnsupportedFrontier = errors.New("solver: unsupported frontier")

	// ErrBadLimit indicates a negative DPCellLimit or DPMemoryLimit.
	ErrBadLimit = errors.New("solver: dp limits must be non-negative")

	// ErrInfeasibleSolution indicates that taken items exceed the capacity.
	ErrInfeasibleSolution = errors.New("solver: taken items exceed capacity")

	// ErrValueMismatch indicates that Solution.Value differs from the taken items' value.
	ErrValueMismatch = errors.New("solver: solution value does not match taken items")
)

// Item is one candidate for the knapsack. ID is its 0-based input position.
type Item struct {
	ID     int
	Value  int64
	Weight int64
}

// Instance is a read-only problem description. Solvers never mutate it.
type Instance struct {
	Capacity int64
	Items    []Item
}

// NewInstance builds an Instance from parallel value/weight slices,
// assigning ids in input order.
//
// Errors: ErrInputMalformed when len(values) != len(weights), plus
// everything Instance.Validate reports.
func NewInstance(capacity int64, values, weights []int64) (Instance, error) {
	if len(values) != len(weights) {
		return Instance{}, fmt.Errorf("%w: %d values but %d weights", ErrInputMalformed, len(values), len(weights))
	}
	items := make([]Item, len(values))
	var i int
	for i = range values {
		items[i] = Item{ID: i, Value: values[i], Weight: weights[i]}
	}
	inst := Instance{Capacity: capacity, Items: items}
	if err := inst.Validate(); err != nil {
		return Instance{}, err
	}

	return inst, nil
}

// N returns the number of items.
func (in Instance) N() int { return len(in.Items) }

// Validate checks the data-model invariants: non-negative capacity,
// values and weights, ids forming {0..N-1} exactly once, and a total
// value that fits int64.
//
// Complexity: O(N) time and O(N) extra space.
func (in Instance) Validate() error {
	if in.Capacity < 0 {
		return ErrNegativeCapacity
	}
	var (
		n    = len(in.Items)
		seen = make([]bool, n)
		sum  int64
		it   Item
		err  error
	)
	for _, it = range in.Items {
		if it.Value < 0 || it.Weight < 0 {
			return ErrNegativeItem
		}
		if it.ID < 0 || it.ID >= n || seen[it.ID] {
			return ErrItemIDs
		}
		seen[it.ID] = true
		if sum, err = addValue(sum, it.Value); err != nil {
			return err
		}
	}

	return nil
}

// totalValue returns the sum of all item values. Validate guarantees it fits.
func (in Instance) totalValue() int64 {
	var sum int64
	for _, it := range in.Items {
		sum += it.Value
	}

	return sum
}

// addValue adds two non-negative values, reporting ErrOverflowRisk on wraparound.
func addValue(a, b int64) (int64, error) {
	s := a + b
	if s < a {
		return 0, ErrOverflowRisk
	}

	return s, nil
}

// Solution is the optimizer output. Taken is indexed by original item id.
type Solution struct {
	// Value is the total value of the taken items.
	Value int64

	// Taken[id] reports whether the item with that id is in the knapsack.
	Taken []bool

	// Optimal is true when Value is proven optimal. Both engines are exact.
	Optimal bool

	// Strategy is the engine that actually produced the solution
	// (StrategyDP or StrategyBranchAndBound).
	Strategy Strategy
}

// Weight returns the total weight of the taken items of inst.
func (s Solution) Weight(inst Instance) int64 {
	var w int64
	for _, it := range inst.Items {
		if it.ID < len(s.Taken) && s.Taken[it.ID] {
			w += it.Weight
		}
	}

	return w
}

// TakenIDs returns the ids of the taken items in ascending order.
func (s Solution) TakenIDs() []int {
	ids := make([]int, 0, len(s.Taken))
	for id, t := range s.Taken {
		if t {
			ids = append(ids, id)
		}
	}

	return ids
}

// Validate checks feasibility and value consistency of s against inst.
//
// Errors: ErrItemIDs if len(Taken) != N, ErrInfeasibleSolution,
// ErrValueMismatch.
func (s Solution) Validate(inst Instance) error {
	if len(s.Taken) != len(inst.Items) {
		return ErrItemIDs
	}
	var (
		value, weight int64
		it            Item
	)
	for _, it = range inst.Items {
		if !s.Taken[it.ID] {
			continue
		}
		value += it.Value
		// Weight is compared before accumulating to stay clear of wraparound.
		if it.Weight > inst.Capacity-weight {
			return ErrInfeasibleSolution
		}
		weight += it.Weight
	}
	if value != s.Value {
		return ErrValueMismatch
	}

	return nil
}
