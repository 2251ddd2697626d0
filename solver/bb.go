// Branch-and-bound engine.
//
// Items are visited in descending value density. A node at level ℓ has fixed
// the include/exclude decision of sorted items 0..ℓ; its two children decide
// item ℓ+1. Each node carries an exact integer upper bound (the floor of the
// fractional-knapsack relaxation, see bound.go) and is pruned when that bound
// cannot beat the incumbent.
//
// Path storage: every node references a bit-vector over sorted positions.
// Paths are never mutated once shared: the exclude child reuses its parent's
// vector and the include child clones it before setting its bit, so bits past
// a node's level are always zero.
//
// Complexity:
//   - Worst case O(2^N) nodes; per node O(N) bound + O(N/64) path clone.
//   - Memory: DepthFirst holds O(N) live nodes; BestFirst may hold O(2^N).

package solver

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
	log "github.com/golang/glog"
)

// searchNode is a live B&B node. level == -1 at the root.
type searchNode struct {
	level     int
	accValue  int64
	accWeight int64
	bound     int64
	seq       uint64 // insertion order, BestFirst tie-break
	path      *bitset.BitSet
}

// bbEngine holds the search state of one B&B run.
type bbEngine struct {
	capacity int64
	items    []Item // density order
	n        int

	// Incumbent. best is monotone non-decreasing; bestPath moves with it.
	best     int64
	bestPath *bitset.BitSet

	// Counters for diagnostics.
	popped   int
	expanded int
}

// bound evaluates the node bound at the given prefix.
func (e *bbEngine) bound(level int, accValue, accWeight int64) int64 {
	return integerBound(e.items, e.capacity, level, accValue, accWeight)
}

// offer pushes a child when it can still improve on the incumbent.
func (e *bbEngine) offer(f frontier, child *searchNode) {
	child.bound = e.bound(child.level, child.accValue, child.accWeight)
	if child.bound > e.best {
		f.push(child)
	}
}

// expand builds both children of n at level n.level+1.
// The exclude child is pushed first so a stack pops the include child next.
func (e *bbEngine) expand(f frontier, n *searchNode) {
	var (
		lvl = n.level + 1
		it  = e.items[lvl]
	)
	e.expanded++

	e.offer(f, &searchNode{
		level:     lvl,
		accValue:  n.accValue,
		accWeight: n.accWeight,
		path:      n.path,
	})

	// Feasibility is tested as Weight ≤ room so accWeight never overflows.
	if it.Weight <= e.capacity-n.accWeight {
		path := n.path.Clone()
		path.Set(uint(lvl))
		e.offer(f, &searchNode{
			level:     lvl,
			accValue:  n.accValue + it.Value,
			accWeight: n.accWeight + it.Weight,
			path:      path,
		})
	}
}

// run drains the frontier starting from the root.
func (e *bbEngine) run(f frontier) {
	root := &searchNode{level: -1, path: bitset.New(uint(e.n))}
	root.bound = e.bound(root.level, 0, 0)
	f.push(root)

	var n *searchNode
	for f.len() > 0 {
		n = f.pop()
		e.popped++

		switch {
		case n.level+1 < e.n && n.bound > e.best:
			e.expand(f, n)
		case n.accWeight <= e.capacity && n.accValue > e.best:
			e.best = n.accValue
			e.bestPath = n.path
		default:
			// pruned
		}
	}
}

// solution re-indexes the incumbent back to original ids.
func (e *bbEngine) solution() Solution {
	taken := make([]bool, e.n)
	if e.bestPath != nil {
		var j int
		for j = 0; j < e.n; j++ {
			taken[e.items[j].ID] = e.bestPath.Test(uint(j))
		}
	}

	return Solution{
		Value:    e.best,
		Taken:    taken,
		Optimal:  true,
		Strategy: StrategyBranchAndBound,
	}
}

// branchAndBound runs the engine on a validated instance.
func branchAndBound(inst Instance, opts Options) (Solution, error) {
	f, err := newFrontier(opts.Frontier)
	if err != nil {
		return Solution{}, err
	}
	items := slices.Clone(inst.Items)
	slices.SortStableFunc(items, CompareDensity)

	e := bbEngine{
		capacity: inst.Capacity,
		items:    items,
		n:        len(items),
	}
	e.run(f)

	if log.V(2) {
		log.Infof("bb: n=%d frontier=%s popped=%d expanded=%d peak=%d best=%d",
			e.n, opts.Frontier, e.popped, e.expanded, f.peak(), e.best)
	}

	return e.solution(), nil
}

// SolveBranchAndBound solves inst exactly with the branch-and-bound engine,
// using opts.Frontier as the live-node container. Other fields are ignored.
//
// Errors: Instance.Validate sentinels, ErrUnsupportedFrontier.
func SolveBranchAndBound(inst Instance, opts Options) (Solution, error) {
	if err := inst.Validate(); err != nil {
		return Solution{}, err
	}

	return branchAndBound(inst, opts)
}
