// Package solver - dispatcher between the DP and branch-and-bound engines.
//
// Policy:
//   - StrategyDP and N·K < DPCellLimit → dense DP.
//   - Everything else (StrategyAuto, StrategyBranchAndBound, or a DP request
//     over the cell limit) → branch-and-bound.
//   - DP failing with ErrAllocationFailure falls back to branch-and-bound;
//     every other error is returned unchanged.
//
// Every returned Solution passes Solution.Validate against the instance.

package solver

import (
	"errors"
	"math/bits"

	log "github.com/golang/glog"
)

// Solve validates inst and opts, routes to an engine and checks the result.
//
// Zero-valued limits in opts take their defaults: DPCellLimit 0 means
// DefaultDPCellLimit, DPMemoryLimit 0 means no byte ceiling.
//
// Errors: Instance.Validate sentinels, ErrUnsupportedStrategy,
// ErrUnsupportedFrontier, ErrBadLimit, ErrInconsistentTable.
func Solve(inst Instance, opts Options) (Solution, error) {
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}
	if err := inst.Validate(); err != nil {
		return Solution{}, err
	}
	if opts.DPCellLimit == 0 {
		opts.DPCellLimit = DefaultDPCellLimit
	}

	var (
		sol Solution
		err error
	)
	switch {
	case opts.Strategy == StrategyDP && withinCellLimit(len(inst.Items), inst.Capacity, opts.DPCellLimit):
		log.V(1).Infof("solver: dp selected (n=%d, capacity=%d)", len(inst.Items), inst.Capacity)
		sol, err = dynamicProgramming(inst, opts)
		if errors.Is(err, ErrAllocationFailure) {
			log.V(1).Infof("solver: %v; falling back to branch-and-bound", err)
			sol, err = branchAndBound(inst, opts)
		}
	case opts.Strategy == StrategyDP:
		log.V(1).Infof("solver: n·capacity reaches dp cell limit %d; using branch-and-bound", opts.DPCellLimit)
		sol, err = branchAndBound(inst, opts)
	default:
		log.V(1).Infof("solver: branch-and-bound selected (strategy=%s, frontier=%s)", opts.Strategy, opts.Frontier)
		sol, err = branchAndBound(inst, opts)
	}
	if err != nil {
		return Solution{}, err
	}
	if err = sol.Validate(inst); err != nil {
		return Solution{}, err
	}

	return sol, nil
}

// withinCellLimit reports N·K < limit without overflowing.
func withinCellLimit(n int, capacity int64, limit int64) bool {
	hi, lo := bits.Mul64(uint64(n), uint64(capacity))

	return hi == 0 && lo < uint64(limit)
}
