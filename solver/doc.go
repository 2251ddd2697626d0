// Package solver computes exact solutions of the 0/1 knapsack problem.
//
// Given a capacity K and N items with non-negative integer values and
// weights, it selects the subset of maximum total value whose total weight
// does not exceed K, and reports the optimum together with the chosen set.
//
// Two exact engines share one Solution shape:
//
//   - SolveDP - dense dynamic programming over a (K+1)×(N+1) table with
//     backtracking. Complexity: O(N·K) time and memory.
//
//   - SolveBranchAndBound - search over include/exclude decisions in
//     descending value density, pruned by the fractional-knapsack bound.
//     Complexity: exponential worst case; DepthFirst uses O(N) live nodes.
//
// Solve is the dispatcher: it runs DP only for StrategyDP with N·K below
// Options.DPCellLimit, falls back to branch-and-bound when the DP table
// cannot be allocated, and checks every result with Solution.Validate.
//
// Usage:
//
//	inst, err := solver.NewInstance(11, []int64{8, 10, 15, 4}, []int64{4, 5, 8, 3})
//	if err != nil {
//	  // ErrInputMalformed family
//	}
//	opts := solver.DefaultOptions()
//	opts.Strategy = solver.StrategyDP
//	sol, err := solver.Solve(inst, opts)
//	fmt.Println(sol.Value, sol.TakenIDs()) // 19 [2 3]
//
// All errors are sentinels from types.go and are matched with errors.Is.
// Diagnostics are written through glog at verbosity 1 (dispatch) and 2
// (engine counters).
package solver
