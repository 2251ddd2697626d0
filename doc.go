// Package knapsack is an exact solver for the 0/1 knapsack problem.
//
// What it does:
//
//	Given a capacity K and N items with integer values and weights, pick the
//	subset of maximum total value whose total weight stays within K, and
//	report both the optimum and the chosen items.
//
// Layout:
//
//	solver/       - Instance/Solution types, density ordering, fractional bound,
//	                dense DP engine, branch-and-bound engine, dispatcher
//	codec/        - text instance decoder, solution encoder, .gz/.zst/.lz4 input
//	cmd/knapsack/ - command-line front end
//
// Quick start:
//
//	go run ./cmd/knapsack -strategy=dp data/ks_30_0
//
// The dispatcher runs DP only when explicitly requested and N·K stays under
// a configurable cell limit (1e8 by default); everything else goes to
// branch-and-bound, which also serves as the fallback when the DP table
// cannot be allocated.
package knapsack
