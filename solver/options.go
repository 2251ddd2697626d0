package solver

import "fmt"

// Strategy selects the engine requested from the dispatcher.
type Strategy int

const (
	// StrategyAuto leaves the choice to the dispatcher (branch-and-bound).
	StrategyAuto Strategy = iota

	// StrategyDP requests the dense DP engine. The dispatcher honours it only
	// while N·K stays below Options.DPCellLimit.
	StrategyDP

	// StrategyBranchAndBound requests the branch-and-bound engine.
	StrategyBranchAndBound
)

// String returns the command-line form of s.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyDP:
		return "dp"
	case StrategyBranchAndBound:
		return "bb"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Set parses "auto", "dp" or "bb". It makes *Strategy a flag.Value.
func (s *Strategy) Set(text string) error {
	switch text {
	case "auto":
		*s = StrategyAuto
	case "dp":
		*s = StrategyDP
	case "bb":
		*s = StrategyBranchAndBound
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedStrategy, text)
	}

	return nil
}

// Frontier selects how the branch-and-bound engine stores live nodes.
type Frontier int

const (
	// DepthFirst keeps live nodes on a LIFO stack: O(depth·N) bits of memory.
	DepthFirst Frontier = iota

	// BestFirst keeps live nodes in a max-heap on bound. Finds strong
	// incumbents early but may hold exponentially many nodes.
	BestFirst
)

// String returns the command-line form of f.
func (f Frontier) String() string {
	switch f {
	case DepthFirst:
		return "dfs"
	case BestFirst:
		return "best"
	default:
		return fmt.Sprintf("Frontier(%d)", int(f))
	}
}

// Set parses "dfs" or "best". It makes *Frontier a flag.Value.
func (f *Frontier) Set(text string) error {
	switch text {
	case "dfs":
		*f = DepthFirst
	case "best":
		*f = BestFirst
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFrontier, text)
	}

	return nil
}

const (
	// DefaultDPCellLimit is the N·K threshold below which DP may run.
	DefaultDPCellLimit int64 = 100_000_000

	// DefaultDPMemoryLimit caps the DP table at 1 GiB.
	DefaultDPMemoryLimit int64 = 1 << 30
)

// Options configures Solve.
//
// Fields:
//   - Strategy      - requested engine; see Strategy.
//   - Frontier      - B&B live-node container; see Frontier.
//   - DPCellLimit   - DP runs only when N·K < DPCellLimit. 0 selects
//     DefaultDPCellLimit.
//   - DPMemoryLimit - byte ceiling for the DP table; above it DP reports
//     ErrAllocationFailure and the dispatcher falls back to B&B.
//     0 means no ceiling.
type Options struct {
	Strategy      Strategy
	Frontier      Frontier
	DPCellLimit   int64
	DPMemoryLimit int64
}

// DefaultOptions returns Options with:
//   - Strategy:      StrategyAuto
//   - Frontier:      DepthFirst
//   - DPCellLimit:   DefaultDPCellLimit (1e8)
//   - DPMemoryLimit: DefaultDPMemoryLimit (1 GiB)
func DefaultOptions() Options {
	return Options{
		Strategy:      StrategyAuto,
		Frontier:      DepthFirst,
		DPCellLimit:   DefaultDPCellLimit,
		DPMemoryLimit: DefaultDPMemoryLimit,
	}
}

// validateOptions checks enum ranges and non-negative limits.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch opts.Strategy {
	case StrategyAuto, StrategyDP, StrategyBranchAndBound:
		// ok
	default:
		return ErrUnsupportedStrategy
	}
	switch opts.Frontier {
	case DepthFirst, BestFirst:
		// ok
	default:
		return ErrUnsupportedFrontier
	}
	if opts.DPCellLimit < 0 || opts.DPMemoryLimit < 0 {
		return ErrBadLimit
	}

	return nil
}
