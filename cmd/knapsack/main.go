// Command knapsack solves a 0/1 knapsack instance file and prints the optimum.
//
// Usage:
//
//	knapsack [flags] [file]
//	knapsack -file=data/ks_30_0 -strategy=dp
//
// The instance may be plain text or compressed (.gz, .zst, .lz4). The
// solution is written to stdout (or -out) as "<value> <opt>" followed by the
// taken bits in input order. Status and diagnostics go to stderr through glog;
// raise -v to 1 or 2 for dispatcher and engine details.
//
// Exit status is 0 on success and 1 on any failure.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/golang/glog"

	"github.com/katalvlaran/knapsack/codec"
	"github.com/katalvlaran/knapsack/solver"
)

// errNoInput is returned when neither -file nor a positional path is given.
var errNoInput = errors.New("no instance file: pass -file=PATH or a positional path")

// config collects the command-line surface.
type config struct {
	file string
	out  string
	opts solver.Options
}

// register binds cfg to fs and returns it.
func register(fs *flag.FlagSet) *config {
	cfg := &config{opts: solver.DefaultOptions()}
	fs.StringVar(&cfg.file, "file", "", "instance file (plain, .gz, .zst or .lz4)")
	fs.StringVar(&cfg.out, "out", "", "write the solution here instead of stdout")
	fs.Var(&cfg.opts.Strategy, "strategy", "engine: auto, dp or bb (dp runs only while N·K < -dp-cell-limit)")
	fs.Var(&cfg.opts.Frontier, "frontier", "branch-and-bound frontier: dfs or best")
	fs.Int64Var(&cfg.opts.DPCellLimit, "dp-cell-limit", solver.DefaultDPCellLimit, "largest N·K (exclusive) for which dp may run")
	fs.Int64Var(&cfg.opts.DPMemoryLimit, "dp-memory-limit", solver.DefaultDPMemoryLimit, "dp table byte ceiling before falling back to bb (0 = none)")

	return cfg
}

// run loads, solves and writes one instance.
func run(cfg *config, args []string, stdout io.Writer) error {
	path := cfg.file
	if path == "" {
		if len(args) == 0 {
			return errNoInput
		}
		path = args[0]
	}

	inst, err := codec.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	log.V(1).Infof("loaded %s: n=%d capacity=%d", path, inst.N(), inst.Capacity)

	start := time.Now()
	sol, err := solver.Solve(inst, cfg.opts)
	if err != nil {
		return fmt.Errorf("solve %s: %w", path, err)
	}
	log.Infof("solved %s: value=%d strategy=%s in %s", path, sol.Value, sol.Strategy, time.Since(start))

	if cfg.out == "" {
		return codec.Encode(stdout, sol)
	}
	f, err := os.Create(cfg.out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err = codec.Encode(f, sol); err != nil {
		_ = f.Close()

		return fmt.Errorf("write %s: %w", cfg.out, err)
	}

	return f.Close()
}

func main() {
	// Status belongs on stderr unless the user redirects glog explicitly.
	_ = flag.Set("logtostderr", "true")
	cfg := register(flag.CommandLine)
	flag.Parse()

	if err := run(cfg, flag.Args(), os.Stdout); err != nil {
		log.Exitf("knapsack: %v", err)
	}
	log.Flush()
}
