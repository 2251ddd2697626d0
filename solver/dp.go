package solver

import (
	"fmt"
	"math"
	"math/bits"
	"unsafe"

	log "github.com/golang/glog"
)

// cell is the integer type of a DP table entry.
type cell interface{ ~int32 | ~int64 }

// dpTable is the dense T[c][i] table: T[c][i] is the best value reachable with
// the first i items and capacity c. Storage is item-major (row i holds all
// capacities) so the fill loop streams through memory.
type dpTable[C cell] struct {
	cols  int // K+1
	cells []C
}

func (t *dpTable[C]) at(c, i int) C { return t.cells[i*t.cols+c] }

func (t *dpTable[C]) row(i int) []C { return t.cells[i*t.cols : (i+1)*t.cols] }

// tableCells returns (N+1)·(K+1) or false if it does not fit in an int.
func tableCells(n int, capacity int64) (int, bool) {
	hi, lo := bits.Mul64(uint64(n)+1, uint64(capacity)+1)
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}

	return int(lo), true
}

// newDPTable allocates the table, enforcing memLimit bytes (0 = unlimited).
// A runtime refusal to allocate is reported as ErrAllocationFailure.
func newDPTable[C cell](n int, capacity int64, memLimit int64) (t *dpTable[C], err error) {
	cells, ok := tableCells(n, capacity)
	if !ok {
		return nil, fmt.Errorf("%w: (%d+1)x(%d+1) cells overflow", ErrAllocationFailure, capacity, n)
	}
	var (
		zero C
		size = uint64(unsafe.Sizeof(zero))
	)
	hi, bytes := bits.Mul64(uint64(cells), size)
	if hi != 0 || (memLimit > 0 && bytes > uint64(memLimit)) {
		return nil, fmt.Errorf("%w: %d cells of %d bytes exceed limit %d", ErrAllocationFailure, cells, size, memLimit)
	}

	defer func() {
		if r := recover(); r != nil {
			t, err = nil, fmt.Errorf("%w: %v", ErrAllocationFailure, r)
		}
	}()

	return &dpTable[C]{cols: int(capacity) + 1, cells: make([]C, cells)}, nil
}

// fill applies the recurrence
//
//	T[c][i] = max(T[c][i-1], T[c-w][i-1] + v)   if w ≤ c
//	T[c][i] = T[c][i-1]                          otherwise
//
// for i = 1..N, with T[c][0] = 0 from the zeroed allocation.
//
// Complexity: O(N·K).
func (t *dpTable[C]) fill(items []Item) {
	var (
		i, c    int
		it      Item
		w       int
		v, cand C
		prev    []C
		cur     []C
	)
	for i = 1; i <= len(items); i++ {
		it = items[i-1]
		prev, cur = t.row(i-1), t.row(i)
		if it.Weight >= int64(t.cols) {
			copy(cur, prev) // never fits
			continue
		}
		w, v = int(it.Weight), C(it.Value)
		copy(cur[:w], prev[:w])
		for c = w; c < t.cols; c++ {
			cur[c] = prev[c]
			if cand = prev[c-w] + v; cand > cur[c] {
				cur[c] = cand
			}
		}
	}
}

// backtrace walks from (K, N) down to column 0, taking item i-1 whenever
// T[c][i] > T[c][i-1]. The collected value must equal T[K][N].
//
// Complexity: O(N).
func (t *dpTable[C]) backtrace(items []Item) ([]bool, int64, error) {
	var (
		n     = len(items)
		c     = t.cols - 1
		taken = make([]bool, n)
		sum   int64
		i     int
		it    Item
	)
	for i = n; i >= 1; i-- {
		if t.at(c, i) > t.at(c, i-1) {
			it = items[i-1]
			taken[it.ID] = true
			sum += it.Value
			c -= int(it.Weight)
		}
	}
	if want := int64(t.at(t.cols-1, n)); sum != want {
		return nil, 0, fmt.Errorf("%w: backtrace %d, table %d", ErrInconsistentTable, sum, want)
	}

	return taken, sum, nil
}

// runDP fills and backtraces a table with cells of type C.
func runDP[C cell](inst Instance, memLimit int64) (Solution, error) {
	t, err := newDPTable[C](len(inst.Items), inst.Capacity, memLimit)
	if err != nil {
		return Solution{}, err
	}
	t.fill(inst.Items)
	taken, value, err := t.backtrace(inst.Items)
	if err != nil {
		return Solution{}, err
	}

	return Solution{Value: value, Taken: taken, Optimal: true, Strategy: StrategyDP}, nil
}

// dynamicProgramming runs DP on a validated instance. Cells are 32-bit when
// the total value fits, otherwise 64-bit; T never exceeds the total value.
func dynamicProgramming(inst Instance, opts Options) (Solution, error) {
	var (
		narrow = inst.totalValue() <= math.MaxInt32
		sol    Solution
		err    error
	)
	if log.V(2) {
		cells, _ := tableCells(len(inst.Items), inst.Capacity)
		log.Infof("dp: n=%d capacity=%d cells=%d narrow=%t", len(inst.Items), inst.Capacity, cells, narrow)
	}
	if narrow {
		sol, err = runDP[int32](inst, opts.DPMemoryLimit)
	} else {
		sol, err = runDP[int64](inst, opts.DPMemoryLimit)
	}

	return sol, err
}

// SolveDP solves inst exactly with the dense DP engine, regardless of size.
// opts.DPMemoryLimit caps the table (0 = unlimited); other fields are ignored.
//
// Errors: Instance.Validate sentinels, ErrAllocationFailure,
// ErrInconsistentTable.
//
// Complexity: O(N·K) time and memory.
func SolveDP(inst Instance, opts Options) (Solution, error) {
	if err := inst.Validate(); err != nil {
		return Solution{}, err
	}
	if opts.DPMemoryLimit < 0 {
		return Solution{}, ErrBadLimit
	}

	return dynamicProgramming(inst, opts)
}
