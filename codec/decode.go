package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/knapsack/solver"
)

// maxLine bounds a single input line. Real lines hold two integers.
const maxLine = 1 << 20

// Decode parses an instance in the text format described in the package doc.
//
// Errors (all matched with errors.Is):
//   - solver.ErrInputMalformed: empty input, wrong token count on a line,
//     non-integer or negative tokens, fewer than N item lines, trailing
//     non-blank content.
//   - solver.ErrOverflowRisk: a token or the value total exceeds int64.
//   - read errors from r, wrapped.
func Decode(r io.Reader) (solver.Instance, error) {
	var (
		sc   = bufio.NewScanner(r)
		line int
	)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	// next returns the fields of the next line; ok is false at EOF.
	next := func() (fields []string, ok bool, err error) {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, false, fmt.Errorf("codec: read line %d: %w", line+1, err)
			}

			return nil, false, nil
		}
		line++

		return strings.Fields(sc.Text()), true, nil
	}

	header, ok, err := next()
	if err != nil {
		return solver.Instance{}, err
	}
	if !ok {
		return solver.Instance{}, fmt.Errorf("%w: empty input", solver.ErrInputMalformed)
	}
	n, capacity, err := pair(header, line)
	if err != nil {
		return solver.Instance{}, err
	}

	var (
		values  = make([]int64, 0, min(n, 1<<16))
		weights = make([]int64, 0, min(n, 1<<16))
		fields  []string
		v, w    int64
		i       int64
	)
	for i = 0; i < n; i++ {
		if fields, ok, err = next(); err != nil {
			return solver.Instance{}, err
		}
		if !ok {
			return solver.Instance{}, fmt.Errorf("%w: expected %d item lines, got %d", solver.ErrInputMalformed, n, i)
		}
		if v, w, err = pair(fields, line); err != nil {
			return solver.Instance{}, err
		}
		values = append(values, v)
		weights = append(weights, w)
	}

	// Only blank lines may follow.
	for {
		if fields, ok, err = next(); err != nil {
			return solver.Instance{}, err
		}
		if !ok {
			break
		}
		if len(fields) != 0 {
			return solver.Instance{}, fmt.Errorf("%w: line %d: unexpected content after %d items", solver.ErrInputMalformed, line, n)
		}
	}

	return solver.NewInstance(capacity, values, weights)
}

// pair parses exactly two non-negative integers.
func pair(fields []string, line int) (int64, int64, error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: line %d: want 2 integers, got %d tokens", solver.ErrInputMalformed, line, len(fields))
	}
	a, err := natural(fields[0], line)
	if err != nil {
		return 0, 0, err
	}
	b, err := natural(fields[1], line)
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

// natural parses a non-negative base-10 int64.
func natural(tok string, line int) (int64, error) {
	x, err := strconv.ParseInt(tok, 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("%w: line %d: %q", solver.ErrOverflowRisk, line, tok)
	case err != nil:
		return 0, fmt.Errorf("%w: line %d: %q is not an integer", solver.ErrInputMalformed, line, tok)
	case x < 0:
		return 0, fmt.Errorf("%w: line %d: negative value %d", solver.ErrInputMalformed, line, x)
	}

	return x, nil
}
