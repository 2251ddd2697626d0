package codec

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/knapsack/solver"
)

// Encode writes sol as two lines: "<value> <opt>" and the taken bits in id
// order separated by single spaces. An empty instance yields an empty second line.
func Encode(w io.Writer, sol solver.Solution) error {
	bw := bufio.NewWriter(w)

	var opt byte = '0'
	if sol.Optimal {
		opt = '1'
	}
	buf := strconv.AppendInt(make([]byte, 0, 32), sol.Value, 10)
	buf = append(buf, ' ', opt, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	var (
		i   int
		bit byte
	)
	for i = range sol.Taken {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		bit = '0'
		if sol.Taken[i] {
			bit = '1'
		}
		if err := bw.WriteByte(bit); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	return bw.Flush()
}
