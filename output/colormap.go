package output

import (
	"bufio"
	"io"
	"strconv"
)

// WriteColorMap writes one line per haplotype with its color at each locus,
// separated by spaces.
func WriteColorMap(w io.Writer, grid [][]int) error {
	bw := bufio.NewWriter(w)
	for _, row := range grid {
		for j, color := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(color))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
