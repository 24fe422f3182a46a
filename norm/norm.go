// Package norm standardizes unstandardized selection scores to mean 0 and
// standard deviation 1, either genome-wide or within allele frequency bins.
package norm

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// DefaultBins is the number of derived allele frequency bins used for iHS.
const DefaultBins = 100

// Bin summarizes the scores whose frequency fell in [Lower, Upper).
type Bin struct {
	Lower float64
	Upper float64
	N     int
	Mean  float64
	SD    float64
}

var ErrNoBins = errors.New("at least one bin is required")

// Standardize returns (score - mean) / sd, where mean and sd are taken over
// the finite scores sharing a frequency bin. Scores that are not finite, or
// whose frequency lies outside [0, 1], come back as NaN, as do scores in a
// bin with fewer than two members or no spread. With bins == 1 the
// frequencies are ignored and the standardization is genome-wide.
func Standardize(freqs, scores []float64, bins int) ([]float64, []Bin, error) {
	if bins < 1 {
		return nil, nil, ErrNoBins
	}
	if len(freqs) != len(scores) {
		return nil, nil, fmt.Errorf("%d frequencies but %d scores", len(freqs), len(scores))
	}

	members := make([][]float64, bins)
	which := make([]int, len(scores))
	for i, score := range scores {
		which[i] = -1
		if math.IsNaN(score) || math.IsInf(score, 0) {
			continue
		}

		b := 0
		if bins > 1 {
			b = binOf(freqs[i], bins)
			if b < 0 {
				continue
			}
		}

		which[i] = b
		members[b] = append(members[b], score)
	}

	out := make([]Bin, bins)
	for b := range out {
		out[b] = Bin{
			Lower: float64(b) / float64(bins),
			Upper: float64(b+1) / float64(bins),
			N:     len(members[b]),
			Mean:  math.NaN(),
			SD:    math.NaN(),
		}
		if len(members[b]) < 2 {
			continue
		}
		out[b].Mean, out[b].SD = stat.MeanStdDev(members[b], nil)
	}

	normed := make([]float64, len(scores))
	for i, score := range scores {
		normed[i] = math.NaN()
		if which[i] < 0 {
			continue
		}

		bin := out[which[i]]
		if bin.N < 2 || bin.SD == 0 || math.IsNaN(bin.SD) {
			continue
		}
		normed[i] = (score - bin.Mean) / bin.SD
	}

	return normed, out, nil
}

// binOf places freq in one of bins equal-width bins over [0, 1]. A frequency
// of exactly 1 joins the last bin.
func binOf(freq float64, bins int) int {
	if math.IsNaN(freq) || freq < 0 || freq > 1 {
		return -1
	}

	b := int(freq * float64(bins))
	if b >= bins {
		b = bins - 1
	}

	return b
}
