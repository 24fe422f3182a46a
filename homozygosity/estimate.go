// Package homozygosity computes haplotype homozygosity statistics from the
// sizes of groups of identical haplotypes.
package homozygosity

import "fmt"

// Mode selects the homozygosity estimator.
type Mode int

const (
	// Pairwise is the probability that two haplotypes drawn without
	// replacement are identical.
	Pairwise Mode = iota

	// Frequency is the sum of squared group frequencies.
	Frequency
)

func (m Mode) String() string {
	switch m {
	case Pairwise:
		return "pairwise"
	case Frequency:
		return "frequency"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ModeFor maps the --alt switch onto an estimator.
func ModeFor(alt bool) Mode {
	if alt {
		return Frequency
	}
	return Pairwise
}

// Estimate returns the homozygosity of a partition of total haplotypes into
// groups of the given sizes. The result lies in [0, 1]; it is 1 when one
// group holds every haplotype. Estimate returns 0 when total is 0, or when
// total is 1 in Pairwise mode.
func Estimate(sizes []int, total int, mode Mode) float64 {
	if total <= 0 {
		return 0
	}

	var out float64
	switch mode {
	case Frequency:
		n := float64(total)
		for _, s := range sizes {
			f := float64(s) / n
			out += f * f
		}
	default:
		denominator := Pairs(total)
		if denominator == 0 {
			return 0
		}
		for _, s := range sizes {
			out += pairs(s) / denominator
		}
	}

	return out
}
