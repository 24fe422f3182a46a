// Package hapdata holds the phased haplotype matrix and its locus map, and
// reads them from .hap, .map and phased VCF files.
package hapdata

import "fmt"

// Missing is the allele value of an uncalled site.
const Missing int8 = -9

// Haplotypes is an immutable NHaps x NLoci matrix of alleles (0, 1 or
// Missing), stored row-major. It is shared read-only between workers.
type Haplotypes struct {
	NHaps  int
	NLoci  int
	Values []int8
}

// NewHaplotypes wraps row-major values. len(values) must be nhaps*nloci.
func NewHaplotypes(nhaps, nloci int, values []int8) (*Haplotypes, error) {
	if nhaps < 0 || nloci < 0 || len(values) != nhaps*nloci {
		return nil, fmt.Errorf("%d values cannot fill %d haplotypes x %d loci", len(values), nhaps, nloci)
	}

	return &Haplotypes{NHaps: nhaps, NLoci: nloci, Values: values}, nil
}

// FromRows builds a matrix from one slice per haplotype. Handy for tests and
// small inputs.
func FromRows(rows [][]int8) (*Haplotypes, error) {
	nloci := 0
	if len(rows) > 0 {
		nloci = len(rows[0])
	}

	values := make([]int8, 0, len(rows)*nloci)
	for i, row := range rows {
		if len(row) != nloci {
			return nil, fmt.Errorf("haplotype %d has %d loci, expected %d", i+1, len(row), nloci)
		}
		values = append(values, row...)
	}

	return NewHaplotypes(len(rows), nloci, values)
}

func (h *Haplotypes) At(hap, locus int) int8 {
	return h.Values[hap*h.NLoci+locus]
}

// AlleleCounts reports how many haplotypes carry the derived allele (1) at
// locus, and how many carry any called allele.
func (h *Haplotypes) AlleleCounts(locus int) (derived, called int) {
	for hap := 0; hap < h.NHaps; hap++ {
		switch h.At(hap, locus) {
		case 1:
			derived++
			called++
		case 0:
			called++
		}
	}
	return
}

// DerivedFrequency is the derived allele count over called haplotypes, or 0
// when nothing at locus is called.
func (h *Haplotypes) DerivedFrequency(locus int) float64 {
	derived, called := h.AlleleCounts(locus)
	if called == 0 {
		return 0
	}
	return float64(derived) / float64(called)
}

// Flip returns a copy with 0 and 1 exchanged everywhere.
func (h *Haplotypes) Flip() *Haplotypes {
	values := make([]int8, len(h.Values))
	for i, v := range h.Values {
		switch v {
		case 0:
			values[i] = 1
		case 1:
			values[i] = 0
		default:
			values[i] = v
		}
	}

	return &Haplotypes{NHaps: h.NHaps, NLoci: h.NLoci, Values: values}
}
