package ehh

import (
	"github.com/carbocation/ehhscan/hapdata"
	"github.com/carbocation/ehhscan/homozygosity"
)

// alleleStepper follows the carriers of each core allele separately. Each
// allele's curve integrates only while its own EHH is above the cutoff.
type alleleStepper struct {
	haps   *hapdata.Haplotypes
	mode   homozygosity.Mode
	cutoff float64

	keys                       keyArena
	derivedHaps, ancestralHaps []int
	derivedTally               *tally
	ancestralTally             *tally

	derived, ancestral curve
}

func newAlleleStepper(h *hapdata.Haplotypes, cfg Config) *alleleStepper {
	return &alleleStepper{
		haps:           h,
		mode:           cfg.Mode(),
		cutoff:         cfg.Cutoff,
		derivedTally:   newTally(),
		ancestralTally: newTally(),
	}
}

// classify splits haplotypes by their allele at core. Haplotypes missing the
// core allele join neither class.
func (s *alleleStepper) classify(core int) (derived, called int) {
	s.derivedHaps, s.ancestralHaps = s.derivedHaps[:0], s.ancestralHaps[:0]
	for hap := 0; hap < s.haps.NHaps; hap++ {
		switch s.haps.At(hap, core) {
		case 1:
			s.derivedHaps = append(s.derivedHaps, hap)
		case 0:
			s.ancestralHaps = append(s.ancestralHaps, hap)
		}
	}

	return len(s.derivedHaps), len(s.derivedHaps) + len(s.ancestralHaps)
}

func (s *alleleStepper) measure(members []int, t *tally) float64 {
	t.reset()
	for _, hap := range members {
		t.add(s.keys.key(hap))
	}
	return homozygosity.Estimate(t.groupSizes(), t.total, s.mode)
}

func (s *alleleStepper) seed(core, width int) {
	s.keys.reset(s.haps, core, width)
	s.derived = newCurve(1)
	s.ancestral = newCurve(1)
}

func (s *alleleStepper) decaying() bool {
	return s.derived.cur > s.cutoff || s.ancestral.cur > s.cutoff
}

func (s *alleleStepper) step(locus int, scale, dist float64) bool {
	s.keys.extend(s.haps, locus)

	derived := s.measure(s.derivedHaps, s.derivedTally)
	ancestral := s.measure(s.ancestralHaps, s.ancestralTally)
	if s.derivedTally.total == 0 || s.ancestralTally.total == 0 {
		return false
	}

	if s.derived.cur > s.cutoff {
		s.derived.add(derived, scale, dist)
	}
	if s.ancestral.cur > s.cutoff {
		s.ancestral.add(ancestral, scale, dist)
	}

	return true
}

// softStepper follows all haplotypes together and integrates H1, H12 and
// H2/H1 while H1 stays above the cutoff.
type softStepper struct {
	haps   *hapdata.Haplotypes
	cutoff float64

	keys keyArena
	all  *tally

	h1, h12, h2h1 curve
}

func newSoftStepper(h *hapdata.Haplotypes, cfg Config) *softStepper {
	return &softStepper{
		haps:   h,
		cutoff: cfg.Cutoff,
		all:    newTally(),
	}
}

func (s *softStepper) measure() homozygosity.Triplet {
	s.all.reset()
	for hap := 0; hap < s.haps.NHaps; hap++ {
		s.all.add(s.keys.key(hap))
	}
	return homozygosity.Soft(s.all.groupSizes(), s.all.total)
}

func (s *softStepper) seed(core, width int) {
	s.keys.reset(s.haps, core, width)
	t := s.measure()
	s.h1, s.h12, s.h2h1 = newCurve(t.H1), newCurve(t.H12), newCurve(t.H2H1)
}

func (s *softStepper) decaying() bool {
	return s.h1.cur > s.cutoff
}

func (s *softStepper) step(locus int, scale, dist float64) bool {
	s.keys.extend(s.haps, locus)

	t := s.measure()
	if s.all.total == 0 {
		return false
	}

	s.h1.add(t.H1, scale, dist)
	s.h12.add(t.H12, scale, dist)
	s.h2h1.add(t.H2H1, scale, dist)

	return true
}

// crossStepper follows two populations. The walk runs while the pooled EHH
// is above the cutoff, and both populations integrate at every step.
type crossStepper struct {
	pop1, pop2 *hapdata.Haplotypes
	mode       homozygosity.Mode
	cutoff     float64

	keys1, keys2   keyArena
	t1, t2, pooled *tally

	c1, c2, combined curve
}

func newCrossStepper(pop1, pop2 *hapdata.Haplotypes, cfg Config) *crossStepper {
	return &crossStepper{
		pop1:   pop1,
		pop2:   pop2,
		mode:   cfg.Mode(),
		cutoff: cfg.Cutoff,
		t1:     newTally(),
		t2:     newTally(),
		pooled: newTally(),
	}
}

func (s *crossStepper) measure() (e1, e2, pooled float64) {
	s.t1.reset()
	s.t2.reset()
	s.pooled.reset()

	for hap := 0; hap < s.pop1.NHaps; hap++ {
		key := s.keys1.key(hap)
		s.t1.add(key)
		s.pooled.add(key)
	}
	for hap := 0; hap < s.pop2.NHaps; hap++ {
		key := s.keys2.key(hap)
		s.t2.add(key)
		s.pooled.add(key)
	}

	e1 = homozygosity.Estimate(s.t1.groupSizes(), s.t1.total, s.mode)
	e2 = homozygosity.Estimate(s.t2.groupSizes(), s.t2.total, s.mode)
	pooled = homozygosity.Estimate(s.pooled.groupSizes(), s.pooled.total, s.mode)
	return
}

func (s *crossStepper) seed(core, width int) {
	s.keys1.reset(s.pop1, core, width)
	s.keys2.reset(s.pop2, core, width)

	e1, e2, pooled := s.measure()
	s.c1, s.c2, s.combined = newCurve(e1), newCurve(e2), newCurve(pooled)
}

func (s *crossStepper) decaying() bool {
	return s.combined.cur > s.cutoff
}

func (s *crossStepper) step(locus int, scale, dist float64) bool {
	s.keys1.extend(s.pop1, locus)
	s.keys2.extend(s.pop2, locus)

	e1, e2, pooled := s.measure()
	if s.t1.total == 0 || s.t2.total == 0 {
		return false
	}

	s.c1.add(e1, scale, dist)
	s.c2.add(e2, scale, dist)
	s.combined.add(pooled, scale, dist)

	return true
}
