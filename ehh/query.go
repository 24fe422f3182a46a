package ehh

import (
	"github.com/carbocation/ehhscan/hapdata"
	"github.com/carbocation/ehhscan/homozygosity"
	"github.com/carbocation/pfx"
)

// window returns the outermost loci within QueryWindow bp of locus.
func (s *Scanner) window(m *hapdata.Map, locus int) (first, last int) {
	first, last = locus, locus
	for i := locus - 1; i >= 0 && m.Physical[locus]-m.Physical[i] <= s.cfg.QueryWindow; i-- {
		first = i
	}
	for i := locus + 1; i < m.Len() && m.Physical[i]-m.Physical[locus] <= s.cfg.QueryWindow; i++ {
		last = i
	}
	return
}

func (s *Scanner) checkQuery(h *hapdata.Haplotypes, m *hapdata.Map, locus int) (freq float64, err error) {
	if err := checkLoci(h, m); err != nil {
		return 0, pfx.Err(err)
	}
	if locus < 0 || locus >= m.Len() {
		return 0, ErrLocusNotFound
	}

	derived, called := h.AlleleCounts(locus)
	freq = frequency(derived, called)

	locErr := LocusError{Locus: m.Names[locus], Position: m.Physical[locus]}
	if derived == 0 || derived == called {
		locErr.Err = ErrMonomorphic
		return freq, locErr
	}
	if s.cfg.lowMAF(freq) {
		locErr.Err = ErrLowMAF
		return freq, locErr
	}

	return freq, nil
}

// QueryEHH reports the raw derived and ancestral EHH at every locus within
// QueryWindow bp of locus, without stopping at the cutoff, along with the
// haplotype color grids of both allele classes.
func (s *Scanner) QueryEHH(h *hapdata.Haplotypes, m *hapdata.Map, locus int) (*EHHQuery, error) {
	freq, err := s.checkQuery(h, m, locus)
	if err != nil {
		return nil, err
	}

	first, last := s.window(m, locus)
	cols := last - first + 1

	st := newAlleleStepper(h, s.cfg)
	st.classify(locus)

	q := &EHHQuery{
		Locus: locus,
		First: first,
		Last:  last,
		Freq:  freq,
		Steps: make([]EHHStep, cols),
	}
	q.Steps[locus-first] = EHHStep{Locus: locus, Derived: 1, Ancestral: 1}

	derivedColors := newColorTracker(len(st.derivedHaps), cols)
	ancestralColors := newColorTracker(len(st.ancestralHaps), cols)
	derivedKeys := make([]string, len(st.derivedHaps))
	ancestralKeys := make([]string, len(st.ancestralHaps))

	for _, dir := range directions {
		st.keys.reset(h, locus, last-first+1)
		derivedColors.restart()
		ancestralColors.restart()

		for next := locus + int(dir); next >= first && next <= last; next += int(dir) {
			st.keys.extend(h, next)

			step := EHHStep{
				Locus:      next,
				PhysOffset: m.Physical[next] - m.Physical[locus],
				GenOffset:  m.Genetic[next] - m.Genetic[locus],
				Derived:    st.measure(st.derivedHaps, st.derivedTally),
				Ancestral:  st.measure(st.ancestralHaps, st.ancestralTally),
			}
			q.Steps[next-first] = step

			col, prev := next-first, next-first-int(dir)
			derivedColors.fill(col, prev, st.keyStrings(st.derivedHaps, derivedKeys), st.derivedTally.count)
			ancestralColors.fill(col, prev, st.keyStrings(st.ancestralHaps, ancestralKeys), st.ancestralTally.count)
		}
	}

	q.DerivedColors = derivedColors.grid
	q.AncestralColors = ancestralColors.grid

	return q, nil
}

func (s *alleleStepper) keyStrings(members []int, dst []string) []string {
	for i, hap := range members {
		dst[i] = string(s.keys.key(hap))
	}
	return dst
}

// QuerySoft reports the soft-sweep triplet at every locus within QueryWindow
// bp of locus. The core row is the triplet of the core locus itself.
func (s *Scanner) QuerySoft(h *hapdata.Haplotypes, m *hapdata.Map, locus int) (*SoftQuery, error) {
	freq, err := s.checkQuery(h, m, locus)
	if err != nil {
		return nil, err
	}

	first, last := s.window(m, locus)

	st := newSoftStepper(h, s.cfg)
	q := &SoftQuery{
		Locus: locus,
		First: first,
		Last:  last,
		Freq:  freq,
		Steps: make([]SoftStep, last-first+1),
	}

	for _, dir := range directions {
		st.keys.reset(h, locus, last-first+1)
		q.Steps[locus-first] = softStep(m, locus, locus, st.measure())

		for next := locus + int(dir); next >= first && next <= last; next += int(dir) {
			st.keys.extend(h, next)
			q.Steps[next-first] = softStep(m, locus, next, st.measure())
		}
	}

	return q, nil
}

func softStep(m *hapdata.Map, core, locus int, t homozygosity.Triplet) SoftStep {
	return SoftStep{
		Locus:      locus,
		PhysOffset: m.Physical[locus] - m.Physical[core],
		GenOffset:  m.Genetic[locus] - m.Genetic[core],
		H1:         t.H1,
		H12:        t.H12,
		H2H1:       t.H2H1,
	}
}
