package ehh

import (
	"fmt"
	"math"

	"github.com/carbocation/ehhscan/hapdata"
	"github.com/carbocation/pfx"
)

// XPEHH compares iHH between two populations typed at the same loci:
// ln(iHH pop1 / iHH pop2).
func (s *Scanner) XPEHH(pop1, pop2 *hapdata.Haplotypes, m *hapdata.Map) (*XPResult, error) {
	if pop1.NLoci != pop2.NLoci {
		return nil, pfx.Err(fmt.Errorf("%w: population 1 has %d loci, population 2 has %d", ErrLocusCount, pop1.NLoci, pop2.NLoci))
	}
	if err := checkLoci(pop1, m); err != nil {
		return nil, pfx.Err(err)
	}

	res := newXPResult(pop1.NLoci)
	s.dispatch(pop1.NLoci, func() func(int) {
		st := newCrossStepper(pop1, pop2, s.cfg)
		w := newWalker(m, s.cfg)
		return func(locus int) {
			s.xpLocus(st, w, m, locus, res)
		}
	})

	return res, nil
}

func (s *Scanner) xpLocus(st *crossStepper, w *walker, m *hapdata.Map, locus int, res *XPResult) {
	derived1, called1 := st.pop1.AlleleCounts(locus)
	derived2, called2 := st.pop2.AlleleCounts(locus)

	res.Freq1[locus] = frequency(derived1, called1)
	res.Freq2[locus] = frequency(derived2, called2)

	derived, called := derived1+derived2, called1+called2
	if s.cfg.lowMAF(frequency(derived, called)) {
		s.warnMAF(m, locus)
		return
	}
	if derived == 0 || derived == called {
		s.warnMonomorphic(m, locus)
		return
	}

	var ihh1, ihh2 float64
	for _, dir := range directions {
		if stop := w.walk(locus, dir, st); stop.Discarded() {
			s.warnStop(stop, w, m, locus)
			return
		}
		ihh1 += st.c1.integral
		ihh2 += st.c2.integral
	}

	res.IHH1[locus] = ihh1
	res.IHH2[locus] = ihh2
	res.XPEHH[locus] = math.Log(ihh1 / ihh2)
}

func frequency(derived, called int) float64 {
	if called == 0 {
		return 0
	}
	return float64(derived) / float64(called)
}
