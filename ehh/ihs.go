package ehh

import (
	"math"

	"github.com/carbocation/ehhscan/hapdata"
	"github.com/carbocation/pfx"
)

// IHS computes the unstandardized integrated haplotype score at every locus:
// ln(iHH derived / iHH ancestral).
func (s *Scanner) IHS(h *hapdata.Haplotypes, m *hapdata.Map) (*IHSResult, error) {
	if err := checkLoci(h, m); err != nil {
		return nil, pfx.Err(err)
	}

	res := newIHSResult(h.NLoci)
	s.dispatch(h.NLoci, func() func(int) {
		st := newAlleleStepper(h, s.cfg)
		w := newWalker(m, s.cfg)
		return func(locus int) {
			s.ihsLocus(st, w, m, locus, res)
		}
	})

	return res, nil
}

func (s *Scanner) ihsLocus(st *alleleStepper, w *walker, m *hapdata.Map, locus int, res *IHSResult) {
	derived, called := st.classify(locus)

	freq := frequency(derived, called)
	res.Freq[locus] = freq

	if s.cfg.lowMAF(freq) {
		s.warnMAF(m, locus)
		return
	}
	if derived == 0 || derived == called {
		s.warnMonomorphic(m, locus)
		return
	}

	var ihhDerived, ihhAncestral float64
	for _, dir := range directions {
		if stop := w.walk(locus, dir, st); stop.Discarded() {
			s.warnStop(stop, w, m, locus)
			return
		}
		ihhDerived += st.derived.integral
		ihhAncestral += st.ancestral.integral
	}

	res.IHHDerived[locus] = ihhDerived
	res.IHHAncestral[locus] = ihhAncestral
	res.IHS[locus] = math.Log(ihhDerived / ihhAncestral)
}
