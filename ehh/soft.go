package ehh

import (
	"github.com/carbocation/ehhscan/hapdata"
	"github.com/carbocation/pfx"
)

// SoftIHS integrates H1, H12 and H2/H1 outward from every locus, summing the
// left and right walks.
func (s *Scanner) SoftIHS(h *hapdata.Haplotypes, m *hapdata.Map) (*SoftResult, error) {
	if err := checkLoci(h, m); err != nil {
		return nil, pfx.Err(err)
	}

	res := newSoftResult(h.NLoci)
	s.dispatch(h.NLoci, func() func(int) {
		st := newSoftStepper(h, s.cfg)
		w := newWalker(m, s.cfg)
		return func(locus int) {
			s.softLocus(st, w, h, m, locus, res)
		}
	})

	return res, nil
}

func (s *Scanner) softLocus(st *softStepper, w *walker, h *hapdata.Haplotypes, m *hapdata.Map, locus int, res *SoftResult) {
	derived, called := h.AlleleCounts(locus)

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

	var h1, h12, h2h1 float64
	for _, dir := range directions {
		if stop := w.walk(locus, dir, st); stop.Discarded() {
			s.warnStop(stop, w, m, locus)
			return
		}
		h1 += st.h1.integral
		h12 += st.h12.integral
		h2h1 += st.h2h1.integral
	}

	res.H1[locus] = h1
	res.H12[locus] = h12
	res.H2H1[locus] = h2h1
}
