package ehh

import (
	"io"
	"log"
	"sync"

	"github.com/carbocation/ehhscan/hapdata"
)

// Scanner runs genome-wide and single-locus scans over a fixed worker pool.
// The logger and progress handle are shared by all workers.
type Scanner struct {
	cfg      Config
	log      *log.Logger
	progress Progress
}

// NewScanner validates cfg. A nil logger discards warnings and a nil
// progress is ignored.
func NewScanner(cfg Config, logger *log.Logger, progress Progress) (*Scanner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if progress == nil {
		progress = discardProgress{}
	}

	return &Scanner{cfg: cfg, log: logger, progress: progress}, nil
}

func (s *Scanner) Config() Config {
	return s.cfg
}

// dispatch runs work over n loci. Each worker calls newWorker once to get
// its own locus function, so per-worker state is never shared.
func (s *Scanner) dispatch(n int, newWorker func() func(locus int)) {
	threads := s.cfg.Threads
	if n < threads {
		log.Printf("WARNING: there are %d threads but only %d loci. Using 1 thread.\n", threads, n)
		s.log.Printf("WARNING: there are %d threads but only %d loci. Using 1 thread.\n", threads, n)
		threads = 1
	}

	var wg sync.WaitGroup
	for _, block := range Partition(n, threads) {
		wg.Add(1)
		go func(block Block) {
			defer wg.Done()

			work := newWorker()
			for locus := block.First; locus < block.Last; locus++ {
				work(locus)
				s.progress.Advance(1)
			}
		}(block)
	}
	wg.Wait()
}

func checkLoci(h *hapdata.Haplotypes, m *hapdata.Map) error {
	if h.NLoci != m.Len() {
		return ErrLocusCount
	}
	return nil
}

func (s *Scanner) warnMAF(m *hapdata.Map, locus int) {
	s.log.Printf("WARNING: Locus %s has MAF < %v. Skipping calculation at %s\n", m.Names[locus], s.cfg.MAF, m.Names[locus])
}

func (s *Scanner) warnMonomorphic(m *hapdata.Map, locus int) {
	s.log.Printf("WARNING: locus %s (number %d) is monomorphic. Skipping calculation at this locus.\n", m.Names[locus], locus+1)
}

func (s *Scanner) warnStop(stop Stop, w *walker, m *hapdata.Map, locus int) {
	switch stop {
	case StopEdge:
		s.log.Printf("WARNING: Reached chromosome edge before EHH decayed below %v. Skipping calculation at %s\n", s.cfg.Cutoff, m.Names[locus])
	case StopGap:
		s.log.Printf("WARNING: Reached a gap of %dbp > %dbp. Skipping calculation at %s\n", w.gap, s.cfg.MaxGap, m.Names[locus])
	case StopMonomorphic:
		s.warnMonomorphic(m, locus)
	}
}
