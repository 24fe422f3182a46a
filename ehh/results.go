package ehh

// IHSResult holds one cell per locus; uncomputed cells are Missing.
type IHSResult struct {
	IHS          []float64
	IHHDerived   []float64
	IHHAncestral []float64
	Freq         []float64
}

func newIHSResult(nloci int) *IHSResult {
	return &IHSResult{
		IHS:          missing(nloci),
		IHHDerived:   missing(nloci),
		IHHAncestral: missing(nloci),
		Freq:         missing(nloci),
	}
}

// SoftResult holds the integrated soft-sweep statistics per locus.
type SoftResult struct {
	H1   []float64
	H12  []float64
	H2H1 []float64
	Freq []float64
}

func newSoftResult(nloci int) *SoftResult {
	return &SoftResult{
		H1:   missing(nloci),
		H12:  missing(nloci),
		H2H1: missing(nloci),
		Freq: missing(nloci),
	}
}

// XPResult compares integrated EHH between two populations per locus.
type XPResult struct {
	XPEHH []float64
	IHH1  []float64
	IHH2  []float64
	Freq1 []float64
	Freq2 []float64
}

func newXPResult(nloci int) *XPResult {
	return &XPResult{
		XPEHH: missing(nloci),
		IHH1:  missing(nloci),
		IHH2:  missing(nloci),
		Freq1: missing(nloci),
		Freq2: missing(nloci),
	}
}

func missing(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = Missing
	}
	return out
}

// EHHStep is the raw EHH at one locus of a single-locus query.
type EHHStep struct {
	Locus      int
	PhysOffset int
	GenOffset  float64
	Derived    float64
	Ancestral  float64
}

// EHHQuery is the EHH profile around one core locus. Steps run from First to
// Last inclusive. Color grids have one row per carrier of the allele, in
// haplotype order, and one column per step.
type EHHQuery struct {
	Locus           int
	First, Last     int
	Freq            float64
	Steps           []EHHStep
	DerivedColors   [][]int
	AncestralColors [][]int
}

// SoftStep is the soft-sweep triplet at one locus of a query.
type SoftStep struct {
	Locus      int
	PhysOffset int
	GenOffset  float64
	H1         float64
	H12        float64
	H2H1       float64
}

type SoftQuery struct {
	Locus       int
	First, Last int
	Freq        float64
	Steps       []SoftStep
}
