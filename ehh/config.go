package ehh

import (
	"fmt"

	"github.com/carbocation/ehhscan/homozygosity"
)

// Missing marks a result cell that was not computed.
const Missing = -9999

// DefaultMaxExtend is how far, in bp, a walk may travel from its core locus
// before it stops and keeps what it has integrated.
const DefaultMaxExtend = 1000000

// Config holds the parameters shared by every scan mode.
type Config struct {
	// Cutoff is the homozygosity below which a walk stops.
	Cutoff float64

	// MaxGap is the largest physical gap, in bp, a walk may cross.
	MaxGap int

	// GapScale is the gap, in bp, beyond which genetic distance is scaled down
	// by GapScale/gap.
	GapScale int

	// MAF skips loci whose minor allele frequency is below this value.
	MAF float64

	// Alt selects the squared-frequency homozygosity estimator.
	Alt bool

	Threads int

	// QueryWindow bounds single-locus queries, in bp on each side.
	QueryWindow int

	// SoftK is the number of most frequent haplotypes pooled in H12. Only 2 is
	// computed today.
	SoftK int

	MaxExtend int
}

func DefaultConfig() Config {
	return Config{
		Cutoff:      0.05,
		MaxGap:      200000,
		GapScale:    20000,
		MAF:         0.05,
		Threads:     1,
		QueryWindow: 100000,
		SoftK:       2,
		MaxExtend:   DefaultMaxExtend,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Threads < 1:
		return fmt.Errorf("threads must be >= 1, got %d", c.Threads)
	case c.GapScale < 1:
		return fmt.Errorf("gap scale must be >= 1, got %d", c.GapScale)
	case c.MaxGap < 1:
		return fmt.Errorf("max gap must be >= 1, got %d", c.MaxGap)
	case c.Cutoff <= 0 || c.Cutoff >= 1:
		return fmt.Errorf("EHH cutoff must be > 0 and < 1, got %v", c.Cutoff)
	case c.MAF < 0 || c.MAF > 0.5:
		return fmt.Errorf("MAF must be between 0 and 0.5, got %v", c.MAF)
	case c.QueryWindow < 0:
		return fmt.Errorf("query window must be >= 0, got %d", c.QueryWindow)
	case c.SoftK < 1:
		return fmt.Errorf("EHH1K must be > 0, got %d", c.SoftK)
	case c.MaxExtend < 1:
		return fmt.Errorf("max extend must be >= 1, got %d", c.MaxExtend)
	}

	return nil
}

func (c Config) Mode() homozygosity.Mode {
	return homozygosity.ModeFor(c.Alt)
}

func (c Config) lowMAF(freq float64) bool {
	return freq < c.MAF || 1-freq < c.MAF
}
