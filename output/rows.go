package output

import (
	"github.com/carbocation/ehhscan/ehh"
	"github.com/carbocation/ehhscan/hapdata"
)

type IHSRow struct {
	ID   string `csv:"id" db:"id"`
	Pos  int    `csv:"pos" db:"pos"`
	Freq Stat   `csv:"freq" db:"freq"`
	IHH1 Stat   `csv:"ihh1" db:"ihh1"`
	IHH0 Stat   `csv:"ihh0" db:"ihh0"`
	IHS  Stat   `csv:"ihs" db:"ihs"`
}

type XPEHHRow struct {
	ID    string  `csv:"id" db:"id"`
	Pos   int     `csv:"pos" db:"pos"`
	GPos  float64 `csv:"gpos" db:"gpos"`
	P1    Stat    `csv:"p1" db:"p1"`
	IHH1  Stat    `csv:"ihh1" db:"ihh1"`
	P2    Stat    `csv:"p2" db:"p2"`
	IHH2  Stat    `csv:"ihh2" db:"ihh2"`
	XPEHH Stat    `csv:"xpehh" db:"xpehh"`
}

type SoftRow struct {
	ID    string `csv:"id" db:"id"`
	Pos   int    `csv:"pos" db:"pos"`
	Freq  Stat   `csv:"freq" db:"freq"`
	H1    Stat   `csv:"h1" db:"h1"`
	H12   Stat   `csv:"h12" db:"h12"`
	H2DH1 Stat   `csv:"h2dh1" db:"h2dh1"`
}

type EHHRow struct {
	PhysOffset int     `csv:"phys_offset" db:"phys_offset"`
	GenOffset  float64 `csv:"gen_offset" db:"gen_offset"`
	EHH1       Stat    `csv:"ehh1" db:"ehh1"`
	EHH0       Stat    `csv:"ehh0" db:"ehh0"`
}

type SoftEHHRow struct {
	PhysOffset int     `csv:"phys_offset" db:"phys_offset"`
	GenOffset  float64 `csv:"gen_offset" db:"gen_offset"`
	H1         Stat    `csv:"h1" db:"h1"`
	H12        Stat    `csv:"h12" db:"h12"`
	H2DH1      Stat    `csv:"h2dh1" db:"h2dh1"`
}

// IHSRows keeps loci with a score and two nonzero integrals, or every locus
// when keepMissing is set.
func IHSRows(m *hapdata.Map, res *ehh.IHSResult, keepMissing bool) []IHSRow {
	out := make([]IHSRow, 0, m.Len())
	for i := range res.IHS {
		if !keepMissing && !scored(res.IHS[i], res.IHHDerived[i], res.IHHAncestral[i]) {
			continue
		}
		out = append(out, IHSRow{
			ID:   m.Names[i],
			Pos:  m.Physical[i],
			Freq: NewStat(res.Freq[i]),
			IHH1: NewStat(res.IHHDerived[i]),
			IHH0: NewStat(res.IHHAncestral[i]),
			IHS:  NewStat(res.IHS[i]),
		})
	}
	return out
}

func XPEHHRows(m *hapdata.Map, res *ehh.XPResult, keepMissing bool) []XPEHHRow {
	out := make([]XPEHHRow, 0, m.Len())
	for i := range res.XPEHH {
		if !keepMissing && !scored(res.XPEHH[i], res.IHH1[i], res.IHH2[i]) {
			continue
		}
		out = append(out, XPEHHRow{
			ID:    m.Names[i],
			Pos:   m.Physical[i],
			GPos:  m.Genetic[i],
			P1:    NewStat(res.Freq1[i]),
			IHH1:  NewStat(res.IHH1[i]),
			P2:    NewStat(res.Freq2[i]),
			IHH2:  NewStat(res.IHH2[i]),
			XPEHH: NewStat(res.XPEHH[i]),
		})
	}
	return out
}

func SoftRows(m *hapdata.Map, res *ehh.SoftResult, keepMissing bool) []SoftRow {
	out := make([]SoftRow, 0, m.Len())
	for i := range res.H1 {
		if !keepMissing && !NewStat(res.H1[i]).Valid {
			continue
		}
		out = append(out, SoftRow{
			ID:    m.Names[i],
			Pos:   m.Physical[i],
			Freq:  NewStat(res.Freq[i]),
			H1:    NewStat(res.H1[i]),
			H12:   NewStat(res.H12[i]),
			H2DH1: NewStat(res.H2H1[i]),
		})
	}
	return out
}

func EHHRows(q *ehh.EHHQuery) []EHHRow {
	out := make([]EHHRow, 0, len(q.Steps))
	for _, step := range q.Steps {
		out = append(out, EHHRow{
			PhysOffset: step.PhysOffset,
			GenOffset:  step.GenOffset,
			EHH1:       NewStat(step.Derived),
			EHH0:       NewStat(step.Ancestral),
		})
	}
	return out
}

func SoftEHHRows(q *ehh.SoftQuery) []SoftEHHRow {
	out := make([]SoftEHHRow, 0, len(q.Steps))
	for _, step := range q.Steps {
		out = append(out, SoftEHHRow{
			PhysOffset: step.PhysOffset,
			GenOffset:  step.GenOffset,
			H1:         NewStat(step.H1),
			H12:        NewStat(step.H12),
			H2DH1:      NewStat(step.H2H1),
		})
	}
	return out
}

func scored(stat, ihh1, ihh2 float64) bool {
	return NewStat(stat).Valid && ihh1 != 0 && ihh2 != 0
}
