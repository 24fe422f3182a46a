package output

import "math"

// NormIHSRow is an iHS row with its frequency-binned standardized score.
type NormIHSRow struct {
	ID      string `csv:"id" db:"id"`
	Pos     int    `csv:"pos" db:"pos"`
	Freq    Stat   `csv:"freq" db:"freq"`
	IHH1    Stat   `csv:"ihh1" db:"ihh1"`
	IHH0    Stat   `csv:"ihh0" db:"ihh0"`
	IHS     Stat   `csv:"ihs" db:"ihs"`
	NormIHS Stat   `csv:"normihs" db:"normihs"`
}

type NormXPEHHRow struct {
	ID        string  `csv:"id" db:"id"`
	Pos       int     `csv:"pos" db:"pos"`
	GPos      float64 `csv:"gpos" db:"gpos"`
	P1        Stat    `csv:"p1" db:"p1"`
	IHH1      Stat    `csv:"ihh1" db:"ihh1"`
	P2        Stat    `csv:"p2" db:"p2"`
	IHH2      Stat    `csv:"ihh2" db:"ihh2"`
	XPEHH     Stat    `csv:"xpehh" db:"xpehh"`
	NormXPEHH Stat    `csv:"normxpehh" db:"normxpehh"`
}

type NormSoftRow struct {
	ID      string `csv:"id" db:"id"`
	Pos     int    `csv:"pos" db:"pos"`
	Freq    Stat   `csv:"freq" db:"freq"`
	H1      Stat   `csv:"h1" db:"h1"`
	H12     Stat   `csv:"h12" db:"h12"`
	H2DH1   Stat   `csv:"h2dh1" db:"h2dh1"`
	NormH12 Stat   `csv:"normh12" db:"normh12"`
}

// Number is the cell as a float, NaN when null.
func (s Stat) Number() float64 {
	if !s.Valid {
		return math.NaN()
	}
	return s.Float64
}

func NormIHSRows(rows []IHSRow, normed []float64) []NormIHSRow {
	out := make([]NormIHSRow, len(rows))
	for i, r := range rows {
		out[i] = NormIHSRow{r.ID, r.Pos, r.Freq, r.IHH1, r.IHH0, r.IHS, NewStat(normed[i])}
	}
	return out
}

func NormXPEHHRows(rows []XPEHHRow, normed []float64) []NormXPEHHRow {
	out := make([]NormXPEHHRow, len(rows))
	for i, r := range rows {
		out[i] = NormXPEHHRow{r.ID, r.Pos, r.GPos, r.P1, r.IHH1, r.P2, r.IHH2, r.XPEHH, NewStat(normed[i])}
	}
	return out
}

func NormSoftRows(rows []SoftRow, normed []float64) []NormSoftRow {
	out := make([]NormSoftRow, len(rows))
	for i, r := range rows {
		out[i] = NormSoftRow{r.ID, r.Pos, r.Freq, r.H1, r.H12, r.H2DH1, NewStat(normed[i])}
	}
	return out
}
