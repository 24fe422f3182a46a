// Package output turns scan results into tab-delimited reports, SQLite
// tables and color maps.
package output

import (
	"math"
	"strconv"

	"github.com/carbocation/ehhscan/ehh"
	"gopkg.in/guregu/null.v3"
)

// Stat is a statistic cell. It is null when the value was never computed or
// is not finite, which prints as an empty column and stores as SQL NULL.
type Stat struct {
	null.Float
}

func NewStat(v float64) Stat {
	valid := v != ehh.Missing && !math.IsNaN(v) && !math.IsInf(v, 0)
	return Stat{null.NewFloat(v, valid)}
}

func (s Stat) MarshalCSV() (string, error) {
	if !s.Valid {
		return "", nil
	}
	return strconv.FormatFloat(s.Float64, 'g', -1, 64), nil
}

func (s *Stat) UnmarshalCSV(value string) error {
	if value == "" {
		s.Float = null.Float{}
		return nil
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*s = NewStat(v)
	return nil
}
