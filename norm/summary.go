package norm

import (
	"fmt"
	"io"
	"math"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/montanaflynn/stats"
)

type Summary struct {
	N      int
	Min    float64
	P01    float64
	P05    float64
	Median float64
	P95    float64
	P99    float64
	Max    float64
	Mean   float64
	SD     float64
}

// Summarize describes the finite values of x.
func Summarize(x []float64) (Summary, error) {
	finite := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}

	out := Summary{N: len(finite)}
	if len(finite) == 0 {
		return out, nil
	}

	data := stats.LoadRawData(finite)

	var err error
	if out.Min, err = data.Min(); err != nil {
		return out, err
	}
	if out.Max, err = data.Max(); err != nil {
		return out, err
	}
	if out.Median, err = data.Median(); err != nil {
		return out, err
	}
	if out.Mean, err = data.Mean(); err != nil {
		return out, err
	}
	if out.SD, err = data.StandardDeviationSample(); err != nil && len(finite) > 1 {
		return out, err
	}

	for _, p := range []struct {
		dst *float64
		pct float64
	}{
		{&out.P01, 1},
		{&out.P05, 5},
		{&out.P95, 95},
		{&out.P99, 99},
	} {
		if *p.dst, err = stats.PercentileNearestRank(data, p.pct); err != nil {
			return out, err
		}
	}

	return out, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("N=%d min=%.4g p1=%.4g p5=%.4g median=%.4g p95=%.4g p99=%.4g max=%.4g mean=%.4g sd=%.4g",
		s.N, s.Min, s.P01, s.P05, s.Median, s.P95, s.P99, s.Max, s.Mean, s.SD)
}

// FprintHistogram draws a text histogram of the finite values of x.
func FprintHistogram(w io.Writer, x []float64, bins, width int) error {
	finite := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}

	if len(finite) == 0 {
		_, err := fmt.Fprintln(w, "(no finite values)")
		return err
	}

	hist := histogram.Hist(bins, finite)
	return histogram.Fprint(w, hist, histogram.Linear(width))
}

// FprintBins writes one line per frequency bin.
func FprintBins(w io.Writer, bins []Bin) error {
	if _, err := fmt.Fprintln(w, "bin_lower\tbin_upper\tn\tmean\tsd"); err != nil {
		return err
	}
	for _, b := range bins {
		if _, err := fmt.Fprintf(w, "%g\t%g\t%d\t%g\t%g\n", b.Lower, b.Upper, b.N, b.Mean, b.SD); err != nil {
			return err
		}
	}

	return nil
}
