package norm

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

const tol = 1e-9

func TestStandardizeGenomeWide(t *testing.T) {
	scores := []float64{1, 2, 3, math.NaN(), 4, 5}
	freqs := make([]float64, len(scores))

	normed, bins, err := Standardize(freqs, scores, 1)
	if err != nil {
		t.Fatal(err)
	}

	if bins[0].N != 5 || math.Abs(bins[0].Mean-3) > tol {
		t.Fatalf("\nError with input: %+v\nGot bin: %+v\n", scores, bins[0])
	}

	// Sample standard deviation of 1..5
	sd := math.Sqrt(2.5)
	want := []float64{-2 / sd, -1 / sd, 0, math.NaN(), 1 / sd, 2 / sd}
	for i := range want {
		if math.IsNaN(want[i]) {
			if !math.IsNaN(normed[i]) {
				t.Fatalf("\nExpected NaN at %d, got %v\n", i, normed[i])
			}
			continue
		}
		if math.Abs(normed[i]-want[i]) > tol {
			t.Fatalf("\nError with input: %+v\nExpected: %v\nGot: %v\n", scores, want, normed)
		}
	}
}

func TestStandardizeBins(t *testing.T) {
	// Two bins: the low-frequency scores center on 10, the high on -10.
	freqs := []float64{0.1, 0.2, 0.3, 0.6, 0.7, 1.0, 0.9, 1.5}
	scores := []float64{9, 10, 11, -11, -10, -9, 3, 7}

	normed, bins, err := Standardize(freqs, scores, 2)
	if err != nil {
		t.Fatal(err)
	}

	if bins[0].N != 3 || bins[1].N != 4 {
		t.Fatalf("\nExpected bin sizes 3 and 4, got %+v\n", bins)
	}
	if math.Abs(bins[0].Mean-10) > tol || math.Abs(bins[0].SD-1) > tol {
		t.Fatalf("\nUnexpected low bin: %+v\n", bins[0])
	}
	if math.Abs(normed[1]) > tol || math.Abs(normed[0]+1) > tol {
		t.Fatalf("\nUnexpected low bin scores: %v\n", normed[:3])
	}
	if !math.IsNaN(normed[7]) {
		t.Fatalf("\nExpected a frequency outside [0, 1] to be NaN, got %v\n", normed[7])
	}

	var sum float64
	for _, v := range normed[3:7] {
		sum += v
	}
	if math.Abs(sum) > tol {
		t.Fatalf("\nExpected the high bin to center on zero, got %v\n", normed[3:7])
	}
}

func TestStandardizeSparseBin(t *testing.T) {
	normed, bins, err := Standardize([]float64{0.05, 0.95, 0.96}, []float64{1, 2, 2}, 10)
	if err != nil {
		t.Fatal(err)
	}

	if bins[0].N != 1 || !math.IsNaN(bins[0].Mean) {
		t.Fatalf("\nExpected a lone member to leave the bin undefined, got %+v\n", bins[0])
	}
	for i, v := range normed {
		if !math.IsNaN(v) {
			t.Fatalf("\nExpected NaN at %d (singleton or zero spread), got %v\n", i, v)
		}
	}
}

func TestStandardizeErrors(t *testing.T) {
	if _, _, err := Standardize(nil, nil, 0); err != ErrNoBins {
		t.Fatalf("\nExpected ErrNoBins, got %v\n", err)
	}
	if _, _, err := Standardize([]float64{0.5}, nil, 1); err == nil {
		t.Fatalf("\nExpected a length mismatch error\n")
	}
}

func TestBinOf(t *testing.T) {
	tests := []struct {
		freq float64
		bins int
		want int
	}{
		{0, 100, 0},
		{0.005, 100, 0},
		{0.5, 100, 50},
		{1, 100, 99},
		{-0.1, 100, -1},
		{math.NaN(), 100, -1},
	}
	for _, test := range tests {
		if got := binOf(test.freq, test.bins); got != test.want {
			t.Fatalf("\nError with input: %+v\nGot: %d\n", test, got)
		}
	}
}

func TestSummarize(t *testing.T) {
	x := []float64{5, 1, math.Inf(1), 3, 2, 4, math.NaN()}

	s, err := Summarize(x)
	if err != nil {
		t.Fatal(err)
	}

	if s.N != 5 || s.Min != 1 || s.Max != 5 || s.Median != 3 || s.Mean != 3 {
		t.Fatalf("\nError with input: %+v\nGot: %+v\n", x, s)
	}
	if s.P01 != 1 || s.P99 != 5 {
		t.Fatalf("\nUnexpected tails: %+v\n", s)
	}

	empty, err := Summarize(nil)
	if err != nil || empty.N != 0 {
		t.Fatalf("\nExpected an empty summary, got %+v, %v\n", empty, err)
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	if err := FprintHistogram(&buf, []float64{1, 2, 2, 3, 3, 3}, 3, 20); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Fatalf("\nExpected three histogram lines, got:\n%s\n", buf.String())
	}

	buf.Reset()
	if err := FprintHistogram(&buf, nil, 3, 20); err != nil || !strings.Contains(buf.String(), "no finite") {
		t.Fatalf("\nExpected the empty histogram notice, got %q, %v\n", buf.String(), err)
	}

	buf.Reset()
	if err := FprintBins(&buf, []Bin{{Lower: 0, Upper: 0.5, N: 2, Mean: 1, SD: 0.5}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "0\t0.5\t2\t1\t0.5\n") {
		t.Fatalf("\nUnexpected bin table:\n%s\n", buf.String())
	}
}
