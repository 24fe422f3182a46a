package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/carbocation/ehhscan"
)

const recombTSV = `# chr	id	cM	bp
1	x	0.0	1000
1	x	1.0	2000
1	x	3.0	4000
2	x	10.0	500
2	x	11.0	1500
`

func TestInterpolate(t *testing.T) {
	tests := []struct {
		pos  int
		a, b recombPoint
		want float64
	}{
		{1500, recombPoint{pos: 1000, cm: 0}, recombPoint{pos: 2000, cm: 1}, 0.5},
		{3000, recombPoint{pos: 2000, cm: 1}, recombPoint{pos: 4000, cm: 3}, 2},
		{2000, recombPoint{pos: 2000, cm: 1}, recombPoint{pos: 2000, cm: 1}, 1},
	}
	for _, test := range tests {
		if got := interpolate(test.pos, test.a, test.b); math.Abs(got-test.want) > 1e-12 {
			t.Fatalf("\nError with input: %+v\nExpected: %v\nGot: %v\n", test, test.want, got)
		}
	}
}

func TestLoadRecombinationMap(t *testing.T) {
	m, err := loadRecombinationMap(strings.NewReader(recombTSV), columns{chr: 0, bp: 3, cm: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(m.points) != 5 || m.points[2].pos != 4000 || m.points[2].cm != 3 || m.points[4].chr != "2" {
		t.Fatalf("\nUnexpected map: %+v\n", m.points)
	}

	spaced := strings.ReplaceAll(recombTSV, "\t", "  ")
	m, err = loadRecombinationMap(strings.NewReader(spaced), columns{chr: 0, bp: 3, cm: 2})
	if err != nil {
		t.Fatalf("\nError with space-delimited input: %v\n", err)
	}
	if len(m.points) != 5 || m.points[1].pos != 2000 {
		t.Fatalf("\nUnexpected space-delimited map: %+v\n", m.points)
	}

	if _, err := loadRecombinationMap(strings.NewReader("1\t2\n"), columns{chr: 0, bp: 3, cm: 2}); err == nil {
		t.Fatalf("\nExpected an error for too few columns\n")
	}
}

func TestInterpolateMap(t *testing.T) {
	recomb, err := loadRecombinationMap(strings.NewReader(recombTSV), columns{chr: 0, bp: 3, cm: 2})
	if err != nil {
		t.Fatal(err)
	}

	loci := ehhscan.NewMapReader(strings.NewReader(`1 rs1 0 500
1 rs2 0 1500
1 rs3 0 3000
1 rs4 0 9000
2 rs5 0 1000
`))

	var buf bytes.Buffer
	n, err := interpolateMap(loci, recomb, &buf)
	if err != nil {
		t.Fatal(err)
	}

	expected := "1 rs1 0.000000 500\n" +
		"1 rs2 0.500000 1500\n" +
		"1 rs3 2.000000 3000\n" +
		"1 rs4 3.000000 9000\n" +
		"2 rs5 10.500000 1000\n"
	if n != 5 || buf.String() != expected {
		t.Fatalf("\nGot %d loci:\n%s\nExpected:\n%s\n", n, buf.String(), expected)
	}
}

func TestInterpolateMapErrors(t *testing.T) {
	recomb, err := loadRecombinationMap(strings.NewReader(recombTSV), columns{chr: 0, bp: 3, cm: 2})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if _, err := interpolateMap(ehhscan.NewMapReader(strings.NewReader("3 rs1 0 10\n")), recomb, &buf); err == nil {
		t.Fatalf("\nExpected an error for a chromosome missing from the recombination map\n")
	}
	if _, err := interpolateMap(ehhscan.NewMapReader(strings.NewReader("1 rs1 0 10\n1 rs2 0 5\n")), recomb, &buf); err == nil {
		t.Fatalf("\nExpected an error for unsorted loci\n")
	}
}
