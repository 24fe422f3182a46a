package output

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"github.com/carbocation/ehhscan/ehh"
	"github.com/carbocation/ehhscan/hapdata"
)

func testMap() *hapdata.Map {
	return &hapdata.Map{
		Chromosome: "1",
		Names:      []string{"rs1", "rs2", "rs3"},
		Physical:   []int{100, 200, 300},
		Genetic:    []float64{0.1, 0.2, 0.3},
	}
}

func testIHS() *ehh.IHSResult {
	return &ehh.IHSResult{
		IHS:          []float64{ehh.Missing, math.Log(2), math.Inf(1)},
		IHHDerived:   []float64{ehh.Missing, 0.5, 0.25},
		IHHAncestral: []float64{ehh.Missing, 0.25, 0},
		Freq:         []float64{0.01, 0.5, 0.75},
	}
}

func TestIHSRows(t *testing.T) {
	rows := IHSRows(testMap(), testIHS(), false)
	if len(rows) != 1 || rows[0].ID != "rs2" {
		t.Fatalf("Expected only rs2, got %+v", rows)
	}

	rows = IHSRows(testMap(), testIHS(), true)
	if len(rows) != 3 {
		t.Fatalf("Expected every locus, got %d rows", len(rows))
	}
	if rows[0].IHS.Valid || rows[2].IHS.Valid || !rows[0].Freq.Valid {
		t.Fatalf("Unexpected validity in %+v", rows)
	}
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTSV(&buf, IHSRows(testMap(), testIHS(), true)); err != nil {
		t.Fatal(err)
	}

	expected := "id\tpos\tfreq\tihh1\tihh0\tihs\n" +
		"rs1\t100\t0.01\t\t\t\n" +
		"rs2\t200\t0.5\t0.5\t0.25\t0.6931471805599453\n" +
		"rs3\t300\t0.75\t0.25\t0\t\n"
	if buf.String() != expected {
		t.Fatalf("Got:\n%q\nExpected:\n%q\n", buf.String(), expected)
	}

	var back []IHSRow
	if err := ReadTSV(&buf, &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 3 || back[1].IHS.Float64 != math.Log(2) || back[0].IHH1.Valid {
		t.Fatalf("Unexpected rows read back: %+v", back)
	}
}

func TestXPEHHRows(t *testing.T) {
	res := &ehh.XPResult{
		XPEHH: []float64{0.1, ehh.Missing, 0.3},
		IHH1:  []float64{1, ehh.Missing, 0},
		IHH2:  []float64{1, ehh.Missing, 1},
		Freq1: []float64{0.5, 0.5, 0.5},
		Freq2: []float64{0.4, 0.4, 0.4},
	}

	rows := XPEHHRows(testMap(), res, false)
	if len(rows) != 1 || rows[0].ID != "rs1" || rows[0].GPos != 0.1 || rows[0].P2.Float64 != 0.4 {
		t.Fatalf("Unexpected rows %+v", rows)
	}
}

func TestWriteColorMap(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteColorMap(&buf, [][]int{{-1, 0, 0}, {2, 0, -1}}); err != nil {
		t.Fatal(err)
	}
	if expected := "-1 0 0\n2 0 -1\n"; buf.String() != expected {
		t.Fatalf("Got %q, expected %q", buf.String(), expected)
	}
}

func TestSQLiteWriter(t *testing.T) {
	w, err := OpenSQLite(filepath.Join(t.TempDir(), "results.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// Writing twice replaces the table.
	for i := 0; i < 2; i++ {
		if err := w.WriteIHS(IHSRows(testMap(), testIHS(), true)); err != nil {
			t.Fatal(err)
		}
	}

	var count int
	if err := w.DB().Get(&count, "SELECT COUNT(*) FROM ihs"); err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("Expected 3 rows, got %d", count)
	}

	var nulls int
	if err := w.DB().Get(&nulls, "SELECT COUNT(*) FROM ihs WHERE ihs IS NULL"); err != nil {
		t.Fatal(err)
	}
	if nulls != 2 {
		t.Fatalf("Expected 2 NULL scores, got %d", nulls)
	}
}

func TestNormIHSRows(t *testing.T) {
	rows := IHSRows(testMap(), testIHS(), true)
	normed := NormIHSRows(rows, []float64{math.NaN(), 1.5, math.Inf(-1)})

	if normed[0].NormIHS.Valid || !normed[1].NormIHS.Valid || normed[2].NormIHS.Valid {
		t.Fatalf("Unexpected validity in %+v", normed)
	}
	if !math.IsNaN(normed[0].IHS.Number()) || normed[1].IHS.Number() != math.Log(2) {
		t.Fatalf("Unexpected numbers in %+v", normed)
	}

	var buf bytes.Buffer
	if err := WriteTSV(&buf, normed[1:2]); err != nil {
		t.Fatal(err)
	}
	expected := "id\tpos\tfreq\tihh1\tihh0\tihs\tnormihs\n" +
		"rs2\t200\t0.5\t0.5\t0.25\t0.6931471805599453\t1.5\n"
	if buf.String() != expected {
		t.Fatalf("Got:\n%q\nExpected:\n%q\n", buf.String(), expected)
	}
}
