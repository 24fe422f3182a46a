package ehh

import (
	"math/rand"
	"testing"

	"github.com/carbocation/ehhscan/hapdata"
)

func mustHaplotypes(t *testing.T, rows [][]int8) *hapdata.Haplotypes {
	t.Helper()

	h, err := hapdata.FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

// evenMap spaces loci physStep bp and genStep genetic units apart.
func evenMap(nloci, physStep int, genStep float64) *hapdata.Map {
	m := &hapdata.Map{Chromosome: "1"}
	for i := 0; i < nloci; i++ {
		m.Names = append(m.Names, string(rune('a'+i%26))+string(rune('0'+i/26)))
		m.Physical = append(m.Physical, i*physStep)
		m.Genetic = append(m.Genetic, float64(i)*genStep)
	}
	return m
}

func randomHaplotypes(t *testing.T, rng *rand.Rand, nhaps, nloci int) *hapdata.Haplotypes {
	t.Helper()

	rows := make([][]int8, nhaps)
	for i := range rows {
		rows[i] = make([]int8, nloci)
		for j := range rows[i] {
			rows[i][j] = int8(rng.Intn(2))
		}
	}
	return mustHaplotypes(t, rows)
}

func mustScanner(t *testing.T, cfg Config) *Scanner {
	t.Helper()

	s, err := NewScanner(cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// queryFixture: 4 haplotypes x 5 loci. At the core (index 2) haplotypes 0
// and 1 carry the derived allele.
func queryFixture(t *testing.T) (*hapdata.Haplotypes, *hapdata.Map) {
	return mustHaplotypes(t, [][]int8{
		{0, 1, 1, 0, 1},
		{1, 1, 1, 0, 0},
		{0, 0, 0, 1, 1},
		{0, 1, 0, 1, 1},
	}), evenMap(5, 1000, 0.01)
}
