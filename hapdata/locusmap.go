package hapdata

import (
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/carbocation/ehhscan"
	"github.com/carbocation/pfx"
)

// Map describes each locus of a haplotype matrix. Positions are assumed to
// be non-decreasing along the chromosome.
type Map struct {
	Chromosome string
	Names      []string
	Physical   []int
	Genetic    []float64
}

func (m *Map) Len() int {
	return len(m.Names)
}

// Find returns the index of the named locus, or -1.
func (m *Map) Find(name string) int {
	for i, v := range m.Names {
		if v == name {
			return i
		}
	}
	return -1
}

// ReadMap parses a map stream. When nloci >= 0 the number of rows must match.
func ReadMap(r io.Reader, nloci int) (*Map, error) {
	return readMap(ehhscan.NewMapReader(r), nloci)
}

// LoadMap reads a local, gs:// or compressed map file.
func LoadMap(path string, nloci int, client *storage.Client) (*Map, error) {
	mr, err := ehhscan.OpenMap(path, client)
	if err != nil {
		return nil, err
	}
	defer mr.Close()

	m, err := readMap(mr, nloci)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}
	return m, nil
}

func readMap(mr *ehhscan.MapReader, nloci int) (*Map, error) {
	m := &Map{}
	if nloci > 0 {
		m.Names = make([]string, 0, nloci)
		m.Physical = make([]int, 0, nloci)
		m.Genetic = make([]float64, 0, nloci)
	}

	for row := mr.Read(); row != nil; row = mr.Read() {
		if m.Chromosome == "" {
			m.Chromosome = row.Chromosome
		}
		m.Names = append(m.Names, row.LocusID)
		m.Physical = append(m.Physical, row.PhysicalPosition)
		m.Genetic = append(m.Genetic, row.GeneticPosition)
	}
	if err := mr.Err(); err != nil {
		return nil, err
	}

	if nloci >= 0 && m.Len() != nloci {
		return nil, fmt.Errorf("found %d loci in the map, but the haplotypes have %d", m.Len(), nloci)
	}

	return m, nil
}
