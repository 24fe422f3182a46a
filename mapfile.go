package ehhscan

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// MapReader streams rows from a whitespace-delimited genetic map with the
// columns chromosome, locus ID, genetic position and physical position.
type MapReader struct {
	path    string
	rc      io.ReadCloser
	scanner *bufio.Scanner
	line    int
	err     error
}

// OpenMap opens a (possibly compressed, possibly gs://) map file.
func OpenMap(path string, client *storage.Client) (*MapReader, error) {
	rc, err := OpenInput(path, client)
	if err != nil {
		return nil, err
	}

	m := NewMapReader(rc)
	m.path = path
	m.rc = rc

	return m, nil
}

// NewMapReader wraps an already-open stream. Close is a no-op on the
// returned reader.
func NewMapReader(r io.Reader) *MapReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	return &MapReader{
		scanner: scanner,
	}
}

func (m *MapReader) Close() error {
	if m.rc == nil {
		return nil
	}
	return m.rc.Close()
}

func (m *MapReader) Err() error {
	if m.err != nil {
		return m.err
	}

	return m.scanner.Err()
}

// Read returns the next row, or nil at the end of the stream or on error.
// Blank lines are skipped.
func (m *MapReader) Read() *MapRow {
	for m.err == nil && m.scanner.Scan() {
		m.line++

		cols := strings.Fields(m.scanner.Text())
		if len(cols) == 0 {
			continue
		}

		if len(cols) < PhysicalPosition+1 {
			m.err = fmt.Errorf("%s line %d: expected at least %d columns, found %d", m.path, m.line, PhysicalPosition+1, len(cols))
			return nil
		}

		row := &MapRow{
			Chromosome: cols[Chromosome],
			LocusID:    cols[LocusID],
		}

		genetic, err := strconv.ParseFloat(cols[GeneticPosition], 64)
		if err != nil {
			m.err = pfx.Err(fmt.Errorf("%s line %d: %w", m.path, m.line, err))
			return nil
		}
		row.GeneticPosition = genetic

		physical, err := strconv.ParseInt(cols[PhysicalPosition], 10, 64)
		if err != nil {
			m.err = pfx.Err(fmt.Errorf("%s line %d: %w", m.path, m.line, err))
			return nil
		}
		row.PhysicalPosition = int(physical)

		return row
	}

	return nil
}
