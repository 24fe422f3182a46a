package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/ehhscan"
)

type columns struct {
	chr int
	bp  int
	cm  int
}

type recombPoint struct {
	chr string
	pos int
	cm  float64
}

// recombinationMap holds the map's points in file order, which must be
// sorted by position within each chromosome.
type recombinationMap struct {
	points []recombPoint
}

func loadRecombinationMap(f io.Reader, cols columns) (*recombinationMap, error) {
	br := bufio.NewReaderSize(f, 16*1024)

	// Sniff the delimiter from the first few kilobytes, skipping comments.
	head, _ := br.Peek(8 * 1024)
	var sample bytes.Buffer
	for _, line := range bytes.SplitAfter(head, []byte("\n")) {
		if !bytes.HasPrefix(line, []byte("#")) {
			sample.Write(line)
		}
	}

	r := csv.NewReader(br)
	r.Comma = ehhscan.DetermineDelimiter(sample.Bytes())
	r.Comment = '#'
	r.FieldsPerRecord = -1

	lines, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	need := cols.chr
	if cols.bp > need {
		need = cols.bp
	}
	if cols.cm > need {
		need = cols.cm
	}

	out := &recombinationMap{points: make([]recombPoint, 0, len(lines))}
	for i, v := range lines {
		// A space delimiter can yield empty fields from repeated spaces.
		if r.Comma == ' ' {
			v = strings.Fields(strings.Join(v, " "))
		}
		if len(v) <= need {
			return nil, fmt.Errorf("recombination map line %d has %d columns, need %d", i+1, len(v), need+1)
		}

		bp, err := strconv.Atoi(v[cols.bp])
		if err != nil {
			return nil, err
		}
		cm, err := strconv.ParseFloat(v[cols.cm], 64)
		if err != nil {
			return nil, err
		}

		out.points = append(out.points, recombPoint{chr: v[cols.chr], pos: bp, cm: cm})
	}

	return out, nil
}

// cursor walks the map alongside sorted loci. It starts at -1, before the
// first point of the chromosome.
type cursor struct {
	m     *recombinationMap
	chr   string
	first int
	last  int
	at    int
}

func (m *recombinationMap) cursor(chr string) (*cursor, error) {
	c := &cursor{m: m, chr: chr, first: -1}
	for i, p := range m.points {
		if p.chr != chr {
			if c.first >= 0 {
				break
			}
			continue
		}
		if c.first < 0 {
			c.first = i
		}
		c.last = i
	}
	if c.first < 0 {
		return nil, fmt.Errorf("chromosome %s is not in the recombination map", chr)
	}
	c.at = c.first - 1

	return c, nil
}

// lookup returns the interpolated centiMorgan value at position. Positions
// must be requested in nondecreasing order. Outside the map the nearest end
// value is used.
func (c *cursor) lookup(position int) float64 {
	for c.at < c.last && c.m.points[c.at+1].pos <= position {
		c.at++
	}

	if c.at < c.first {
		return c.m.points[c.first].cm
	}
	if c.at == c.last {
		return c.m.points[c.last].cm
	}

	return interpolate(position, c.m.points[c.at], c.m.points[c.at+1])
}

// Y3 = Y1 + (Y2 - Y1) / (X2 - X1) * (X3 - X1)
func interpolate(position int, behind, ahead recombPoint) float64 {
	if ahead.pos == behind.pos {
		return behind.cm
	}

	return behind.cm + (ahead.cm-behind.cm)/float64(ahead.pos-behind.pos)*float64(position-behind.pos)
}

// interpolateMap copies every row of loci to w with its genetic position
// replaced.
func interpolateMap(loci *ehhscan.MapReader, recomb *recombinationMap, w io.Writer) (int, error) {
	var cur *cursor
	lastPos := -1
	n := 0

	for row := loci.Read(); row != nil; row = loci.Read() {
		if cur == nil || cur.chr != row.Chromosome {
			var err error
			if cur, err = recomb.cursor(row.Chromosome); err != nil {
				return n, err
			}
			lastPos = -1
		}

		if row.PhysicalPosition < lastPos {
			return n, fmt.Errorf("%s at %d follows position %d; loci must be sorted", row.LocusID, row.PhysicalPosition, lastPos)
		}
		lastPos = row.PhysicalPosition

		if _, err := fmt.Fprintf(w, "%s %s %.6f %d\n", row.Chromosome, row.LocusID, cur.lookup(row.PhysicalPosition), row.PhysicalPosition); err != nil {
			return n, err
		}
		n++
	}

	return n, loci.Err()
}
