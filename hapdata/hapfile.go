package hapdata

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/ehhscan"
	"github.com/carbocation/pfx"
)

// ReadHaplotypes parses a .hap stream: one row per haplotype and one
// whitespace-separated allele per locus. Missing calls may be written as -9,
// . or ?.
func ReadHaplotypes(r io.Reader) (*Haplotypes, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024*1024)

	var values []int8
	nhaps, nloci := 0, -1
	line := 0
	for scanner.Scan() {
		line++
		cols := strings.Fields(scanner.Text())
		if len(cols) == 0 {
			continue
		}

		if nloci < 0 {
			nloci = len(cols)
		} else if len(cols) != nloci {
			return nil, fmt.Errorf("line %d has %d loci, but earlier lines have %d", line, len(cols), nloci)
		}

		for j, col := range cols {
			allele, err := parseAllele(col)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", line, j+1, err)
			}
			values = append(values, allele)
		}
		nhaps++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if nloci < 0 {
		nloci = 0
	}

	return NewHaplotypes(nhaps, nloci, values)
}

// LoadHaplotypes reads a local, gs:// or compressed .hap file.
func LoadHaplotypes(path string, client *storage.Client) (*Haplotypes, error) {
	rc, err := ehhscan.OpenInput(path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	h, err := ReadHaplotypes(rc)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}
	return h, nil
}

func parseAllele(col string) (int8, error) {
	switch col {
	case "0":
		return 0, nil
	case "1":
		return 1, nil
	case "-9", ".", "?":
		return Missing, nil
	}
	return Missing, fmt.Errorf("alleles must be coded 0/1 (or -9 for missing), found %q", col)
}
