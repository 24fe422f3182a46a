package hapdata

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"cloud.google.com/go/storage"
	"github.com/carbocation/ehhscan"
	"github.com/carbocation/pfx"
	"github.com/carbocation/vcfgo"
)

// BufferSize is the read buffer placed in front of VCF streams.
var BufferSize = 4096 * 8

// ReadVCF converts a phased, biallelic VCF into haplotypes: each diploid
// sample contributes two haplotypes, in GT order. Multiallelic sites are
// skipped. The returned map uses the physical position as the genetic
// coordinate; callers with a genetic map replace it.
func ReadVCF(r io.Reader) (*Haplotypes, *Map, error) {
	rdr, err := vcfgo.NewReader(bufio.NewReaderSize(r, BufferSize), true)
	if err != nil && rdr == nil {
		return nil, nil, pfx.Err(err)
	} else if err != nil {
		log.Println("VCF header warning:", err)
	}

	nhaps := 2 * len(rdr.Header.SampleNames)
	m := &Map{}

	// Column-major while reading; transposed once at the end.
	var columns [][]int8
	unphased := 0

	for i := 0; ; i++ {
		variant := rdr.Read()
		if variant == nil {
			break
		}

		if len(variant.Alt()) != 1 {
			log.Printf("Skipping multiallelic site %s:%d (%s)\n", variant.Chrom(), variant.Pos, variant.Id())
			continue
		}

		if err := variant.Header.ParseSamples(variant); err != nil {
			return nil, nil, pfx.Err(fmt.Errorf("%s:%d: %w", variant.Chrom(), variant.Pos, err))
		}

		column := make([]int8, nhaps)
		for s, sample := range variant.Samples {
			if sample == nil || len(sample.GT) != 2 {
				return nil, nil, ploidyError(variant, s)
			}
			if !sample.Phased {
				unphased++
			}
			for j, gt := range sample.GT {
				switch {
				case gt < 0:
					column[2*s+j] = Missing
				case gt == 0:
					column[2*s+j] = 0
				default:
					column[2*s+j] = 1
				}
			}
		}
		columns = append(columns, column)

		name := variant.Id()
		if name == "" || name == "." {
			name = fmt.Sprintf("%s:%d", variant.Chrom(), variant.Pos)
		}
		if m.Chromosome == "" {
			m.Chromosome = variant.Chrom()
		}
		m.Names = append(m.Names, name)
		m.Physical = append(m.Physical, int(variant.Pos))
		m.Genetic = append(m.Genetic, float64(variant.Pos))
	}
	if err := rdr.Error(); err != nil {
		log.Println("VCF parse warning:", err)
	}

	if unphased > 0 {
		log.Printf("WARNING: %d genotypes are not marked as phased; alleles are taken in the order listed\n", unphased)
	}

	nloci := len(columns)
	values := make([]int8, nhaps*nloci)
	for locus, column := range columns {
		for hap, allele := range column {
			values[hap*nloci+locus] = allele
		}
	}

	h, err := NewHaplotypes(nhaps, nloci, values)
	if err != nil {
		return nil, nil, err
	}
	return h, m, nil
}

// LoadVCF reads a local, gs:// or compressed VCF.
func LoadVCF(path string, client *storage.Client) (*Haplotypes, *Map, error) {
	rc, err := ehhscan.OpenInput(path, client)
	if err != nil {
		return nil, nil, err
	}
	defer rc.Close()

	h, m, err := ReadVCF(rc)
	if err != nil {
		return nil, nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}
	return h, m, nil
}

func ploidyError(variant *vcfgo.Variant, sample int) error {
	return fmt.Errorf("%s:%d: sample %d is not diploid; only diploid phased genotypes are supported", variant.Chrom(), variant.Pos, sample+1)
}
