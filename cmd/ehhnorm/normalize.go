package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/carbocation/ehhscan"
	"github.com/carbocation/ehhscan/norm"
	"github.com/carbocation/ehhscan/output"
	"github.com/carbocation/pfx"
)

// reportOutput receives the per-bin table, summaries and histograms.
var reportOutput io.Writer = os.Stderr

func normalizeIHS(paths []string, bins int) error {
	tables := make([][]output.IHSRow, len(paths))
	var freqs, scores []float64
	for i, path := range paths {
		if err := readTSVFile(path, &tables[i]); err != nil {
			return err
		}
		for _, row := range tables[i] {
			freqs = append(freqs, row.Freq.Number())
			scores = append(scores, row.IHS.Number())
		}
	}

	normed, err := standardize(freqs, scores, bins)
	if err != nil {
		return err
	}

	for i, path := range paths {
		n := len(tables[i])
		if err := writeTSVFile(fmt.Sprintf("%s.%dbins.norm", path, bins), output.NormIHSRows(tables[i], normed[:n])); err != nil {
			return err
		}
		normed = normed[n:]
	}

	return nil
}

func normalizeXPEHH(paths []string) error {
	tables := make([][]output.XPEHHRow, len(paths))
	var scores []float64
	for i, path := range paths {
		if err := readTSVFile(path, &tables[i]); err != nil {
			return err
		}
		for _, row := range tables[i] {
			scores = append(scores, row.XPEHH.Number())
		}
	}

	normed, err := standardize(make([]float64, len(scores)), scores, 1)
	if err != nil {
		return err
	}

	for i, path := range paths {
		n := len(tables[i])
		if err := writeTSVFile(path+".norm", output.NormXPEHHRows(tables[i], normed[:n])); err != nil {
			return err
		}
		normed = normed[n:]
	}

	return nil
}

func normalizeSoft(paths []string) error {
	tables := make([][]output.SoftRow, len(paths))
	var scores []float64
	for i, path := range paths {
		if err := readTSVFile(path, &tables[i]); err != nil {
			return err
		}
		for _, row := range tables[i] {
			scores = append(scores, row.H12.Number())
		}
	}

	normed, err := standardize(make([]float64, len(scores)), scores, 1)
	if err != nil {
		return err
	}

	for i, path := range paths {
		n := len(tables[i])
		if err := writeTSVFile(path+".norm", output.NormSoftRows(tables[i], normed[:n])); err != nil {
			return err
		}
		normed = normed[n:]
	}

	return nil
}

// standardize runs norm.Standardize and reports how it went.
func standardize(freqs, scores []float64, bins int) ([]float64, error) {
	log.Printf("Standardizing %d scores in %d bin(s)\n", len(scores), bins)

	normed, table, err := norm.Standardize(freqs, scores, bins)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if bins > 1 {
		if err := norm.FprintBins(reportOutput, table); err != nil {
			return nil, pfx.Err(err)
		}
	}

	for _, set := range []struct {
		name   string
		values []float64
	}{
		{"unstandardized", scores},
		{"standardized", normed},
	} {
		summary, err := norm.Summarize(set.values)
		if err != nil {
			return nil, pfx.Err(err)
		}
		log.Printf("%s: %s\n", set.name, summary)
		if err := norm.FprintHistogram(reportOutput, set.values, 20, 50); err != nil {
			return nil, pfx.Err(err)
		}
	}

	return normed, nil
}

func readTSVFile(path string, rows interface{}) error {
	rc, err := ehhscan.OpenInput(path, nil)
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := output.ReadTSV(rc, rows); err != nil {
		return pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return nil
}

func writeTSVFile(path string, rows interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	if err := output.WriteTSV(f, rows); err != nil {
		return err
	}

	log.Printf("Wrote %s\n", path)

	return pfx.Err(f.Close())
}
