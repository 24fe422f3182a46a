package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/carbocation/ehhscan/compileinfo"
	"github.com/carbocation/ehhscan/config"
	"github.com/carbocation/ehhscan/ehh"
	"github.com/carbocation/ehhscan/hapdata"
	"github.com/carbocation/ehhscan/output"
	"github.com/carbocation/pfx"
)

// progressOutput receives the progress bar.
var progressOutput io.Writer = os.Stderr

// run performs one scan and writes <base>.log, <base>.out and, for EHH
// queries, the two color maps.
func run(cfg config.Config, commandLine string) error {
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}

	base := cfg.OutputBase()

	logFile, err := os.Create(base + ".log")
	if err != nil {
		return pfx.Err(err)
	}
	defer logFile.Close()

	runLog := log.New(logFile, "", 0)
	if err := writeRunHeader(logFile, cfg, mode, commandLine); err != nil {
		return pfx.Err(err)
	}

	log.Printf("Loading haplotypes for %s\n", mode)
	h, m, err := loadPopulation(cfg.HapPath, cfg.VCFPath, cfg.MapPath)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d haplotypes at %d loci on chromosome %s\n", h.NHaps, h.NLoci, m.Chromosome)
	runLog.Printf("Loaded %d haplotypes at %d loci.\n", h.NHaps, h.NLoci)

	var ref *hapdata.Haplotypes
	if mode == config.ModeXPEHH {
		if ref, err = loadReference(cfg, m); err != nil {
			return err
		}
		log.Printf("Loaded %d reference haplotypes\n", ref.NHaps)
		runLog.Printf("Loaded %d reference haplotypes.\n", ref.NHaps)
	}

	var sql *output.SQLiteWriter
	if cfg.SQLitePath != "" {
		if sql, err = output.OpenSQLite(cfg.SQLitePath); err != nil {
			return err
		}
		defer sql.Close()
	}

	switch mode {
	case config.ModeEHH, config.ModeSoftEHH:
		return runQuery(cfg, mode, base, h, m, runLog, sql)
	}

	bar := newBarProgress(progressOutput, mode.String(), m.Len())
	scanner, err := ehh.NewScanner(cfg.Scan(), runLog, bar)
	if err != nil {
		return err
	}

	var rows interface{}
	switch mode {
	case config.ModeIHS:
		res, err := scanner.IHS(h, m)
		bar.Finish()
		if err != nil {
			return err
		}
		ihs := output.IHSRows(m, res, cfg.KeepMissing)
		if sql != nil {
			if err := sql.WriteIHS(ihs); err != nil {
				return err
			}
		}
		rows = ihs
	case config.ModeXPEHH:
		res, err := scanner.XPEHH(h, ref, m)
		bar.Finish()
		if err != nil {
			return err
		}
		xp := output.XPEHHRows(m, res, cfg.KeepMissing)
		if sql != nil {
			if err := sql.WriteXPEHH(xp); err != nil {
				return err
			}
		}
		rows = xp
	case config.ModeSoft:
		res, err := scanner.SoftIHS(h, m)
		bar.Finish()
		if err != nil {
			return err
		}
		soft := output.SoftRows(m, res, cfg.KeepMissing)
		if sql != nil {
			if err := sql.WriteSoft(soft); err != nil {
				return err
			}
		}
		rows = soft
	}

	if err := writeTSVFile(base+".out", rows); err != nil {
		return err
	}

	log.Printf("Wrote %s\n", base+".out")
	runLog.Println("Completed.")

	return nil
}

func runQuery(cfg config.Config, mode config.Mode, base string, h *hapdata.Haplotypes, m *hapdata.Map, runLog *log.Logger, sql *output.SQLiteWriter) error {
	scanner, err := ehh.NewScanner(cfg.Scan(), runLog, nil)
	if err != nil {
		return err
	}

	locus := m.Find(cfg.Query)
	if locus < 0 {
		return pfx.Err(fmt.Errorf("could not find %s: %w", cfg.Query, ehh.ErrLocusNotFound))
	}

	if mode == config.ModeSoftEHH {
		q, err := scanner.QuerySoft(h, m, locus)
		if err != nil {
			return pfx.Err(err)
		}
		rows := output.SoftEHHRows(q)
		if sql != nil {
			if err := sql.WriteSoftEHH(rows); err != nil {
				return err
			}
		}
		return writeTSVFile(base+".out", rows)
	}

	q, err := scanner.QueryEHH(h, m, locus)
	if err != nil {
		return pfx.Err(err)
	}
	rows := output.EHHRows(q)
	if sql != nil {
		if err := sql.WriteEHH(rows); err != nil {
			return err
		}
	}
	if err := writeTSVFile(base+".out", rows); err != nil {
		return err
	}

	if err := writeColorMapFile(base+".der.colormap", q.DerivedColors); err != nil {
		return err
	}

	return writeColorMapFile(base+".anc.colormap", q.AncestralColors)
}

func writeRunHeader(w io.Writer, cfg config.Config, mode config.Mode, commandLine string) error {
	if _, err := fmt.Fprintln(w, commandLine); err != nil {
		return err
	}
	if err := compileinfo.Fprint(w); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Mode: %s\n"+
		"Input haplotypes: %s\n"+
		"Input VCF: %s\n"+
		"Input map: %s\n"+
		"Reference haplotypes: %s\n"+
		"Reference VCF: %s\n"+
		"EHH cutoff: %g\n"+
		"Alt homozygosity: %t\n"+
		"MAF filter: %g\n"+
		"Max gap: %d\n"+
		"Gap scale: %d\n"+
		"Max extend: %d\n"+
		"Query window: %d\n"+
		"EHH1K: %d\n"+
		"Threads: %d\n",
		mode, cfg.HapPath, cfg.VCFPath, cfg.MapPath, cfg.RefPath, cfg.RefVCFPath,
		cfg.Cutoff, cfg.Alt, cfg.MAF, cfg.MaxGap, cfg.GapScale, cfg.MaxExtend,
		cfg.QueryWindow, cfg.SoftK, cfg.Threads)

	return err
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

	return pfx.Err(f.Close())
}

func writeColorMapFile(path string, grid [][]int) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	if err := output.WriteColorMap(f, grid); err != nil {
		return err
	}

	return pfx.Err(f.Close())
}
