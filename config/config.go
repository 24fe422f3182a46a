// Package config gathers the run parameters of ehhscan from defaults, an
// optional TOML file and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/BurntSushi/toml"
	"github.com/carbocation/ehhscan"
	"github.com/carbocation/ehhscan/ehh"
	"github.com/carbocation/pfx"
)

type Mode int

const (
	ModeNone Mode = iota
	ModeIHS
	ModeXPEHH
	ModeSoft
	ModeEHH
	ModeSoftEHH
)

func (m Mode) String() string {
	switch m {
	case ModeIHS:
		return "ihs"
	case ModeXPEHH:
		return "xpehh"
	case ModeSoft:
		return "soft"
	case ModeEHH:
		return "ehh"
	case ModeSoftEHH:
		return "soft-ehh"
	}
	return "none"
}

type Config struct {
	ConfigPath string `toml:"-"`

	HapPath    string `toml:"hap"`
	RefPath    string `toml:"ref"`
	MapPath    string `toml:"map"`
	VCFPath    string `toml:"vcf"`
	RefVCFPath string `toml:"vcf_ref"`
	Out        string `toml:"out"`
	SQLitePath string `toml:"sqlite"`

	IHS   bool   `toml:"ihs"`
	XPEHH bool   `toml:"xpehh"`
	Soft  bool   `toml:"soft"`
	Query string `toml:"ehh"`

	Cutoff      float64 `toml:"cutoff"`
	MaxGap      int     `toml:"max_gap"`
	GapScale    int     `toml:"gap_scale"`
	MAF         float64 `toml:"maf"`
	Alt         bool    `toml:"alt"`
	Threads     int     `toml:"threads"`
	QueryWindow int     `toml:"ehh_win"`
	SoftK       int     `toml:"ehh1k"`
	MaxExtend   int     `toml:"max_extend"`

	KeepMissing bool `toml:"keep_missing"`

	// MemoryLimit, in bytes, starts a heap watchdog when nonzero.
	MemoryLimit uint64 `toml:"memory_limit"`
}

func Default() Config {
	scan := ehh.DefaultConfig()

	return Config{
		Out:         "outfile",
		Cutoff:      scan.Cutoff,
		MaxGap:      scan.MaxGap,
		GapScale:    scan.GapScale,
		MAF:         scan.MAF,
		Threads:     scan.Threads,
		QueryWindow: scan.QueryWindow,
		SoftK:       scan.SoftK,
		MaxExtend:   scan.MaxExtend,
	}
}

// RegisterFlags binds every field to a flag on fs, using the current values
// as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "Optional TOML file with any of the settings below. Flags override it.")

	fs.StringVar(&c.HapPath, "hap", c.HapPath, "A hapfile with one row per haplotype, and one column per variant. Variants should be coded 0/1; missing as -9.")
	fs.StringVar(&c.RefPath, "ref", c.RefPath, "A hapfile with one row per haplotype, and one column per variant. Variants should be coded 0/1. This is the 'reference' population for XP-EHH calculations.")
	fs.StringVar(&c.MapPath, "map", c.MapPath, "A mapfile with one row per variant site. Formatted <chr#> <locusID> <genetic pos> <physical pos>.")
	fs.StringVar(&c.VCFPath, "vcf", c.VCFPath, "A phased VCF to use instead of --hap. Without --map, physical positions double as genetic positions.")
	fs.StringVar(&c.RefVCFPath, "vcf-ref", c.RefVCFPath, "A phased VCF for the XP-EHH reference population, instead of --ref.")
	fs.StringVar(&c.Out, "out", c.Out, "The basename for all output files.")
	fs.StringVar(&c.SQLitePath, "sqlite", c.SQLitePath, "Also write results to this SQLite database.")

	fs.BoolVar(&c.IHS, "ihs", c.IHS, "Set this flag to calculate unstandardized iHS.")
	fs.BoolVar(&c.XPEHH, "xpehh", c.XPEHH, "Set this flag to calculate XP-EHH.")
	fs.BoolVar(&c.Soft, "soft", c.Soft, "Set this flag to calculate the integrated H1, H12 and H2/H1 soft sweep statistics. With --ehh, reports them around one locus.")
	fs.StringVar(&c.Query, "ehh", c.Query, "Calculate EHH of the given locus ID, out to --ehh-win bp on either side.")

	fs.Float64Var(&c.Cutoff, "cutoff", c.Cutoff, "The EHH decay cutoff.")
	fs.IntVar(&c.MaxGap, "max-gap", c.MaxGap, "Maximum allowed gap in bp between two snps.")
	fs.IntVar(&c.GapScale, "gap-scale", c.GapScale, "Gap scale parameter in bp. If a gap is encountered between two snps > GAP_SCALE and < MAX_GAP, then the genetic distance is scaled by GAP_SCALE/GA.")
	fs.Float64Var(&c.MAF, "maf", c.MAF, "If a site has a MAF below this value, the program will not use it as a core snp.")
	fs.BoolVar(&c.Alt, "alt", c.Alt, "Set this flag to calculate homozygosity based on the sum of the squared haplotype frequencies in the observed data instead of using binomial coefficients.")
	fs.IntVar(&c.Threads, "threads", c.Threads, "The number of threads to spawn during the calculation. Partitions loci across threads.")
	fs.IntVar(&c.QueryWindow, "ehh-win", c.QueryWindow, "When --ehh is set, report EHH up to this many bp on either side of the locus.")
	fs.IntVar(&c.SoftK, "ehh1k", c.SoftK, "Specify K to compute for EHH1K.")
	fs.IntVar(&c.MaxExtend, "max-extend", c.MaxExtend, "Stop a walk, keeping what it has integrated, this many bp from the core.")

	fs.BoolVar(&c.KeepMissing, "keep-missing", c.KeepMissing, "Write a row for every locus, leaving uncomputed statistics empty.")
	fs.Uint64Var(&c.MemoryLimit, "memory-limit", c.MemoryLimit, "If nonzero, a heap limit in bytes enforced by a GC watchdog.")
}

// ParseTOMLConfigFromPath overlays the settings found in the TOML file at
// path onto c. Keys that match no setting are logged.
func ParseTOMLConfigFromPath(path string, c *Config) error {
	path = ehhscan.ExpandHome(path)

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	for _, key := range md.Undecoded() {
		log.Printf("Ignoring unrecognized setting %q in %s\n", key.String(), path)
	}

	c.ConfigPath = path
	c.expandPaths()

	return nil
}

func (c *Config) expandPaths() {
	for _, p := range []*string{&c.HapPath, &c.RefPath, &c.MapPath, &c.VCFPath, &c.RefVCFPath, &c.Out, &c.SQLitePath} {
		*p = ehhscan.ExpandHome(*p)
	}
}

// Mode reports which single scan the settings ask for.
func (c Config) Mode() (Mode, error) {
	modes := 0
	mode := ModeNone

	if c.IHS {
		modes++
		mode = ModeIHS
	}
	if c.XPEHH {
		modes++
		mode = ModeXPEHH
	}
	if c.Query != "" {
		modes++
		mode = ModeEHH
		if c.Soft {
			mode = ModeSoftEHH
		}
	} else if c.Soft {
		modes++
		mode = ModeSoft
	}

	if modes != 1 {
		return ModeNone, errors.New("you must specify exactly one of --ihs, --xpehh, --soft, or --ehh")
	}

	return mode, nil
}

// Scan returns the parameters the scanner needs.
func (c Config) Scan() ehh.Config {
	return ehh.Config{
		Cutoff:      c.Cutoff,
		MaxGap:      c.MaxGap,
		GapScale:    c.GapScale,
		MAF:         c.MAF,
		Alt:         c.Alt,
		Threads:     c.Threads,
		QueryWindow: c.QueryWindow,
		SoftK:       c.SoftK,
		MaxExtend:   c.MaxExtend,
	}
}

func (c Config) Validate() error {
	mode, err := c.Mode()
	if err != nil {
		return err
	}

	if err := c.Scan().Validate(); err != nil {
		return err
	}

	switch {
	case c.HapPath == "" && c.VCFPath == "":
		return errors.New("one of --hap or --vcf is required")
	case c.HapPath != "" && c.VCFPath != "":
		return errors.New("--hap and --vcf cannot be used together")
	case c.HapPath != "" && c.MapPath == "":
		return errors.New("--map is required with --hap")
	case c.Out == "":
		return errors.New("--out cannot be empty")
	}

	hasRef := c.RefPath != "" || c.RefVCFPath != ""
	if mode == ModeXPEHH {
		if !hasRef {
			return errors.New("XP-EHH needs a reference population: --ref or --vcf-ref")
		}
		if (c.HapPath != "") != (c.RefPath != "") {
			return errors.New("XP-EHH populations must both be hapfiles (--hap, --ref) or both be VCFs (--vcf, --vcf-ref)")
		}
	} else if hasRef {
		return errors.New("a reference population (--ref, --vcf-ref) is only used with --xpehh")
	}

	return nil
}

// OutputBase is the path prefix shared by every file a run writes.
func (c Config) OutputBase() string {
	mode, _ := c.Mode()

	base := c.Out
	switch mode {
	case ModeIHS:
		base += ".ihs"
	case ModeXPEHH:
		base += ".xpehh"
	case ModeSoft:
		return base + ".soft"
	case ModeEHH:
		base += ".ehh." + c.Query
	case ModeSoftEHH:
		return base + ".ehh." + c.Query + ".soft"
	}

	if c.Alt {
		base += ".alt"
	}

	return base
}
