package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/carbocation/ehhscan/compileinfoprint"
	"github.com/carbocation/ehhscan/norm"
)

type flagSlice []string

func (f *flagSlice) String() string {
	return strings.Join(*f, ",")
}

func (f *flagSlice) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func main() {
	var files flagSlice
	var ihs, xpehh, soft bool
	var bins int
	flag.Var(&files, "files", "An unstandardized .out file from ehhscan. Pass once per file; all files are standardized together, and each gets its own .norm file.")
	flag.BoolVar(&ihs, "ihs", false, "Standardize iHS scores within derived allele frequency bins.")
	flag.BoolVar(&xpehh, "xpehh", false, "Standardize XP-EHH scores genome-wide.")
	flag.BoolVar(&soft, "soft", false, "Standardize H12 scores genome-wide.")
	flag.IntVar(&bins, "bins", norm.DefaultBins, "The number of frequency bins used with --ihs.")
	flag.Parse()

	modes := 0
	for _, set := range []bool{ihs, xpehh, soft} {
		if set {
			modes++
		}
	}
	if modes != 1 || len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Pass exactly one of --ihs, --xpehh or --soft, and at least one --files.")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var err error
	switch {
	case ihs:
		err = normalizeIHS(files, bins)
	case xpehh:
		err = normalizeXPEHH(files)
	case soft:
		err = normalizeSoft(files)
	}
	if err != nil {
		log.Fatalln(err)
	}
}
