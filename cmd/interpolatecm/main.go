package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"

	"github.com/carbocation/ehhscan"
	_ "github.com/carbocation/ehhscan/compileinfoprint"
)

func main() {
	// Consumes an ehhscan .map file and a recombination map with chr,
	// basepair, and centiMorgan columns. Fills the genetic position of each
	// locus by linear interpolation over the recombination map.
	var lociFile, recombFile, outFile string
	var cols columns
	flag.StringVar(&lociFile, "map", "", "ehhscan .map file whose genetic position column should be filled in.")
	flag.StringVar(&recombFile, "recomb", "", "Recombination map. Expected to be headerless ('#' comments are allowed). By default, column 0 is chr, column 3 is basepair, and column 2 is the centiMorgan value. The delimiter is detected.")
	flag.IntVar(&cols.chr, "chr", 0, "0-based column of the recombination map that contains the chromosome")
	flag.IntVar(&cols.bp, "bp", 3, "0-based column of the recombination map that contains the basepair")
	flag.IntVar(&cols.cm, "cm", 2, "0-based column of the recombination map that contains the centiMorgan value")
	flag.StringVar(&outFile, "out", "", "output file. If not specified, writes to stdout")
	flag.Parse()

	if lociFile == "" || recombFile == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Writer
	var outWriter io.WriteCloser
	if outFile == "" {
		outWriter = os.Stdout
	} else {
		var err error
		outWriter, err = os.Create(outFile)
		if err != nil {
			log.Fatalln(err)
		}
	}
	defer outWriter.Close()

	// Recombination map
	recombReader, err := ehhscan.OpenInput(recombFile, nil)
	if err != nil {
		log.Fatalln(err)
	}
	defer recombReader.Close()

	recomb, err := loadRecombinationMap(recombReader, cols)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("Loaded %d recombination map positions\n", len(recomb.points))

	// Loci
	loci, err := ehhscan.OpenMap(lociFile, nil)
	if err != nil {
		log.Fatalln(err)
	}
	defer loci.Close()

	// Process
	w := bufio.NewWriter(outWriter)
	n, err := interpolateMap(loci, recomb, w)
	if err != nil {
		log.Fatalln(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalln(err)
	}
	log.Printf("Interpolated %d loci\n", n)
}
