package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/ehhscan/config"
	_ "github.com/carbocation/ehhscan/compileinfoprint"
	"github.com/raulk/go-watchdog"
)

var client *storage.Client

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Computes EHH-based selection statistics (iHS, XP-EHH, H12) from phased haplotypes.")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Settings from a config file sit beneath anything given on the command
	// line, so the flags are parsed a second time over the file's values.
	if cfg.ConfigPath != "" {
		if err := config.ParseTOMLConfigFromPath(cfg.ConfigPath, &cfg); err != nil {
			log.Fatalln(err)
		}
		if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
			log.Fatalln(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		log.Println(err)
		flag.Usage()
		os.Exit(1)
	}

	if cfg.MemoryLimit > 0 {
		err, stopFn := watchdog.HeapDriven(cfg.MemoryLimit, 40, watchdog.NewAdaptivePolicy(0.5))
		if err != nil {
			log.Fatalln(err)
		}
		defer stopFn()
		log.Printf("Limiting the heap to %d bytes\n", cfg.MemoryLimit)
	}

	// Initialize the Google Storage client only if we're pointing to Google
	// Storage paths.
	for _, path := range []string{cfg.HapPath, cfg.RefPath, cfg.MapPath, cfg.VCFPath, cfg.RefVCFPath} {
		if strings.HasPrefix(path, "gs://") {
			var err error
			client, err = storage.NewClient(context.Background())
			if err != nil {
				log.Fatalln(err)
			}

			break
		}
	}

	if err := run(cfg, strings.Join(os.Args, " ")); err != nil {
		log.Fatalln(err)
	}
}
