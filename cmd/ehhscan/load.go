package main

import (
	"fmt"

	"github.com/carbocation/ehhscan/config"
	"github.com/carbocation/ehhscan/hapdata"
	"github.com/carbocation/pfx"
)

// loadPopulation reads either a hapfile and its map, or a VCF whose genetic
// positions are optionally taken from a map.
func loadPopulation(hapPath, vcfPath, mapPath string) (*hapdata.Haplotypes, *hapdata.Map, error) {
	if vcfPath == "" {
		h, err := hapdata.LoadHaplotypes(hapPath, client)
		if err != nil {
			return nil, nil, err
		}

		m, err := hapdata.LoadMap(mapPath, h.NLoci, client)
		if err != nil {
			return nil, nil, err
		}

		return h, m, nil
	}

	h, m, err := hapdata.LoadVCF(vcfPath, client)
	if err != nil {
		return nil, nil, err
	}

	if mapPath == "" {
		return h, m, nil
	}

	genetic, err := hapdata.LoadMap(mapPath, h.NLoci, client)
	if err != nil {
		return nil, nil, err
	}
	for i := range m.Physical {
		if genetic.Physical[i] != m.Physical[i] {
			return nil, nil, pfx.Err(fmt.Errorf("%s locus %d is at %d but %s has it at %d", mapPath, i+1, genetic.Physical[i], vcfPath, m.Physical[i]))
		}
	}
	m.Genetic = genetic.Genetic

	return h, m, nil
}

// loadReference reads the XP-EHH reference population, which must share the
// focal population's loci.
func loadReference(cfg config.Config, m *hapdata.Map) (*hapdata.Haplotypes, error) {
	if cfg.RefVCFPath == "" {
		return hapdata.LoadHaplotypes(cfg.RefPath, client)
	}

	ref, refMap, err := hapdata.LoadVCF(cfg.RefVCFPath, client)
	if err != nil {
		return nil, err
	}
	if refMap.Len() != m.Len() {
		return nil, pfx.Err(fmt.Errorf("%s has %d loci but the focal population has %d", cfg.RefVCFPath, refMap.Len(), m.Len()))
	}
	for i := range m.Physical {
		if refMap.Physical[i] != m.Physical[i] {
			return nil, pfx.Err(fmt.Errorf("%s locus %d is at %d but the focal population has it at %d", cfg.RefVCFPath, i+1, refMap.Physical[i], m.Physical[i]))
		}
	}

	return ref, nil
}
