package ehh

import (
	"errors"
	"fmt"
)

var (
	ErrMonomorphic   = errors.New("locus is monomorphic")
	ErrLowMAF        = errors.New("locus is below the MAF threshold")
	ErrLocusNotFound = errors.New("locus not found")
	ErrLocusCount    = errors.New("haplotypes and map disagree on the number of loci")
)

// LocusError ties a failure to the locus it happened at.
type LocusError struct {
	Locus    string
	Position int
	Err      error
}

func (e LocusError) Error() string {
	return fmt.Sprintf("Locus: %s, Position: %d, Message: %v", e.Locus, e.Position, e.Err)
}

func (e LocusError) Unwrap() error {
	return e.Err
}
