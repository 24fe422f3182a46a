package ehhscan

// Map columns in the map file to their positions
const (
	Chromosome int = iota
	LocusID
	GeneticPosition
	PhysicalPosition
)

type MapRow struct {
	Chromosome       string
	LocusID          string
	GeneticPosition  float64 // Usually centimorgans
	PhysicalPosition int     // Base pairs
}
