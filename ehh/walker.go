package ehh

import "github.com/carbocation/ehhscan/hapdata"

// Stop is the reason a walk ended.
type Stop int

const (
	Walking Stop = iota
	StopCutoff
	StopEdge
	StopGap
	StopMaxExtend
	StopMonomorphic
)

func (s Stop) String() string {
	switch s {
	case Walking:
		return "walking"
	case StopCutoff:
		return "cutoff"
	case StopEdge:
		return "edge"
	case StopGap:
		return "gap"
	case StopMaxExtend:
		return "max-extend"
	case StopMonomorphic:
		return "monomorphic"
	}
	return "unknown"
}

// Discarded reports whether the locus must be reported as Missing.
func (s Stop) Discarded() bool {
	return s == StopEdge || s == StopGap || s == StopMonomorphic
}

type direction int

const (
	left  direction = -1
	right direction = 1
)

var directions = [...]direction{left, right}

// GapScale is the factor applied to the genetic distance across a physical
// gap: 1 up to scale bp, scale/gap beyond.
func GapScale(gap, scale int) float64 {
	if gap > scale {
		return float64(scale) / float64(gap)
	}
	return 1
}

// stepper is the per-mode state a walk drives.
type stepper interface {
	// seed resets all state for a walk from core that can visit at most width
	// loci.
	seed(core, width int)

	// decaying reports whether the primary statistic is still above the
	// cutoff.
	decaying() bool

	// step extends to locus and integrates over dist genetic units, scaled by
	// scale. It returns false if a tracked group set came up empty.
	step(locus int, scale, dist float64) bool
}

type walker struct {
	m   *hapdata.Map
	cfg Config

	// gap is the physical gap that ended the last StopGap walk.
	gap int
}

func newWalker(m *hapdata.Map, cfg Config) *walker {
	return &walker{m: m, cfg: cfg}
}

// physical is the distance in bp from inner to outer, measured away from the
// core.
func (w *walker) physical(inner, outer int, dir direction) int {
	if dir == left {
		return w.m.Physical[inner] - w.m.Physical[outer]
	}
	return w.m.Physical[outer] - w.m.Physical[inner]
}

func (w *walker) genetic(inner, outer int, dir direction) float64 {
	if dir == left {
		return w.m.Genetic[inner] - w.m.Genetic[outer]
	}
	return w.m.Genetic[outer] - w.m.Genetic[inner]
}

// span bounds how many loci, core included, a walk from core can visit
// before hitting the edge or MaxExtend. Counting stops at the initial key
// width.
func (w *walker) span(core int, dir direction) int {
	n := 1
	for next := core + int(dir); next >= 0 && next < w.m.Len() && n < maxInitialKeyWidth; next += int(dir) {
		n++
		if w.physical(core, next, dir) >= w.cfg.MaxExtend {
			break
		}
	}
	return n
}

// walk moves outward from core one locus at a time until s stops decaying or
// a stop condition fires.
func (w *walker) walk(core int, dir direction, s stepper) Stop {
	s.seed(core, w.span(core, dir))

	cur := core
	for s.decaying() {
		next := cur + int(dir)
		if next < 0 || next >= w.m.Len() {
			return StopEdge
		}

		gap := w.physical(cur, next, dir)
		if gap > w.cfg.MaxGap {
			w.gap = gap
			return StopGap
		}

		if !s.step(next, GapScale(gap, w.cfg.GapScale), w.genetic(cur, next, dir)) {
			return StopMonomorphic
		}
		cur = next

		if w.physical(core, cur, dir) >= w.cfg.MaxExtend {
			return StopMaxExtend
		}
	}

	return StopCutoff
}
