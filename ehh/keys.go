package ehh

import (
	"sort"

	"github.com/carbocation/ehhscan/hapdata"
)

// maxInitialKeyWidth caps the up-front key allocation. Walks that outrun it
// grow the arena.
const maxInitialKeyWidth = 256

// keyArena stores, for every haplotype, the alleles seen so far on a walk,
// starting with the core allele. Keys live in one nhaps x width block so a
// step never allocates.
type keyArena struct {
	nhaps int
	width int
	depth int
	buf   []byte
}

func alleleByte(a int8) byte {
	switch a {
	case 0:
		return '0'
	case 1:
		return '1'
	}
	// Sorts ahead of the digits.
	return '-'
}

// reset starts a new walk at core. width is the most loci the walk can visit,
// counting the core.
func (a *keyArena) reset(h *hapdata.Haplotypes, core, width int) {
	if width > maxInitialKeyWidth {
		width = maxInitialKeyWidth
	}
	if width < 1 {
		width = 1
	}

	a.nhaps, a.width, a.depth = h.NHaps, width, 0
	if n := a.nhaps * a.width; cap(a.buf) < n {
		a.buf = make([]byte, n)
	} else {
		a.buf = a.buf[:n]
	}

	a.extend(h, core)
}

// extend appends each haplotype's allele at locus to its key.
func (a *keyArena) extend(h *hapdata.Haplotypes, locus int) {
	if a.depth == a.width {
		a.grow()
	}

	for hap := 0; hap < a.nhaps; hap++ {
		a.buf[hap*a.width+a.depth] = alleleByte(h.At(hap, locus))
	}
	a.depth++
}

func (a *keyArena) grow() {
	width := 2 * a.width
	buf := make([]byte, a.nhaps*width)
	for hap := 0; hap < a.nhaps; hap++ {
		copy(buf[hap*width:], a.buf[hap*a.width:hap*a.width+a.depth])
	}
	a.buf, a.width = buf, width
}

func (a *keyArena) key(hap int) []byte {
	offset := hap * a.width
	return a.buf[offset : offset+a.depth]
}

// tally counts identical keys within one step.
type tally struct {
	index  map[string]int
	keys   []string
	counts []int
	order  []int
	sizes  []int
	total  int
}

func newTally() *tally {
	return &tally{index: make(map[string]int)}
}

func (t *tally) reset() {
	for k := range t.index {
		delete(t.index, k)
	}
	t.keys = t.keys[:0]
	t.counts = t.counts[:0]
	t.total = 0
}

func (t *tally) add(key []byte) {
	t.total++
	if i, ok := t.index[string(key)]; ok {
		t.counts[i]++
		return
	}

	k := string(key)
	t.index[k] = len(t.keys)
	t.keys = append(t.keys, k)
	t.counts = append(t.counts, 1)
}

func (t *tally) count(key string) int {
	if i, ok := t.index[key]; ok {
		return t.counts[i]
	}
	return 0
}

// groupSizes returns the group sizes in lexicographic key order, so that
// sums over them do not depend on the order haplotypes were added in. The
// slice is reused by the next call.
func (t *tally) groupSizes() []int {
	t.order = t.order[:0]
	for i := range t.keys {
		t.order = append(t.order, i)
	}
	sort.Slice(t.order, func(a, b int) bool {
		return t.keys[t.order[a]] < t.keys[t.order[b]]
	})

	t.sizes = t.sizes[:0]
	for _, i := range t.order {
		t.sizes = append(t.sizes, t.counts[i])
	}

	return t.sizes
}
