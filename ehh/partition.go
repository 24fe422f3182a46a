package ehh

// Block is the half-open range of loci [First, Last) owned by one worker.
type Block struct {
	First int
	Last  int
}

func (b Block) Len() int {
	return b.Last - b.First
}

// Partition splits n loci into threads contiguous blocks whose sizes differ
// by at most one, larger blocks first. Blocks are empty when n < threads.
func Partition(n, threads int) []Block {
	if threads < 1 {
		threads = 1
	}

	size, extra := n/threads, n%threads

	blocks := make([]Block, threads)
	first := 0
	for i := range blocks {
		last := first + size
		if i < extra {
			last++
		}
		blocks[i] = Block{First: first, Last: last}
		first = last
	}

	return blocks
}
