package ehh

// colorTracker labels the haplotypes of one allele class as they split
// apart along a query. A group that survives intact keeps its color,
// singletons get -1, and when a family splits its majority keeps the family
// color while the rest draw new ones.
type colorTracker struct {
	grid    [][]int
	current int
}

// newColorTracker makes a rows x cols grid. The core column starts at 0.
func newColorTracker(rows, cols int) *colorTracker {
	grid := make([][]int, rows)
	for i := range grid {
		grid[i] = make([]int, cols)
	}
	return &colorTracker{grid: grid}
}

// restart resets the color counter before walking the other direction.
func (c *colorTracker) restart() {
	c.current = 0
}

// fill colors column col from column prev. keys[row] is the extended key of
// each row's haplotype and count reports how many rows share a key.
//
// The majority marker is shared by every family in the column, so once one
// family records its majority no later family can resolve an exact half
// split in its own favor.
func (c *colorTracker) fill(col, prev int, keys []string, count func(string) int) {
	seen := make(map[string]int)
	mostCommon, haveMostCommon := "", false

	for row, key := range keys {
		n := count(key)
		if n == 1 {
			c.grid[row][col] = -1
			continue
		}

		if !c.split(row, n, prev, key, &mostCommon, &haveMostCommon) {
			c.grid[row][col] = c.grid[row][prev]
			continue
		}

		if haveMostCommon && key == mostCommon {
			c.grid[row][col] = c.grid[row][prev]
		} else if color, ok := seen[key]; ok {
			c.grid[row][col] = color
		} else {
			c.current++
			seen[key] = c.current
			c.grid[row][col] = c.current
		}
	}
}

// split reports whether the family row came from broke apart at this step,
// recording key as the majority group when it qualifies.
func (c *colorTracker) split(row, n, prev int, key string, mostCommon *string, haveMostCommon *bool) bool {
	family := c.grid[row][prev]

	familySize := 0
	for r := range c.grid {
		if c.grid[r][prev] == family {
			familySize++
		}
	}

	if familySize == n {
		return false
	}

	half := float64(familySize) / 2
	if float64(n) > half || (!*haveMostCommon && float64(n) == half) {
		*mostCommon, *haveMostCommon = key, true
	}

	return true
}
