package homozygosity

// Triplet holds the soft-sweep statistics of one partition.
type Triplet struct {
	H1   float64
	H12  float64
	H2H1 float64
}

// Soft computes H1, H12 and H2/H1 from group sizes using pairwise
// homozygosity. H12 pools the two most frequent groups into one. H2H1 is 0
// when H1 is 0.
func Soft(sizes []int, total int) Triplet {
	denominator := Pairs(total)
	if denominator == 0 {
		return Triplet{}
	}

	f := func(k int) float64 {
		return pairs(k) / denominator
	}

	var h1 float64
	first, second := 0, 0
	for _, s := range sizes {
		h1 += f(s)

		if s > first {
			second = first
			first = s
		} else if s > second {
			second = s
		}
	}

	t := Triplet{
		H1:  h1,
		H12: h1 - f(first) - f(second) + f(first+second),
	}
	if h1 > 0 {
		t.H2H1 = (h1 - f(first)) / h1
	}

	return t
}
