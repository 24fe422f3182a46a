package homozygosity

import "github.com/BenLubar/memoize"

var memoizedPairs = memoize.Memoize(pairs)

// Pairs returns n choose 2 as a float64. Pairs is safe to call from
// concurrent goroutines.
func Pairs(n int) float64 {
	return memoizedPairs.(func(int) float64)(n)
}

func pairs(n int) float64 {
	if n < 2 {
		return 0
	}
	return float64(n) * float64(n-1) / 2
}
