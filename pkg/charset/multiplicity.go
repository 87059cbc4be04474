package charset

import "sort"

// Multiplicities counts how often each distinct byte occurs in b and returns
// the counts alone, sorted ascending. The byte values themselves are dropped:
// the number of distinct arrangements of a multiset depends only on them.
func Multiplicities(b []byte) []int {
	var counts [256]int
	for _, c := range b {
		counts[c]++
	}

	out := make([]int, 0, len(b))
	for _, n := range counts {
		if n > 0 {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}
