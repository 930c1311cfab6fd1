package triangulate

import (
	"fmt"
	"sort"
)

// Segments partitions 1-D breakpoints into consecutive segments. The
// input is copied, sorted ascending and deduplicated; the returned
// simplices are (i, i+1) index pairs into the returned breakpoint slice.
// At least two distinct breakpoints are required.
func Segments(xs []float64) ([]Simplex, []float64, error) {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	// Drop exact duplicates in place.
	uniq := sorted[:0]
	for i, x := range sorted {
		if i == 0 || x != uniq[len(uniq)-1] {
			uniq = append(uniq, x)
		}
	}
	if len(uniq) < 2 {
		return nil, nil, fmt.Errorf("Segments: %d distinct breakpoints, need at least 2: %w",
			len(uniq), ErrTooFewPoints)
	}

	segs := make([]Simplex, 0, len(uniq)-1)
	for i := 0; i+1 < len(uniq); i++ {
		segs = append(segs, Simplex{i, i + 1})
	}
	return segs, uniq, nil
}
