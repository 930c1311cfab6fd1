package mesh

import (
	"fmt"

	"github.com/pkallberg/pwlin/pointset"
)

// Linspace returns n evenly spaced breakpoints covering [lo, hi], both
// endpoints included and emitted exactly.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("Linspace(n=%d): %w", n, ErrBadCount)
	}
	if hi <= lo {
		return nil, fmt.Errorf("Linspace(lo=%g, hi=%g): %w", lo, hi, ErrBadBounds)
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi // exact endpoint, no step accumulation drift
	return out, nil
}

// Grid returns the row-major lattice of n breakpoints per axis over the
// box [lo, hi], nᴰ points in total with the last axis varying fastest.
func Grid(lo, hi []float64, n int) ([]pointset.Point, error) {
	if len(lo) != len(hi) {
		return nil, fmt.Errorf("Grid: len(lo)=%d, len(hi)=%d: %w", len(lo), len(hi), ErrDimensionMismatch)
	}
	dim := len(lo)
	if dim == 0 {
		return nil, fmt.Errorf("Grid: empty bounds: %w", ErrDimensionMismatch)
	}

	axes := make([][]float64, dim)
	total := 1
	for j := 0; j < dim; j++ {
		axis, err := Linspace(lo[j], hi[j], n)
		if err != nil {
			return nil, fmt.Errorf("Grid: axis %d: %w", j, err)
		}
		axes[j] = axis
		total *= n
	}

	out := make([]pointset.Point, 0, total)
	odo := make([]int, dim)
	for {
		p := make(pointset.Point, dim)
		for j, k := range odo {
			p[j] = axes[j][k]
		}
		out = append(out, p)

		// Advance the odometer, last axis fastest.
		j := dim - 1
		for ; j >= 0; j-- {
			odo[j]++
			if odo[j] < n {
				break
			}
			odo[j] = 0
		}
		if j < 0 {
			return out, nil
		}
	}
}
