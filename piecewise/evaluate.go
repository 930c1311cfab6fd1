package piecewise

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Evaluate applies the surrogate to a fully numeric point: a linear scan
// finds the first simplex containing it and applies that simplex's piece.
// Points on shared facets match whichever neighbor comes first; both
// pieces agree there by construction, so the result is well defined.
func (f *Func) Evaluate(x ...float64) (float64, error) {
	if !f.built {
		return 0, fmt.Errorf("Evaluate: function not built: %w", ErrConfiguration)
	}
	if len(x) != f.dim {
		return 0, fmt.Errorf("Evaluate: got %d arguments, want %d: %w",
			len(x), f.dim, ErrDimensionMismatch)
	}
	for i, s := range f.simplices {
		if f.contains(s, x) {
			return f.pieces[i].At(x), nil
		}
	}
	return 0, fmt.Errorf("Evaluate%v: %w", x, ErrOutsideDomain)
}

// contains tests simplex membership. 1-D segments are an interval check
// against the ascending endpoints. Higher dimensions solve for the
// point's barycentric coordinates: the (D+1)×(D+1) system with vertex
// columns and a row of ones, equated to the query augmented with 1.
// Coordinates no lower than −ContainTol count as inside, so a point
// numerically on a facet belongs to both adjoining simplices. A singular
// system means a degenerate simplex, which contains nothing; the scan
// moves on rather than failing.
func (f *Func) contains(s []int, x []float64) bool {
	if f.dim == 1 {
		lo, _ := f.points.At(s[0])
		hi, _ := f.points.At(s[1])
		return lo[0] <= x[0] && x[0] <= hi[0]
	}

	n := f.dim + 1
	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	for j, vi := range s {
		v, _ := f.points.At(vi)
		for i := 0; i < f.dim; i++ {
			a.Set(i, j, v[i])
		}
		a.Set(f.dim, j, 1)
	}
	for i := 0; i < f.dim; i++ {
		b.SetVec(i, x[i])
	}
	b.SetVec(f.dim, 1)

	var lambda mat.VecDense
	if err := lambda.SolveVec(a, b); err != nil {
		return false
	}
	for i := 0; i < n; i++ {
		if lambda.AtVec(i) < -f.opts.ContainTol {
			return false
		}
	}
	return true
}
