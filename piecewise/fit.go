package piecewise

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// fitAll computes one affine piece per simplex, in simplex order, keeping
// the pieces slice parallel to the simplices.
func (f *Func) fitAll(fn Fn) error {
	f.pieces = make([]Piece, 0, len(f.simplices))
	for i, s := range f.simplices {
		var (
			p   Piece
			err error
		)
		if f.dim == 1 {
			p, err = f.fitSegment(s, fn)
		} else {
			p, err = f.fitHyperplane(s, fn)
		}
		if err != nil {
			return fmt.Errorf("Build: simplex %d: %w", i, err)
		}
		f.pieces = append(f.pieces, p)
	}
	return nil
}

// fitSegment derives slope and intercept from the two endpoint samples.
func (f *Func) fitSegment(s []int, fn Fn) (Piece, error) {
	lo, _ := f.points.At(s[0])
	hi, _ := f.points.At(s[1])
	x1, x2 := lo[0], hi[0]
	if x1 == x2 {
		return Piece{}, fmt.Errorf("segment [%g, %g]: %w", x1, x2, ErrDegenerateSimplex)
	}
	y1, y2 := fn(x1), fn(x2)
	slope := (y2 - y1) / (x2 - x1)
	return Piece{Slopes: []float64{slope}, Intercept: y1 - slope*x1}, nil
}

// fitHyperplane solves the augmented homogeneous system for the unique
// hyperplane through the D+1 sampled vertices in (input, output) space.
// Each vertex contributes the equation (x₁..x_D, fn(x), 1)·n = 0; one
// extra equation pins n's output coefficient to −1, after which the
// slopes and intercept can be read straight off n. A singular system
// means affinely dependent vertices. Near-singular systems are treated
// the same: a surrogate fitted from one would be numerically meaningless.
func (f *Func) fitHyperplane(s []int, fn Fn) (Piece, error) {
	d := f.dim
	n := d + 2
	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	for i, vi := range s {
		v, _ := f.points.At(vi)
		for j := 0; j < d; j++ {
			a.Set(i, j, v[j])
		}
		a.Set(i, d, fn(v...))
		a.Set(i, d+1, 1)
	}
	a.Set(d+1, d, -1)
	b.SetVec(d+1, 1)

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return Piece{}, fmt.Errorf("hyperplane system: %w", ErrDegenerateSimplex)
	}

	slopes := make([]float64, d)
	for j := range slopes {
		slopes[j] = x.AtVec(j)
	}
	return Piece{Slopes: slopes, Intercept: x.AtVec(d + 1)}, nil
}
