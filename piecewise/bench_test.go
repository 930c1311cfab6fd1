package piecewise_test

import (
	"math"
	"testing"

	"github.com/pkallberg/pwlin/mesh"
	"github.com/pkallberg/pwlin/piecewise"
)

// BenchmarkEvaluate1D measures interval location plus one affine
// evaluation on a 100-segment univariate surrogate.
func BenchmarkEvaluate1D(b *testing.B) {
	xs, err := mesh.Linspace(0, 10, 101)
	if err != nil {
		b.Fatal(err)
	}
	f, err := piecewise.New(piecewise.Config{
		Function:    func(x ...float64) float64 { return math.Sin(x[0]) },
		Breakpoints: xs,
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Evaluate(float64(i%100)/10 + 0.05); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEvaluate2D measures barycentric location over a triangulated
// 6×6 lattice.
func BenchmarkEvaluate2D(b *testing.B) {
	pts, err := mesh.Grid([]float64{0, 0}, []float64{1, 1}, 6)
	if err != nil {
		b.Fatal(err)
	}
	f, err := piecewise.New(piecewise.Config{
		Function: func(x ...float64) float64 { return x[0]*x[0] + x[1]*x[1] },
		Points:   pts,
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Evaluate(0.37, 0.61); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuild2D measures the full mode-1 pipeline: intern, Delaunay,
// fit, for a 5×5 lattice.
func BenchmarkBuild2D(b *testing.B) {
	pts, err := mesh.Grid([]float64{0, 0}, []float64{1, 1}, 5)
	if err != nil {
		b.Fatal(err)
	}
	bowl := func(x ...float64) float64 { return x[0]*x[0] + x[1]*x[1] }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := piecewise.New(piecewise.Config{Function: bowl, Points: pts}); err != nil {
			b.Fatal(err)
		}
	}
}
