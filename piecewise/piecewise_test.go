package piecewise_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkallberg/pwlin/piecewise"
	"github.com/pkallberg/pwlin/pointset"
)

func square(x ...float64) float64 { return x[0] * x[0] }

func planar(x ...float64) float64 { return x[0] + 2*x[1] }

func bowl(x ...float64) float64 { return x[0]*x[0] + x[1]*x[1] }

// TestBuild_UnivariateSquare covers the canonical 1-D scenario: breakpoints
// 0,1,2 over f(x)=x² give the segments y=x and y=3x−2.
func TestBuild_UnivariateSquare(t *testing.T) {
	f, err := piecewise.New(piecewise.Config{
		Function:    square,
		Breakpoints: []float64{0, 1, 2},
	})
	require.NoError(t, err)
	require.Equal(t, 2, f.Len())
	assert.Equal(t, 1, f.Dim())

	p0, err := f.Piece(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p0.Slopes[0], 1e-12)
	assert.InDelta(t, 0.0, p0.Intercept, 1e-12)

	p1, err := f.Piece(1)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, p1.Slopes[0], 1e-12)
	assert.InDelta(t, -2.0, p1.Intercept, 1e-12)

	y, err := f.Evaluate(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, y, 1e-12)

	y, err = f.Evaluate(1.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, y, 1e-12)

	_, err = f.Evaluate(3)
	assert.ErrorIs(t, err, piecewise.ErrOutsideDomain)
}

// TestBuild_ScalarPointsEquivalent verifies that 1-tuple Points take the
// same univariate path as Breakpoints.
func TestBuild_ScalarPointsEquivalent(t *testing.T) {
	f, err := piecewise.New(piecewise.Config{
		Function: square,
		Points:   []pointset.Point{{2}, {0}, {1}},
	})
	require.NoError(t, err)
	require.Equal(t, 2, f.Len())

	y, err := f.Evaluate(1.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, y, 1e-12)
}

// TestBuild_ExplicitSimplex2D covers the canonical 2-D scenario: fitting
// f(x,y)=x+2y over one triangle reconstructs slopes (1,2), intercept 0.
func TestBuild_ExplicitSimplex2D(t *testing.T) {
	f, err := piecewise.New(piecewise.Config{
		Function: planar,
		Simplices: [][]pointset.Point{
			{{0, 0}, {1, 0}, {0, 1}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, f.Len())

	p, err := f.Piece(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p.Slopes[0], 1e-10)
	assert.InDelta(t, 2.0, p.Slopes[1], 1e-10)
	assert.InDelta(t, 0.0, p.Intercept, 1e-10)

	for _, v := range [][2]float64{{0, 0}, {1, 0}, {0, 1}} {
		y, err := f.Evaluate(v[0], v[1])
		require.NoError(t, err)
		assert.InDelta(t, planar(v[0], v[1]), y, 1e-10, "vertex %v", v)
	}
}

// TestVertexExactness_AllModes checks interpolation exactness at every
// construction vertex for each of the three modes.
func TestVertexExactness_AllModes(t *testing.T) {
	tris := [][]pointset.Point{
		{{0, 0}, {1, 0}, {0, 1}},
		{{1, 0}, {0, 1}, {1, 1}},
	}
	vertices := []pointset.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	t.Run("FunctionAndPoints", func(t *testing.T) {
		pts := []pointset.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.5, 0.5}}
		f, err := piecewise.New(piecewise.Config{Function: bowl, Points: pts})
		require.NoError(t, err)
		for _, v := range pts {
			y, err := f.Evaluate(v...)
			require.NoError(t, err)
			assert.InDelta(t, bowl(v...), y, 1e-9, "vertex %v", v)
		}
	})

	t.Run("FunctionAndSimplices", func(t *testing.T) {
		f, err := piecewise.New(piecewise.Config{Function: bowl, Simplices: tris})
		require.NoError(t, err)
		for _, v := range vertices {
			y, err := f.Evaluate(v...)
			require.NoError(t, err)
			assert.InDelta(t, bowl(v...), y, 1e-9, "vertex %v", v)
		}
	})

	t.Run("SimplicesAndPieces", func(t *testing.T) {
		// Pieces fitted by hand to agree with bowl at each triangle's vertices.
		f, err := piecewise.New(piecewise.Config{
			Simplices: tris,
			Pieces: []piecewise.Piece{
				{Slopes: []float64{1, 1}, Intercept: 0},
				{Slopes: []float64{1, 1}, Intercept: 0},
			},
		})
		require.NoError(t, err)
		for _, v := range vertices {
			y, err := f.Evaluate(v...)
			require.NoError(t, err)
			assert.InDelta(t, bowl(v...), y, 1e-9, "vertex %v", v)
		}
	})
}

// TestEvaluate_SharedFacetConsistency verifies that a point on the edge
// shared by two triangles gets the same value from either piece.
func TestEvaluate_SharedFacetConsistency(t *testing.T) {
	f, err := piecewise.New(piecewise.Config{
		Function: bowl,
		Simplices: [][]pointset.Point{
			{{0, 0}, {1, 0}, {0, 1}},
			{{1, 0}, {0, 1}, {1, 1}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 2, f.Len())

	p0, err := f.Piece(0)
	require.NoError(t, err)
	p1, err := f.Piece(1)
	require.NoError(t, err)

	// Points along the shared edge from (1,0) to (0,1).
	for _, s := range []float64{0, 0.25, 0.5, 0.75, 1} {
		edge := []float64{1 - s, s}
		assert.InDelta(t, p0.At(edge), p1.At(edge), 1e-9, "edge point %v", edge)

		y, err := f.Evaluate(edge...)
		require.NoError(t, err)
		assert.InDelta(t, p0.At(edge), y, 1e-9, "engine agrees with both pieces at %v", edge)
	}
}

// TestBuild_DegenerateSimplex verifies fit-time rejection of collinear
// 2-D simplex vertices.
func TestBuild_DegenerateSimplex(t *testing.T) {
	_, err := piecewise.New(piecewise.Config{
		Function: bowl,
		Simplices: [][]pointset.Point{
			{{0, 0}, {1, 1}, {2, 2}},
		},
	})
	assert.ErrorIs(t, err, piecewise.ErrDegenerateSimplex)
}

// TestBuild_Rebuild verifies that a built instance rejects any further
// construction attempt.
func TestBuild_Rebuild(t *testing.T) {
	var f piecewise.Func
	err := f.Build(piecewise.Config{Function: square, Breakpoints: []float64{0, 1}})
	require.NoError(t, err)

	err = f.Build(piecewise.Config{Function: square, Breakpoints: []float64{0, 1, 2}})
	assert.ErrorIs(t, err, piecewise.ErrRebuild)
}

// TestBuild_RetryAfterFailure verifies that no partial state survives a
// failed construction: the same instance can be built again.
func TestBuild_RetryAfterFailure(t *testing.T) {
	var f piecewise.Func
	err := f.Build(piecewise.Config{Function: square})
	require.ErrorIs(t, err, piecewise.ErrConfiguration)

	err = f.Build(piecewise.Config{Function: square, Breakpoints: []float64{0, 1}})
	assert.NoError(t, err, "failed construction must not poison the instance")
}

// TestBuild_UnsupportedConfigurations exercises the mode dispatch
// rejections.
func TestBuild_UnsupportedConfigurations(t *testing.T) {
	tri := [][]pointset.Point{{{0, 0}, {1, 0}, {0, 1}}}
	cases := []struct {
		name string
		cfg  piecewise.Config
	}{
		{"Empty", piecewise.Config{}},
		{"FunctionOnly", piecewise.Config{Function: square}},
		{"BreakpointsOnly", piecewise.Config{Breakpoints: []float64{0, 1}}},
		{"FunctionPointsAndSimplices", piecewise.Config{
			Function: bowl, Points: []pointset.Point{{0, 0}}, Simplices: tri,
		}},
		{"FunctionAndPieces", piecewise.Config{
			Function: bowl, Simplices: tri,
			Pieces: []piecewise.Piece{{Slopes: []float64{1, 1}}},
		}},
		{"PointsAndBreakpoints", piecewise.Config{
			Function: square, Breakpoints: []float64{0, 1}, Points: []pointset.Point{{2}},
		}},
		{"PieceCountMismatch", piecewise.Config{
			Simplices: tri,
			Pieces:    []piecewise.Piece{{Slopes: []float64{1, 1}}, {Slopes: []float64{1, 1}}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := piecewise.New(tc.cfg)
			if !errors.Is(err, piecewise.ErrConfiguration) {
				t.Errorf("New(%s) error = %v; want ErrConfiguration", tc.name, err)
			}
		})
	}
}

// TestBuild_MalformedSimplexVertices verifies that vertex tuples whose
// arity disagrees with the simplex dimension fail construction instead
// of panicking on coordinate access.
func TestBuild_MalformedSimplexVertices(t *testing.T) {
	cases := []struct {
		name      string
		simplices [][]pointset.Point
	}{
		{"EmptyTuples1D", [][]pointset.Point{{{}, {}}}},
		{"EmptyTuple2D", [][]pointset.Point{{{0, 0}, {}, {0, 1}}}},
		{"RaggedVertex", [][]pointset.Point{{{0, 0}, {1}, {0, 1}}}},
		{"TooManyCoords1D", [][]pointset.Point{{{0, 0}, {1, 1}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f piecewise.Func
			require.NotPanics(t, func() {
				err := f.Build(piecewise.Config{Function: bowl, Simplices: tc.simplices})
				assert.ErrorIs(t, err, piecewise.ErrDimensionMismatch)
			})
		})
	}
}

// TestEvaluate_Errors covers arity mismatch, unbuilt instances and 2-D
// out-of-domain queries.
func TestEvaluate_Errors(t *testing.T) {
	var unbuilt piecewise.Func
	_, err := unbuilt.Evaluate(1)
	assert.ErrorIs(t, err, piecewise.ErrConfiguration)

	f, err := piecewise.New(piecewise.Config{
		Function:  bowl,
		Simplices: [][]pointset.Point{{{0, 0}, {1, 0}, {0, 1}}},
	})
	require.NoError(t, err)

	_, err = f.Evaluate(0.5)
	assert.ErrorIs(t, err, piecewise.ErrDimensionMismatch)

	_, err = f.Evaluate(2, 2)
	assert.ErrorIs(t, err, piecewise.ErrOutsideDomain)
}

// TestBounds verifies the cached bounding box and simplex accessors.
func TestBounds(t *testing.T) {
	f, err := piecewise.New(piecewise.Config{
		Function: bowl,
		Simplices: [][]pointset.Point{
			{{0, -1}, {2, 0}, {0, 3}},
		},
	})
	require.NoError(t, err)

	lo, hi := f.Bounds()
	assert.Equal(t, []float64{0, -1}, lo)
	assert.Equal(t, []float64{2, 3}, hi)

	s, err := f.Simplex(0)
	require.NoError(t, err)
	assert.Len(t, s, 3)
	v, err := f.Vertex(s[0])
	require.NoError(t, err)
	assert.Len(t, v, 2)

	_, err = f.Simplex(1)
	assert.ErrorIs(t, err, piecewise.ErrIndexOutOfRange)
	_, err = f.Piece(-1)
	assert.ErrorIs(t, err, piecewise.ErrIndexOutOfRange)
}

// TestBuild_SharedVerticesInterned verifies vertex dedup across simplices.
func TestBuild_SharedVerticesInterned(t *testing.T) {
	f, err := piecewise.New(piecewise.Config{
		Function: bowl,
		Simplices: [][]pointset.Point{
			{{0, 0}, {1, 0}, {0, 1}},
			{{1, 0}, {0, 1}, {1, 1}},
		},
	})
	require.NoError(t, err)

	s0, err := f.Simplex(0)
	require.NoError(t, err)
	s1, err := f.Simplex(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2}, []int(s0))
	assert.ElementsMatch(t, []int{1, 2, 3}, []int(s1), "shared corners reuse indices 1 and 2")
}

// TestBuild_ExplicitSegmentOrder verifies 1-D explicit simplices accept
// descending endpoint order and normalize it.
func TestBuild_ExplicitSegmentOrder(t *testing.T) {
	f, err := piecewise.New(piecewise.Config{
		Function: square,
		Simplices: [][]pointset.Point{
			{{1}, {0}},
			{{1}, {2}},
		},
	})
	require.NoError(t, err)

	y, err := f.Evaluate(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, y, 1e-12)
	y, err = f.Evaluate(1.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, y, 1e-12)
}
