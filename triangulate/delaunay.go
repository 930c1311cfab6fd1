package triangulate

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	quickhull "github.com/markus-wa/quickhull-go/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/pkallberg/pwlin/pointset"
)

// Delaunay partitions the convex hull of a D≥2 point cloud into
// simplices, each a (D+1)-tuple of indices into the input slice. The
// planar case delegates to a 3-D convex hull of the paraboloid lift;
// higher dimensions use incremental Bowyer–Watson insertion. Vertex
// indices within each simplex are sorted ascending and the simplex order
// is deterministic for a fixed input.
func Delaunay(points []pointset.Point, opts *Options) ([]Simplex, error) {
	o := DefaultOptions()
	if opts != nil && opts.Eps > 0 {
		o = *opts
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("Delaunay: empty point cloud: %w", ErrTooFewPoints)
	}
	dim := len(points[0])
	if dim < 2 {
		return nil, fmt.Errorf("Delaunay: dimension %d: %w", dim, ErrBadDimension)
	}
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("Delaunay: point %d has %d coordinates, want %d: %w",
				i, len(p), dim, ErrDimensionMismatch)
		}
	}
	if len(points) < dim+1 {
		return nil, fmt.Errorf("Delaunay: %d points cannot span a %d-simplex: %w",
			len(points), dim, ErrTooFewPoints)
	}

	// A cloud of exactly D+1 points is its own triangulation; neither
	// backend accepts it (the lift of a bare triangle is planar in 3-D).
	if len(points) == dim+1 {
		if !affinelyIndependent(points, dim) {
			return nil, fmt.Errorf("Delaunay: %d affinely dependent points: %w",
				dim+1, ErrDegenerateCloud)
		}
		s := make(Simplex, dim+1)
		for i := range s {
			s[i] = i
		}
		return []Simplex{s}, nil
	}

	if dim == 2 {
		return delaunayPlanar(points, o.Eps)
	}
	return bowyerWatson(points, dim)
}

// affinelyIndependent reports whether the D+1 points span dimension D.
// Exact singularity only; near-singular clouds are accepted here and
// rejected later by the fitting stage.
func affinelyIndependent(points []pointset.Point, dim int) bool {
	m := mat.NewDense(dim, dim, nil)
	v0 := points[0]
	for i := 1; i <= dim; i++ {
		for j := 0; j < dim; j++ {
			m.Set(i-1, j, points[i][j]-v0[j])
		}
	}
	return mat.Det(m) != 0
}

// delaunayPlanar lifts the 2-D cloud onto the paraboloid z = x²+y², takes
// the 3-D convex hull and keeps the downward-facing triangles, which
// project to exactly the Delaunay triangulation of the cloud.
func delaunayPlanar(points []pointset.Point, eps float64) ([]Simplex, error) {
	cloud := make([]r3.Vector, len(points))
	for i, p := range points {
		cloud[i] = r3.Vector{X: p[0], Y: p[1], Z: p[0]*p[0] + p[1]*p[1]}
	}

	hull := new(quickhull.QuickHull).ConvexHull(cloud, true, true, eps)
	idx := hull.Indices
	if len(idx) < 3 || len(idx)%3 != 0 {
		return nil, fmt.Errorf("Delaunay: inconsistent hull output (%d indices): %w",
			len(idx), ErrDegenerateCloud)
	}

	var tris []Simplex
	for t := 0; t < len(idx); t += 3 {
		a, b, c := cloud[idx[t]], cloud[idx[t+1]], cloud[idx[t+2]]
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Norm() == 0 {
			continue
		}
		// Outward normals point down exactly on the lower hull.
		if n.Normalize().Z < -lowerFaceEps {
			tri := Simplex{idx[t], idx[t+1], idx[t+2]}
			sort.Ints(tri)
			tris = append(tris, tri)
		}
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("Delaunay: no lower hull faces, input is collinear: %w",
			ErrDegenerateCloud)
	}
	return tris, nil
}

// bwSimplex is a live simplex of the incremental triangulation together
// with its circumsphere.
type bwSimplex struct {
	verts  []int
	center []float64
	rad2   float64
}

// circumContains reports whether p lies inside the circumsphere, with a
// small relative slack so cospherical points count as inside.
func (s *bwSimplex) circumContains(p []float64) bool {
	var d2 float64
	for j, cj := range s.center {
		d := p[j] - cj
		d2 += d * d
	}
	return d2 <= s.rad2*(1+insideEps)
}

// newBWSimplex computes the circumsphere of the given vertices by solving
// the D×D linear system 2(vᵢ−v₀)·c = |vᵢ|²−|v₀|². A singular system means
// affinely dependent vertices and is reported as an error.
func newBWSimplex(work [][]float64, verts []int, dim int) (*bwSimplex, error) {
	v0 := work[verts[0]]
	a := mat.NewDense(dim, dim, nil)
	b := mat.NewVecDense(dim, nil)
	for i := 1; i <= dim; i++ {
		vi := work[verts[i]]
		var rhs float64
		for j := 0; j < dim; j++ {
			a.Set(i-1, j, 2*(vi[j]-v0[j]))
			rhs += vi[j]*vi[j] - v0[j]*v0[j]
		}
		b.SetVec(i-1, rhs)
	}

	var c mat.VecDense
	if err := c.SolveVec(a, b); err != nil {
		return nil, err
	}

	center := make([]float64, dim)
	var r2 float64
	for j := 0; j < dim; j++ {
		center[j] = c.AtVec(j)
		d := center[j] - v0[j]
		r2 += d * d
	}
	return &bwSimplex{verts: append([]int(nil), verts...), center: center, rad2: r2}, nil
}

// bowyerWatson runs incremental Delaunay insertion for D≥3: points are
// added one at a time into an enclosing super-simplex, every simplex whose
// circumsphere contains the new point is removed, and the cavity boundary
// is re-joined to the point. Simplices touching the super-simplex are
// discarded at the end.
func bowyerWatson(points []pointset.Point, dim int) ([]Simplex, error) {
	n := len(points)
	work := make([][]float64, 0, n+dim+1)
	for _, p := range points {
		work = append(work, []float64(p))
	}

	// Enclosing super-simplex: a corner well below the bounding box plus
	// one far vertex per axis.
	lo := append([]float64(nil), points[0]...)
	hi := append([]float64(nil), points[0]...)
	for _, p := range points[1:] {
		for j, v := range p {
			lo[j] = math.Min(lo[j], v)
			hi[j] = math.Max(hi[j], v)
		}
	}
	scale := 1.0
	for j := range lo {
		scale = math.Max(scale, hi[j]-lo[j])
	}
	// Far enough that no final circumsphere reaches a super vertex.
	big := 1000 * scale
	v0 := make([]float64, dim)
	for j := range v0 {
		v0[j] = (lo[j]+hi[j])/2 - big
	}
	work = append(work, v0)
	for i := 0; i < dim; i++ {
		v := append([]float64(nil), v0...)
		v[i] += 3 * big * float64(dim)
		work = append(work, v)
	}

	super := make([]int, dim+1)
	for i := range super {
		super[i] = n + i
	}
	root, err := newBWSimplex(work, super, dim)
	if err != nil {
		return nil, fmt.Errorf("Delaunay: super-simplex circumsphere: %w", ErrDegenerateCloud)
	}
	live := []*bwSimplex{root}

	for pi := 0; pi < n; pi++ {
		p := work[pi]
		var bad, keep []*bwSimplex
		for _, s := range live {
			if s.circumContains(p) {
				bad = append(bad, s)
			} else {
				keep = append(keep, s)
			}
		}
		if len(bad) == 0 {
			// Unreachable for a point inside the super-simplex unless the
			// cloud defeated the tolerances.
			return nil, fmt.Errorf("Delaunay: point %d outside every circumsphere: %w",
				pi, ErrDegenerateCloud)
		}

		// Cavity boundary: facets owned by exactly one removed simplex,
		// collected in first-seen order for determinism.
		counts := make(map[string]int)
		var facets [][]int
		var keys []string
		for _, s := range bad {
			for drop := 0; drop <= dim; drop++ {
				f := make([]int, 0, dim)
				for k, v := range s.verts {
					if k != drop {
						f = append(f, v)
					}
				}
				sort.Ints(f)
				key := facetKey(f)
				if _, seen := counts[key]; !seen {
					facets = append(facets, f)
					keys = append(keys, key)
				}
				counts[key]++
			}
		}
		for i, f := range facets {
			if counts[keys[i]] != 1 {
				continue
			}
			verts := append(append([]int(nil), f...), pi)
			ns, err := newBWSimplex(work, verts, dim)
			if err != nil {
				return nil, fmt.Errorf("Delaunay: degenerate simplex at point %d: %w",
					pi, ErrDegenerateCloud)
			}
			keep = append(keep, ns)
		}
		live = keep
	}

	var out []Simplex
	for _, s := range live {
		touchesSuper := false
		for _, v := range s.verts {
			if v >= n {
				touchesSuper = true
				break
			}
		}
		if touchesSuper {
			continue
		}
		sx := Simplex(append([]int(nil), s.verts...))
		sort.Ints(sx)
		out = append(out, sx)
	}
	if len(out) == 0 {
		// Every simplex leaned on the super-simplex: the cloud spans a
		// lower-dimensional subspace.
		return nil, fmt.Errorf("Delaunay: cloud spans fewer than %d dimensions: %w",
			dim, ErrDegenerateCloud)
	}
	return out, nil
}

// facetKey encodes a sorted vertex tuple for cavity-boundary counting.
func facetKey(f []int) string {
	var b strings.Builder
	for i, v := range f {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
