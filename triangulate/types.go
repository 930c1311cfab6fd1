// Package triangulate defines the simplex type and tunable options for
// the triangulation routines.
package triangulate

// Simplex references D+1 vertices of a point cloud by index.
type Simplex []int

// Clone returns an independent copy of s.
func (s Simplex) Clone() Simplex {
	out := make(Simplex, len(s))
	copy(out, s)
	return out
}

// defaultEps is the hull epsilon used when no options are supplied,
// matching the tolerance of the underlying quickhull routine.
const defaultEps = 1e-12

// lowerFaceEps separates downward-facing hull faces from vertical ones on
// the unit normal's z component.
const lowerFaceEps = 1e-9

// insideEps is the relative slack of the circumsphere inclusion test used
// by the incremental triangulation.
const insideEps = 1e-12

// Options tunes the Delaunay routines.
type Options struct {
	// Eps is the merge/coplanarity tolerance handed to the convex hull
	// step of the planar case. Must be > 0.
	Eps float64
}

// DefaultOptions returns the recommended tolerances.
func DefaultOptions() Options {
	return Options{Eps: defaultEps}
}
