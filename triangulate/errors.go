package triangulate

import "errors"

// Sentinel errors for triangulation. All are construction-fatal: callers
// must not fall back to a partial partition.
var (
	// ErrTooFewPoints indicates the cloud cannot span a single simplex.
	ErrTooFewPoints = errors.New("triangulate: not enough distinct points")
	// ErrDegenerateCloud indicates affinely dependent input (collinear,
	// coplanar, ...) for which no full-dimensional partition exists.
	ErrDegenerateCloud = errors.New("triangulate: point cloud is degenerate")
	// ErrDimensionMismatch indicates coordinate tuples of differing arity.
	ErrDimensionMismatch = errors.New("triangulate: point dimension mismatch")
	// ErrBadDimension indicates Delaunay was invoked below dimension 2.
	ErrBadDimension = errors.New("triangulate: dimension must be at least 2 (use Segments for 1-D)")
)
