// Package triangulate partitions point clouds into simplices: sorted
// consecutive segments in one dimension, Delaunay simplicial complexes in
// two or more.
//
// What:
//
//   - Segments sorts 1-D breakpoints, drops exact duplicates and emits one
//     segment per consecutive pair. No geometry library is involved; an
//     interval partition needs none.
//   - Delaunay covers the convex hull of a D≥2 cloud with non-overlapping
//     simplices. The planar case lifts the points onto the paraboloid
//     z = x² + y² and reads the triangulation off the downward-facing
//     faces of the 3-D convex hull. Dimensions three and up use an
//     incremental Bowyer–Watson insertion with circumsphere tests.
//
// Why:
//
//   - Piecewise-linear surrogates need one affine piece per simplex; the
//     caller supplies breakpoints, this package supplies the partition.
//
// Complexity:
//
//   - Segments: O(n log n).
//   - Delaunay (D=2): O(n log n) expected via the hull.
//   - Delaunay (D≥3): O(n · s) where s is the running simplex count.
//
// Errors:
//
//   - ErrTooFewPoints: fewer than 2 (1-D) or D+1 (D≥2) distinct points.
//   - ErrDegenerateCloud: affinely dependent input; no full-dimensional
//     partition exists.
//   - ErrDimensionMismatch: ragged coordinate tuples.
//   - ErrBadDimension: Delaunay invoked on dimension < 2 (use Segments).
//
// All errors are construction-fatal for the caller: a partition either
// covers the hull or the input is rejected, never silently patched.
package triangulate
