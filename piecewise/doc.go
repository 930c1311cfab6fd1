// Package piecewise approximates a black-box scalar function of D
// continuous inputs by a piecewise-linear surrogate: one affine piece per
// simplex of a partition of the input domain, exact at every vertex.
//
// What:
//
//   - Func owns a deduplicated vertex registry, an ordered simplex list
//     and the parallel list of affine pieces; all three are populated
//     once, by exactly one of three construction modes:
//     1. function + breakpoints: triangulate the cloud, fit each simplex;
//     2. function + explicit simplices: fit each simplex, no triangulation;
//     3. explicit simplices + explicit pieces: nothing fitted.
//   - Evaluate locates the simplex containing a numeric point (linear
//     scan, barycentric containment with an absolute −1e-8 slack so that
//     shared facets belong to both neighbors) and applies its piece.
//   - Call routes a mixed concrete/symbolic argument tuple: all-concrete
//     tuples are evaluated immediately; anything else mints (and
//     memoizes, per tuple identity) an opaque deferred node that a later
//     linearization step can bind to a surrogate variable.
//
// Why linear algebra instead of geometry:
//
//   - The unique affine piece through D+1 vertices is read off a
//     (D+2)×(D+2) homogeneous system that pins the output coefficient to
//     −1; the same formulation works for every dimension, so only the
//     1-D case is special-cased (plain slope/intercept).
//
// Complexity:
//
//   - Construction: triangulation + one (D+2)³ solve per simplex.
//   - Evaluate: O(s) simplex scans, each a (D+1)³ solve. Simplex counts
//     are bounded by hand-curated breakpoint grids, so a spatial index is
//     deliberately left out.
//
// Concurrency:
//
//   - After construction Func is immutable except the two symbolic maps,
//     which a single mutex guards; Evaluate may be called from any number
//     of goroutines.
//
// Errors:
//
//   - ErrConfiguration: the input matches no supported construction mode.
//   - ErrRebuild: a second construction attempt on the same instance.
//   - ErrDegenerateSimplex: affinely dependent vertices at fit time.
//   - ErrOutsideDomain: a numeric query outside every simplex.
//   - ErrDimensionMismatch: argument arity differs from the domain.
//   - Triangulation failures surface as the triangulate package's
//     sentinels, wrapped; they are construction-fatal.
package piecewise
