// Package mesh generates deterministic breakpoint lattices for building
// piecewise-linear approximations over boxes.
//
// What:
//
//   - Linspace emits n evenly spaced breakpoints over [lo, hi].
//   - Grid emits the row-major lattice of n breakpoints per axis over a
//     D-dimensional box, nᴰ points in total.
//
// Why:
//
//   - Hand-curated breakpoints are the norm for surrogate models, but a
//     regular lattice is the usual starting point; generating it here
//     keeps triangulation and fitting callers free of index arithmetic.
//
// Determinism:
//
//   - Output order is fixed: ascending for Linspace, row-major (last axis
//     fastest) for Grid. Endpoints are emitted exactly, not as lo+k·step
//     accumulations.
//
// Errors:
//
//   - ErrBadCount: fewer than 2 breakpoints per axis requested.
//   - ErrBadBounds: an axis with hi ≤ lo.
//   - ErrDimensionMismatch: lo and hi of different lengths.
package mesh
