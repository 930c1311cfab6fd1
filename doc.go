// Package pwlin approximates nonlinear scalar functions with
// piecewise-linear surrogates over simplicial partitions of their domain.
//
// 🚀 What is pwlin?
//
//	A small, focused library that brings together:
//		• Point registries: exact float64 vertex dedup with stable indices
//		• Triangulation: sorted segments in 1-D, Delaunay in 2-D and beyond
//		• Affine fitting: one hyperplane per simplex, exact at its vertices
//		• Evaluation: simplex location and interpolation with domain checks
//		• Symbolic calls: deferred, memoized nodes for modeling systems
//		• Error reports: max/mean/median/p95 surrogate error over samples
//
// ✨ Why choose pwlin?
//
//   - Three construction modes – function+points, function+simplices, or
//     explicit simplices+pieces, matched by which Config fields are set
//   - Exact at vertices – every affine piece reproduces the sampled
//     function at its simplex corners
//   - Pure Go numerics – linear algebra via gonum, hulls via quickhull
//
// Under the hood, everything is organized under five subpackages:
//
//	pointset/    — exact-equality point interning with first-seen indices
//	triangulate/ — 1-D segments, planar Delaunay, incremental Delaunay
//	mesh/        — linspace and lattice sample generators
//	expr/        — values, argument tuples and opaque call nodes
//	piecewise/   — construction, evaluation, symbolic calls, reports
//
// Quick ASCII example:
//
//	    f(x)=x² over breakpoints 0,1,2:
//
//	    y=3x−2      ╱
//	              ╱
//	    y=x    ╱
//	        ──╱──────
//	        0   1   2
//
//	two chords, exact at the three breakpoints.
//
// Dive into the per-package docs for construction rules, tolerances and
// complexity notes.
//
//	go get github.com/pkallberg/pwlin
package pwlin
