// Package piecewise defines the affine piece type, construction
// configuration and tunable options of the engine.
package piecewise

import (
	"gonum.org/v1/gonum/floats"

	"github.com/pkallberg/pwlin/pointset"
)

// defaultContainTol is the absolute barycentric slack: coordinates down
// to −defaultContainTol still count as inside, so a point numerically on
// a shared facet is accepted by both adjoining simplices.
const defaultContainTol = 1e-8

// defaultHullEps is the coplanarity tolerance forwarded to the planar
// triangulation backend.
const defaultHullEps = 1e-12

// Fn is the black-box numeric function being approximated. It must be
// pure: construction samples it once per vertex.
type Fn func(x ...float64) float64

// Piece is one affine map R^D → R: dot(Slopes, x) + Intercept.
type Piece struct {
	Slopes    []float64
	Intercept float64
}

// At applies the piece to a point of matching arity.
func (p Piece) At(x []float64) float64 {
	return floats.Dot(p.Slopes, x) + p.Intercept
}

// Clone returns an independent copy of p.
func (p Piece) Clone() Piece {
	return Piece{Slopes: append([]float64(nil), p.Slopes...), Intercept: p.Intercept}
}

// Options tunes location tolerances.
type Options struct {
	// ContainTol is the absolute lower slack of the barycentric
	// containment test. Must be ≥ 0.
	ContainTol float64
	// HullEps is the merge tolerance of the planar triangulation step.
	// Must be > 0.
	HullEps float64
}

// DefaultOptions returns the recommended tolerances.
func DefaultOptions() Options {
	return Options{ContainTol: defaultContainTol, HullEps: defaultHullEps}
}

// Config selects exactly one construction mode by which of its fields are
// populated:
//
//  1. Function + Points (or Breakpoints for a 1-D domain)
//  2. Function + Simplices
//  3. Simplices + Pieces
//
// Any other combination is rejected with ErrConfiguration.
type Config struct {
	// Function is the nonlinear function to approximate (modes 1 and 2).
	Function Fn
	// Points is the breakpoint cloud to triangulate (mode 1, D ≥ 2).
	Points []pointset.Point
	// Breakpoints is the 1-D breakpoint list (mode 1, D = 1).
	Breakpoints []float64
	// Simplices lists explicit simplices, each as its D+1 vertex points
	// (modes 2 and 3). Vertices shared between simplices are interned once.
	Simplices [][]pointset.Point
	// Pieces supplies one affine piece per simplex, in matching order
	// (mode 3).
	Pieces []Piece
	// Options overrides DefaultOptions when non-nil.
	Options *Options
}
