package mesh

import "errors"

// Sentinel errors for lattice generation.
var (
	// ErrBadCount indicates fewer than 2 breakpoints per axis.
	ErrBadCount = errors.New("mesh: need at least 2 breakpoints per axis")
	// ErrBadBounds indicates an axis whose upper bound does not exceed its lower bound.
	ErrBadBounds = errors.New("mesh: upper bound must exceed lower bound")
	// ErrDimensionMismatch indicates lo and hi vectors of different lengths.
	ErrDimensionMismatch = errors.New("mesh: bound vectors differ in length")
)
