package pointset

import "errors"

// Sentinel errors for pointset operations.
var (
	// ErrBadDimension indicates a requested dimension below 1.
	ErrBadDimension = errors.New("pointset: dimension must be at least 1")
	// ErrDimensionMismatch indicates a tuple whose arity differs from the set's dimension.
	ErrDimensionMismatch = errors.New("pointset: point dimension mismatch")
	// ErrIndexOutOfRange indicates an index that was never assigned.
	ErrIndexOutOfRange = errors.New("pointset: index out of range")
)
