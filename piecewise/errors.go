package piecewise

import "errors"

// Sentinel errors for construction and evaluation. Triangulation failures
// are not re-branded: they surface as the triangulate package's sentinels
// wrapped with construction context.
var (
	// ErrConfiguration indicates construction input that matches no
	// supported mode, or use of an unbuilt instance.
	ErrConfiguration = errors.New("piecewise: unsupported construction input")
	// ErrRebuild indicates a second construction attempt on one instance.
	ErrRebuild = errors.New("piecewise: function already built")
	// ErrDegenerateSimplex indicates affinely dependent simplex vertices
	// discovered while fitting an affine piece.
	ErrDegenerateSimplex = errors.New("piecewise: degenerate simplex")
	// ErrOutsideDomain indicates a numeric query outside every simplex.
	ErrOutsideDomain = errors.New("piecewise: point outside the approximated domain")
	// ErrDimensionMismatch indicates argument arity differing from the
	// function's domain dimension.
	ErrDimensionMismatch = errors.New("piecewise: argument dimension mismatch")
	// ErrIndexOutOfRange indicates a simplex or piece index that was
	// never assigned.
	ErrIndexOutOfRange = errors.New("piecewise: index out of range")
	// ErrUnknownNode indicates a symbolic node that this instance never
	// produced.
	ErrUnknownNode = errors.New("piecewise: unknown symbolic node")
)
