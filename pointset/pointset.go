package pointset

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Point is an ordered tuple of float64 coordinates.
type Point []float64

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	out := make(Point, len(p))
	copy(out, p)
	return out
}

// Set is a value-deduplicated store of points of one fixed dimension.
// Indices are assigned in first-seen order and never change. Set is not
// safe for concurrent mutation; once fully populated it may be read from
// any number of goroutines.
type Set struct {
	dim   int
	pts   []Point
	index map[string]int
}

// New creates an empty Set holding points of the given dimension.
func New(dim int) (*Set, error) {
	if dim < 1 {
		return nil, fmt.Errorf("New(dim=%d): %w", dim, ErrBadDimension)
	}
	return &Set{
		dim:   dim,
		pts:   make([]Point, 0),
		index: make(map[string]int),
	}, nil
}

// Intern returns the stable index of p, appending it on first sight.
// Interning an equal tuple twice returns the same index. The stored copy
// is independent of the caller's slice.
func (s *Set) Intern(p Point) (int, error) {
	if len(p) != s.dim {
		return 0, fmt.Errorf("Intern: got %d coordinates, want %d: %w",
			len(p), s.dim, ErrDimensionMismatch)
	}
	k := s.key(p)
	if i, ok := s.index[k]; ok {
		return i, nil
	}
	i := len(s.pts)
	s.pts = append(s.pts, p.Clone())
	s.index[k] = i
	return i, nil
}

// At returns the point stored at index i. The returned slice must not be
// mutated by the caller.
func (s *Set) At(i int) (Point, error) {
	if i < 0 || i >= len(s.pts) {
		return nil, fmt.Errorf("At(%d): have %d points: %w", i, len(s.pts), ErrIndexOutOfRange)
	}
	return s.pts[i], nil
}

// Len reports the number of distinct points interned so far.
func (s *Set) Len() int { return len(s.pts) }

// Dim reports the fixed point dimension of the set.
func (s *Set) Dim() int { return s.dim }

// Points returns the interned points in index order. The outer slice is
// fresh; the inner slices are the stored points and must not be mutated.
func (s *Set) Points() []Point {
	out := make([]Point, len(s.pts))
	copy(out, s.pts)
	return out
}

// key encodes the exact bit pattern of every coordinate. Negative zero is
// folded into positive zero so the two compare equal, matching ==.
func (s *Set) key(p Point) string {
	buf := make([]byte, 8*len(p))
	for i, v := range p {
		if v == 0 {
			v = 0 // collapse -0.0
		}
		binary.BigEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	return string(buf)
}
