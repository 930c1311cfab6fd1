// Package pointset provides a deduplicated registry of D-dimensional
// points with stable integer handles.
//
// What:
//
//   - Point is an ordered tuple of D float64 coordinates.
//   - Set interns points by value: the first occurrence of a coordinate
//     tuple is appended and assigned the next index; every later
//     occurrence of an equal tuple returns the same index.
//   - Indices are assigned in first-seen order, are stable once assigned,
//     and are never reused. There are no deletions.
//
// Why:
//
//   - Simplicial partitions reference the same vertex from many simplices;
//     interning collapses the repeats into one canonical point so that
//     simplices can be stored as compact index tuples.
//
// Complexity:
//
//   - Intern: O(D) expected (one map probe plus one copy on first sight).
//   - At/Len/Dim: O(1).
//
// Errors:
//
//   - ErrBadDimension: requested dimension is < 1.
//   - ErrDimensionMismatch: a tuple's arity differs from the set's dimension.
//   - ErrIndexOutOfRange: requested index was never assigned.
package pointset
