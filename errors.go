package nodit

import "errors"

var (
	// ErrOverlap is returned when an insertion would make a range share a
	// point with a range already in the map.
	ErrOverlap = errors.New("range overlaps an existing range")

	// ErrUnrepresentable is returned when a range produced by a cut or a
	// merge cannot be rebuilt by the map's TryFromBounds conversion.
	ErrUnrepresentable = errors.New("bounds not representable by the range type")

	// ErrSideUnbounded is returned when asking an unbounded Bound for its
	// point.
	ErrSideUnbounded = errors.New("bound is unbounded on this side")
)
