package nodit

import (
	"cmp"
	"fmt"
)

// boundKind discriminates the three shapes an endpoint of a range can
// take: a point that belongs to the range, a point that does not, or no
// point at all.
type boundKind int8

const (
	included boundKind = iota
	excluded
	unbounded
)

// Bound is one endpoint of a range: a point of type I that is either
// included in or excluded from the range, or the absence of a point
// entirely, meaning the range extends without limit on that side.
//
// A Bound carries no side of its own; whether it acts as a start or an
// end is decided by the range holding it. The same Included(5) is the
// lower endpoint of [5..8) and the upper endpoint of (2..5].
type Bound[I cmp.Ordered] struct {
	kind  boundKind
	point I
}

// Included returns a bound at point where the point belongs to the
// range.
func Included[I cmp.Ordered](point I) Bound[I] {
	return Bound[I]{kind: included, point: point}
}

// Excluded returns a bound at point where the point does not belong to
// the range.
func Excluded[I cmp.Ordered](point I) Bound[I] {
	return Bound[I]{kind: excluded, point: point}
}

// Unbounded returns the absent bound: the range has no endpoint on that
// side.
func Unbounded[I cmp.Ordered]() Bound[I] {
	return Bound[I]{kind: unbounded}
}

// IsIncluded returns true if the bound is at a point belonging to the
// range.
func (b Bound[I]) IsIncluded() bool {
	return b.kind == included
}

// IsExcluded returns true if the bound is at a point outside the range.
func (b Bound[I]) IsExcluded() bool {
	return b.kind == excluded
}

// IsUnbounded returns true if the bound has no point.
func (b Bound[I]) IsUnbounded() bool {
	return b.kind == unbounded
}

// Endpoint returns the bound's point with ignoring the ErrSideUnbounded
// error.
func (b Bound[I]) Endpoint() I {
	point, _ := b.EndpointE()
	return point
}

// EndpointE returns the bound's point.
// If the bound is unbounded (that is, IsUnbounded returns true), the
// ErrSideUnbounded will be returned.
func (b Bound[I]) EndpointE() (I, error) {
	if b.kind == unbounded {
		var zero I
		return zero, ErrSideUnbounded
	}
	return b.point, nil
}

// flip swaps included and excluded; unbounded is a fixed point.
func (b Bound[I]) flip() Bound[I] {
	switch b.kind {
	case included:
		return Bound[I]{kind: excluded, point: b.point}
	case excluded:
		return Bound[I]{kind: included, point: b.point}
	default:
		return b
	}
}

func (b Bound[I]) describeAsLowerBound() string {
	switch b.kind {
	case included:
		return fmt.Sprintf("[%v", b.point)
	case excluded:
		return fmt.Sprintf("(%v", b.point)
	default:
		return "(-∞"
	}
}

func (b Bound[I]) describeAsUpperBound() string {
	switch b.kind {
	case included:
		return fmt.Sprintf("%v]", b.point)
	case excluded:
		return fmt.Sprintf("%v)", b.point)
	default:
		return "+∞)"
	}
}

func (b Bound[I]) String() string {
	switch b.kind {
	case included:
		return fmt.Sprintf("Included(%v)", b.point)
	case excluded:
		return fmt.Sprintf("Excluded(%v)", b.point)
	default:
		return "Unbounded"
	}
}
