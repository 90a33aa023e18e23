package nodit

import "cmp"

// RangeBounds is the protocol a range representation must satisfy to be
// stored in a Map or used as a query: expose its two endpoints. Any
// cheap-to-copy value type with a start and an end Bound qualifies;
// Range is the general-purpose implementation shipped with this
// package.
type RangeBounds[I cmp.Ordered] interface {
	// StartBound returns the lower endpoint of the range.
	StartBound() Bound[I]
	// EndBound returns the upper endpoint of the range.
	EndBound() Bound[I]
}

// Range is a RangeBounds implementation able to represent every
// endpoint combination: bounded or unbounded on each side, inclusive or
// exclusive at each point. It is the key type to reach for unless a
// domain restricts which shapes may exist, and it doubles as the
// explicit endpoint-pair type yielded by Map.Cut and Map.Gaps.
type Range[I cmp.Ordered] struct {
	start Bound[I]
	end   Bound[I]
}

// NewRange returns the range between the two given bounds. No validity
// check is performed; see IsValid.
func NewRange[I cmp.Ordered](start, end Bound[I]) Range[I] {
	return Range[I]{start: start, end: end}
}

// RangeFromBounds is the TryFromBounds conversion for Range. It never
// fails: every endpoint pair is representable.
func RangeFromBounds[I cmp.Ordered](start, end Bound[I]) (Range[I], error) {
	return Range[I]{start: start, end: end}, nil
}

// StartBound returns the lower endpoint of this range.
func (r Range[I]) StartBound() Bound[I] { return r.start }

// EndBound returns the upper endpoint of this range.
func (r Range[I]) EndBound() Bound[I] { return r.end }

// IsValid reports whether this range is valid; see the package-level
// IsValid for the definition.
func (r Range[I]) IsValid() bool {
	return IsValid[I](r)
}

// Contains returns true if value is within the bounds of this range.
// For example, on the range [0..2), Contains(1) returns true, while
// Contains(2) returns false.
func (r Range[I]) Contains(value I) bool {
	return cmpRangeToBound[I](r, pointOrd(value)) == 0
}

// Overlaps returns true if this range and other share at least one
// point. Boundary contact at a single point counts only when at least
// one of the two meeting bounds is inclusive.
func (r Range[I]) Overlaps(other RangeBounds[I]) bool {
	return rangesOverlap[I](r, other)
}

// Touches returns true if this range and other do not overlap but are
// separated by no point: they meet at a shared point with exactly one
// of the two meeting bounds inclusive.
//
// For example, [1..4) touches [4..6] while [1..4] does not (the two
// overlap at 4), and [1..4) does not touch (4..6] (the point 4 lies
// between them).
func (r Range[I]) Touches(other RangeBounds[I]) bool {
	return rangesTouch[I](r, other)
}

// Encloses returns true if the bounds of other do not extend outside
// the bounds of this range.
//
// Examples:
//   - [3..6] encloses [4..5]
//   - (3..6) encloses (3..6)
//   - (3..6] does not enclose [3..6]
//   - [4..5] does not enclose (3..6) (even though it contains every
//     value contained by the latter range)
func (r Range[I]) Encloses(other RangeBounds[I]) bool {
	return startOrd(r.start).compare(startOrd(other.StartBound())) <= 0 &&
		endOrd(r.end).compare(endOrd(other.EndBound())) >= 0
}

// Intersection returns the maximal range enclosed by both this range
// and other, if such a range exists.
//
// For example, the intersection of [1..5] and (3..7) is (3..5]. The
// intersection exists if and only if the two ranges overlap.
func (r Range[I]) Intersection(other RangeBounds[I]) (Range[I], bool) {
	if !rangesOverlap[I](r, other) {
		return Range[I]{}, false
	}
	out := r
	if startOrd(other.StartBound()).compare(startOrd(out.start)) > 0 {
		out.start = other.StartBound()
	}
	if endOrd(other.EndBound()).compare(endOrd(out.end)) < 0 {
		out.end = other.EndBound()
	}
	return out, true
}

// Span returns the minimal range that encloses both this range and
// other. For example, the span of [1..3] and (5..7) is [1..7).
//
// If the input ranges overlap or touch, the returned range is also
// their union. If they do not, note that the span contains values that
// are in neither input range.
func (r Range[I]) Span(other RangeBounds[I]) Range[I] {
	out := r
	if startOrd(other.StartBound()).compare(startOrd(out.start)) < 0 {
		out.start = other.StartBound()
	}
	if endOrd(other.EndBound()).compare(endOrd(out.end)) > 0 {
		out.end = other.EndBound()
	}
	return out
}

// Gap returns the maximal range lying strictly between this range and
// other, if such a range exists. Overlapping and touching ranges have
// no gap.
//
// For example, the gap of [1..5] and (7..10) is (5..7].
func (r Range[I]) Gap(other RangeBounds[I]) (Range[I], bool) {
	if rangesOverlap[I](r, other) {
		return Range[I]{}, false
	}
	first, second := Range[I]{start: other.StartBound(), end: other.EndBound()}, r
	if startOrd(r.start).compare(startOrd(other.StartBound())) < 0 {
		first, second = second, first
	}
	gap := Range[I]{start: first.end.flip(), end: second.start.flip()}
	if !IsValid[I](gap) {
		return Range[I]{}, false
	}
	return gap, true
}

// Equal returns true if other has the same endpoints and bound kinds as
// this range. Note that ranges such as (1..4) and [2..3] are not equal
// to one another, despite the fact that over the integers they contain
// precisely the same set of values.
func (r Range[I]) Equal(other Range[I]) bool {
	return r == other
}

func (r Range[I]) String() string {
	return formatRange[I](r)
}

// IsValid reports whether r is a valid range: its start endpoint does
// not come after its end endpoint under the endpoint order, with a
// same-point pair permitted only when both sides are inclusive.
//
// Every Map and Set operation that accepts a range panics when handed
// an invalid one; callers constructing ranges from untrusted endpoints
// should check them here first.
func IsValid[I cmp.Ordered](r RangeBounds[I]) bool {
	return startOrd(r.StartBound()).compare(endOrd(r.EndBound())) <= 0
}

// cmpRangeToBound orders a stored range against a single endpoint
// position: negative when the range ends before the position, positive
// when it starts after it, and zero when the position falls inside the
// range.
func cmpRangeToBound[I cmp.Ordered](r RangeBounds[I], bo boundOrd[I]) int {
	if endOrd(r.EndBound()).compare(bo) < 0 {
		return -1
	}
	if startOrd(r.StartBound()).compare(bo) > 0 {
		return 1
	}
	return 0
}

func rangesOverlap[I cmp.Ordered](a, b RangeBounds[I]) bool {
	return startOrd(a.StartBound()).compare(endOrd(b.EndBound())) <= 0 &&
		startOrd(b.StartBound()).compare(endOrd(a.EndBound())) <= 0
}

func rangesTouch[I cmp.Ordered](a, b RangeBounds[I]) bool {
	return abuts(a.EndBound(), b.StartBound()) ||
		abuts(b.EndBound(), a.StartBound())
}

// abuts reports half-open contact between an end bound and a start
// bound: the same point with exactly one of the two sides inclusive.
// Both-inclusive contact is an overlap and both-exclusive contact
// leaves the point itself uncovered, so neither counts.
func abuts[I cmp.Ordered](end, start Bound[I]) bool {
	if end.kind == unbounded || start.kind == unbounded || end.point != start.point {
		return false
	}
	return (end.kind == included && start.kind == excluded) ||
		(end.kind == excluded && start.kind == included)
}

func formatRange[I cmp.Ordered](r RangeBounds[I]) string {
	return r.StartBound().describeAsLowerBound() + ".." + r.EndBound().describeAsUpperBound()
}
