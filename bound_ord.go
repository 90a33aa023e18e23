package nodit

import "cmp"

// bordKind positions an endpoint among the other endpoints sharing its
// point. Walking the number line left to right, an exclusive end sits
// just before its point, inclusive bounds of either side sit exactly on
// it, and an exclusive start sits just after it:
//
//	Excluded-End(p) < Included(p) < Excluded-Start(p)
//
// The unbounded sentinels sit below and above every other endpoint.
type bordKind int8

const (
	unboundedStart bordKind = iota - 2
	excludedEnd
	includedPoint
	excludedStart
	unboundedEnd
)

// boundOrd is a totally ordered endpoint position: a Bound combined with
// the side of the range it came from. It is the search key every map
// comparator is built on; a single boundOrd can be compared against any
// stored range.
type boundOrd[I cmp.Ordered] struct {
	kind  bordKind
	point I
}

// startOrd positions b as the start endpoint of a range.
func startOrd[I cmp.Ordered](b Bound[I]) boundOrd[I] {
	switch b.kind {
	case included:
		return boundOrd[I]{kind: includedPoint, point: b.point}
	case excluded:
		return boundOrd[I]{kind: excludedStart, point: b.point}
	default:
		return boundOrd[I]{kind: unboundedStart}
	}
}

// endOrd positions b as the end endpoint of a range.
func endOrd[I cmp.Ordered](b Bound[I]) boundOrd[I] {
	switch b.kind {
	case included:
		return boundOrd[I]{kind: includedPoint, point: b.point}
	case excluded:
		return boundOrd[I]{kind: excludedEnd, point: b.point}
	default:
		return boundOrd[I]{kind: unboundedEnd}
	}
}

// pointOrd positions a bare point; a point behaves like an inclusive
// bound of either side.
func pointOrd[I cmp.Ordered](point I) boundOrd[I] {
	return boundOrd[I]{kind: includedPoint, point: point}
}

func (o boundOrd[I]) compare(other boundOrd[I]) int {
	// INF
	if o.kind == unboundedStart {
		if other.kind == unboundedStart {
			return 0 // same INF
		}
		return -1
	}
	if o.kind == unboundedEnd {
		if other.kind == unboundedEnd {
			return 0 // same INF
		}
		return 1
	}
	if other.kind == unboundedStart {
		return 1
	}
	if other.kind == unboundedEnd {
		return -1
	}

	// compare points
	if c := cmp.Compare(o.point, other.point); c != 0 {
		return c
	}

	// compare kinds at the same point
	return cmp.Compare(o.kind, other.kind)
}
