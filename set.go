package nodit

import (
	"cmp"
	"iter"
	"strings"
)

// Set is an ordered set of non-overlapping ranges based on Map, for
// when only coverage matters and there is no value to attach.
//
// See Map for the semantics of each operation, the construction
// requirement and the invalid-range precondition; they carry over
// unchanged.
type Set[I cmp.Ordered, K RangeBounds[I]] struct {
	inner *Map[I, K, struct{}]
}

// NewSet returns an empty set over the range representation K. See
// NewMap for the tryFromBounds requirement.
func NewSet[I cmp.Ordered, K RangeBounds[I]](tryFromBounds TryFromBounds[I, K]) *Set[I, K] {
	return &Set[I, K]{inner: NewMap[I, K, struct{}](tryFromBounds)}
}

// NewRangeSet returns an empty set of the built-in Range type, which
// can represent every endpoint pair.
func NewRangeSet[I cmp.Ordered]() *Set[I, Range[I]] {
	return &Set[I, Range[I]]{inner: NewRangeMap[I, struct{}]()}
}

// SetFromSliceStrict builds a set by inserting every given range with
// InsertStrict, failing with ErrOverlap on the first range that
// overlaps an earlier one.
func SetFromSliceStrict[I cmp.Ordered, K RangeBounds[I]](tryFromBounds TryFromBounds[I, K], ranges []K) (*Set[I, K], error) {
	s := NewSet[I, K](tryFromBounds)
	for _, rng := range ranges {
		if err := s.InsertStrict(rng); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Len returns the number of ranges in the set.
func (s *Set[I, K]) Len() int {
	return s.inner.Len()
}

// IsEmpty returns true if the set holds no ranges.
func (s *Set[I, K]) IsEmpty() bool {
	return s.inner.IsEmpty()
}

// Overlaps reports whether any range in the set overlaps the given
// range.
func (s *Set[I, K]) Overlaps(rng RangeBounds[I]) bool {
	return s.inner.Overlaps(rng)
}

// Overlapping returns an iterator over every range in the set that
// overlaps the given range, in ascending order.
func (s *Set[I, K]) Overlapping(rng RangeBounds[I]) iter.Seq[K] {
	inner := s.inner.Overlapping(rng)
	return func(yield func(K) bool) {
		for k := range inner {
			if !yield(k) {
				return
			}
		}
	}
}

// ContainsPoint reports whether some range in the set contains the
// given point.
func (s *Set[I, K]) ContainsPoint(point I) bool {
	return s.inner.ContainsPoint(point)
}

// GetAtPoint returns the range containing the given point. When no
// range does, ok is false and gap holds the maximal uncovered range
// around the point.
func (s *Set[I, K]) GetAtPoint(point I) (rng K, gap Range[I], ok bool) {
	rng, _, gap, ok = s.inner.GetEntryAtPoint(point)
	return rng, gap, ok
}

// All returns an iterator over every range in ascending order.
func (s *Set[I, K]) All() iter.Seq[K] {
	inner := s.inner.All()
	return func(yield func(K) bool) {
		for k := range inner {
			if !yield(k) {
				return
			}
		}
	}
}

// Ranges returns every range in ascending order as a slice.
func (s *Set[I, K]) Ranges() []K {
	out := make([]K, 0, s.Len())
	for k := range s.All() {
		out = append(out, k)
	}
	return out
}

// First returns the range with the least start endpoint, if any.
func (s *Set[I, K]) First() (K, bool) {
	k, _, ok := s.inner.FirstEntry()
	return k, ok
}

// Last returns the range with the greatest start endpoint, if any.
func (s *Set[I, K]) Last() (K, bool) {
	k, _, ok := s.inner.LastEntry()
	return k, ok
}

// RemoveOverlapping removes every range that overlaps the given range
// and returns the removed ranges in ascending order.
func (s *Set[I, K]) RemoveOverlapping(rng RangeBounds[I]) []K {
	removed := s.inner.RemoveOverlapping(rng)
	out := make([]K, len(removed))
	for i, e := range removed {
		out[i] = e.Key
	}
	return out
}

// Cut removes the given range from the set and returns the removed
// pieces as explicit endpoint pairs, in ascending order. See Map.Cut
// for the representability and atomicity rules.
func (s *Set[I, K]) Cut(rng RangeBounds[I]) ([]Range[I], error) {
	pieces, err := s.inner.Cut(rng)
	if err != nil {
		return nil, err
	}
	out := make([]Range[I], len(pieces))
	for i, p := range pieces {
		out[i] = p.Key
	}
	return out, nil
}

// Gaps returns the maximal sub-ranges of outer that no range in the set
// covers any point of, in ascending order.
func (s *Set[I, K]) Gaps(outer RangeBounds[I]) []Range[I] {
	return s.inner.Gaps(outer)
}

// ContainsRange reports whether the set covers every point of the given
// range.
func (s *Set[I, K]) ContainsRange(rng RangeBounds[I]) bool {
	return s.inner.ContainsRange(rng)
}

// InsertStrict adds a new range without modifying other ranges. If the
// given range overlaps one already in the set, ErrOverlap is returned
// and the set is not updated.
func (s *Set[I, K]) InsertStrict(rng K) error {
	return s.inner.InsertStrict(rng, struct{}{})
}

// InsertMergeTouching adds a new range and merges it with the ranges it
// touches. See Map.InsertMergeTouching.
func (s *Set[I, K]) InsertMergeTouching(rng K) (K, error) {
	return s.inner.InsertMergeTouching(rng, struct{}{})
}

// InsertMergeOverlapping adds a new range and merges it with every
// range it overlaps. See Map.InsertMergeOverlapping.
func (s *Set[I, K]) InsertMergeOverlapping(rng K) (K, error) {
	return s.inner.InsertMergeOverlapping(rng, struct{}{})
}

// InsertMergeTouchingOrOverlapping adds a new range and merges it with
// every range it touches or overlaps. See
// Map.InsertMergeTouchingOrOverlapping.
func (s *Set[I, K]) InsertMergeTouchingOrOverlapping(rng K) (K, error) {
	return s.inner.InsertMergeTouchingOrOverlapping(rng, struct{}{})
}

func (s *Set[I, K]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for k := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(formatRange[I](k))
	}
	sb.WriteByte('}')
	return sb.String()
}
