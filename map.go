package nodit

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
)

// TryFromBounds converts an explicit pair of endpoints into the range
// representation K. Conversions are consulted whenever Cut,
// InsertOverwrite or a merging insertion has to build a leftover or
// merged range; a representation without a shape for the pair returns
// ErrUnrepresentable, and the operation that needed the conversion is
// abandoned with the map unchanged.
type TryFromBounds[I cmp.Ordered, K RangeBounds[I]] func(start, end Bound[I]) (K, error)

// Entry pairs a range key with its value.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered map of non-overlapping ranges to values.
//
// I is the point type the ranges are over, K is the range
// representation stored as the keys, and V is the value type. Stored
// ranges never share a point, and iteration always runs in ascending
// order of start endpoint.
//
// A Map must be created with NewMap, NewRangeMap or FromSliceStrict;
// the zero value is not ready for use. A Map is not safe for concurrent
// use; every operation runs to completion before returning and
// mutation requires exclusive access.
//
// Every method that accepts a range panics when the range is invalid
// (see IsValid): handing an inverted or empty range to the map is a
// programming bug, not a runtime condition.
//
//	m := nodit.NewRangeMap[int, bool]()
//	_ = m.InsertStrict(nodit.ClosedOpen(4, 8), false)
//	_ = m.InsertStrict(nodit.ClosedOpen(8, 18), true)
//
//	if v, ok := m.GetAtPoint(7); ok {
//		fmt.Println(v) // false
//	}
type Map[I cmp.Ordered, K RangeBounds[I], V any] struct {
	inner tree[I, K, V]
	from  TryFromBounds[I, K]
}

// NewMap returns an empty map over the range representation K.
// tryFromBounds must not be nil; maps whose K can represent every
// endpoint pair can use a total conversion such as RangeFromBounds.
func NewMap[I cmp.Ordered, K RangeBounds[I], V any](tryFromBounds TryFromBounds[I, K]) *Map[I, K, V] {
	if tryFromBounds == nil {
		panic("nodit: NewMap requires a TryFromBounds conversion")
	}
	return &Map[I, K, V]{inner: newTree[I, K, V](), from: tryFromBounds}
}

// NewRangeMap returns an empty map keyed on the built-in Range type,
// which can represent every endpoint pair.
func NewRangeMap[I cmp.Ordered, V any]() *Map[I, Range[I], V] {
	return NewMap[I, Range[I], V](RangeFromBounds[I])
}

// FromSliceStrict builds a map by inserting every given entry with
// InsertStrict, failing with ErrOverlap on the first entry that
// overlaps an earlier one.
func FromSliceStrict[I cmp.Ordered, K RangeBounds[I], V any](tryFromBounds TryFromBounds[I, K], entries []Entry[K, V]) (*Map[I, K, V], error) {
	m := NewMap[I, K, V](tryFromBounds)
	for _, e := range entries {
		if err := m.InsertStrict(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Len returns the number of entries in the map.
func (m *Map[I, K, V]) Len() int {
	return m.inner.len()
}

// IsEmpty returns true if the map holds no entries.
func (m *Map[I, K, V]) IsEmpty() bool {
	return m.inner.len() == 0
}

// Overlaps reports whether any entry overlaps the given range.
func (m *Map[I, K, V]) Overlaps(rng RangeBounds[I]) bool {
	panicIfInvalid[I](rng)

	for range m.Overlapping(rng) {
		return true
	}
	return false
}

// Overlapping returns an iterator over every entry that overlaps the
// given range, in ascending order. The map must not be mutated while
// the iterator is in use.
func (m *Map[I, K, V]) Overlapping(rng RangeBounds[I]) iter.Seq2[K, V] {
	panicIfInvalid[I](rng)

	startC := overlappingStartComp[I, K](rng.StartBound())
	endC := overlappingEndComp[I, K](rng.EndBound())
	return func(yield func(K, V) bool) {
		m.inner.ascendRange(startC, endC, func(e *entry[I, K, V]) bool {
			return yield(e.key, e.value)
		})
	}
}

// OverlappingMut is Overlapping with in-place access to the values.
// The handed-out pointers are valid until the entry is removed from the
// map.
func (m *Map[I, K, V]) OverlappingMut(rng RangeBounds[I]) iter.Seq2[K, *V] {
	panicIfInvalid[I](rng)

	startC := overlappingStartComp[I, K](rng.StartBound())
	endC := overlappingEndComp[I, K](rng.EndBound())
	return func(yield func(K, *V) bool) {
		m.inner.ascendRange(startC, endC, func(e *entry[I, K, V]) bool {
			return yield(e.key, &e.value)
		})
	}
}

// GetAtPoint returns the value of the entry whose range contains the
// given point, if any.
func (m *Map[I, K, V]) GetAtPoint(point I) (V, bool) {
	_, value, _, ok := m.GetEntryAtPoint(point)
	return value, ok
}

// GetAtPointMut returns an in-place handle on the value of the entry
// whose range contains the given point, if any.
func (m *Map[I, K, V]) GetAtPointMut(point I) (*V, bool) {
	e, ok := m.inner.find(overlappingStartComp[I, K](Included(point)))
	if !ok {
		return nil, false
	}
	return &e.value, true
}

// ContainsPoint reports whether some entry's range contains the given
// point.
func (m *Map[I, K, V]) ContainsPoint(point I) bool {
	_, ok := m.inner.find(overlappingStartComp[I, K](Included(point)))
	return ok
}

// GetEntryAtPoint returns the entry whose range contains the given
// point. When no entry does, ok is false and gap holds the maximal
// range around the point that no entry covers any part of.
//
//	m, _ := nodit.FromSliceStrict(nodit.RangeFromBounds[int], []nodit.Entry[nodit.Range[int], bool]{
//		{nodit.ClosedOpen(1, 4), false},
//		{nodit.ClosedOpen(4, 6), true},
//		{nodit.ClosedOpen(8, 100), false},
//	})
//
//	_, _, gap, ok := m.GetEntryAtPoint(7)
//	// ok is false, gap is [6..8)
func (m *Map[I, K, V]) GetEntryAtPoint(point I) (key K, value V, gap Range[I], ok bool) {
	startC := overlappingStartComp[I, K](Included(point))
	if e, found := m.inner.find(startC); found {
		return e.key, e.value, Range[I]{}, true
	}

	lower := Unbounded[I]()
	if e, found := m.inner.lastAtOrBefore(startC); found {
		lower = e.key.EndBound().flip()
	}
	upper := Unbounded[I]()
	if e, found := m.inner.firstAtOrAfter(overlappingEndComp[I, K](Included(point))); found {
		upper = e.key.StartBound().flip()
	}
	return key, value, Range[I]{start: lower, end: upper}, false
}

// All returns an iterator over every entry in ascending order. The map
// must not be mutated while the iterator is in use.
func (m *Map[I, K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.inner.scan(func(e *entry[I, K, V]) bool {
			return yield(e.key, e.value)
		})
	}
}

// AllMut is All with in-place access to the values.
func (m *Map[I, K, V]) AllMut() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		m.inner.scan(func(e *entry[I, K, V]) bool {
			return yield(e.key, &e.value)
		})
	}
}

// Entries returns every entry in ascending order as a slice.
func (m *Map[I, K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, m.Len())
	m.inner.scan(func(e *entry[I, K, V]) bool {
		out = append(out, Entry[K, V]{Key: e.key, Value: e.value})
		return true
	})
	return out
}

// FirstEntry returns the entry with the least start endpoint, if any.
func (m *Map[I, K, V]) FirstEntry() (K, V, bool) {
	e, ok := m.inner.first()
	if !ok {
		var key K
		var value V
		return key, value, false
	}
	return e.key, e.value, true
}

// LastEntry returns the entry with the greatest start endpoint, if any.
func (m *Map[I, K, V]) LastEntry() (K, V, bool) {
	e, ok := m.inner.last()
	if !ok {
		var key K
		var value V
		return key, value, false
	}
	return e.key, e.value, true
}

// RemoveOverlapping removes every entry that overlaps the given range
// and returns the removed entries in ascending order.
func (m *Map[I, K, V]) RemoveOverlapping(rng RangeBounds[I]) []Entry[K, V] {
	panicIfInvalid[I](rng)

	removed := m.removeOverlappingEntries(rng)
	out := make([]Entry[K, V], len(removed))
	for i, e := range removed {
		out[i] = Entry[K, V]{Key: e.key, Value: e.value}
	}
	return out
}

func (m *Map[I, K, V]) removeOverlappingEntries(rng RangeBounds[I]) []*entry[I, K, V] {
	var matches []*entry[I, K, V]
	startC := overlappingStartComp[I, K](rng.StartBound())
	endC := overlappingEndComp[I, K](rng.EndBound())
	m.inner.ascendRange(startC, endC, func(e *entry[I, K, V]) bool {
		matches = append(matches, e)
		return true
	})
	for _, e := range matches {
		m.inner.remove(e)
	}
	return matches
}

// Cut removes the given range from the map and returns what was
// removed: whole entries inside the range and the inner slices of the
// entries straddling its ends, in ascending order, as explicit
// endpoint pairs with their values.
//
// Entries straddling an end of the cut are split: the piece outside the
// cut is rebuilt through the map's TryFromBounds conversion with the
// value copied into it. If any such piece is not representable,
// ErrUnrepresentable is returned and the map is left unchanged; all
// conversions run before any mutation.
//
//	m, _ := nodit.FromSliceStrict(nodit.RangeFromBounds[int], []nodit.Entry[nodit.Range[int], bool]{
//		{nodit.ClosedOpen(2, 8), false},
//	})
//
//	pieces, _ := m.Cut(nodit.ClosedOpen(4, 6))
//	// pieces is [{[4..6) false}], the map now holds [2..4) and [6..8)
func (m *Map[I, K, V]) Cut(rng RangeBounds[I]) ([]Entry[Range[I], V], error) {
	panicIfInvalid[I](rng)

	left, hasLeft := m.inner.find(overlappingStartComp[I, K](rng.StartBound()))
	right, hasRight := m.inner.find(overlappingEndComp[I, K](rng.EndBound()))

	if hasLeft && hasRight && left == right {
		return m.cutSingleStraddle(rng, left)
	}
	return m.cutMultiStraddle(rng, left, right)
}

// cutSingleStraddle handles a cut falling entirely inside one entry.
func (m *Map[I, K, V]) cutSingleStraddle(rng RangeBounds[I], e *entry[I, K, V]) ([]Entry[Range[I], V], error) {
	res := cutRange[I](e.key, rng)

	var (
		before, after       K
		hasBefore, hasAfter bool
	)
	if res.hasBefore {
		k, err := m.from(res.before.start, res.before.end)
		if err != nil {
			return nil, err
		}
		before, hasBefore = k, true
	}
	if res.hasAfter {
		k, err := m.from(res.after.start, res.after.end)
		if err != nil {
			return nil, err
		}
		after, hasAfter = k, true
	}

	value := e.value
	m.inner.remove(e)
	if hasBefore {
		m.insertUnchecked(before, value)
	}
	if hasAfter {
		m.insertUnchecked(after, value)
	}
	return []Entry[Range[I], V]{{Key: res.inside, Value: value}}, nil
}

// cutMultiStraddle handles a cut spanning entry boundaries; either
// straddler may be absent.
func (m *Map[I, K, V]) cutMultiStraddle(rng RangeBounds[I], left, right *entry[I, K, V]) ([]Entry[Range[I], V], error) {
	var (
		leftKeep, rightKeep       K
		hasLeftKeep, hasRightKeep bool
		leftInside, rightInside   Range[I]
	)
	if left != nil {
		res := cutRange[I](left.key, rng)
		leftInside = res.inside
		if res.hasBefore {
			k, err := m.from(res.before.start, res.before.end)
			if err != nil {
				return nil, err
			}
			leftKeep, hasLeftKeep = k, true
		}
	}
	if right != nil {
		res := cutRange[I](right.key, rng)
		rightInside = res.inside
		if res.hasAfter {
			k, err := m.from(res.after.start, res.after.end)
			if err != nil {
				return nil, err
			}
			rightKeep, hasRightKeep = k, true
		}
	}

	// every conversion succeeded, mutation may begin
	var out []Entry[Range[I], V]
	if left != nil {
		m.inner.remove(left)
		out = append(out, Entry[Range[I], V]{Key: leftInside, Value: left.value})
	}
	if right != nil {
		m.inner.remove(right)
	}
	for _, e := range m.removeOverlappingEntries(rng) {
		whole := Range[I]{start: e.key.StartBound(), end: e.key.EndBound()}
		out = append(out, Entry[Range[I], V]{Key: whole, Value: e.value})
	}
	if right != nil {
		out = append(out, Entry[Range[I], V]{Key: rightInside, Value: right.value})
	}

	if hasLeftKeep {
		m.insertUnchecked(leftKeep, left.value)
	}
	if hasRightKeep {
		m.insertUnchecked(rightKeep, right.value)
	}
	return out, nil
}

// Gaps returns the maximal sub-ranges of outer that no entry covers any
// point of, in ascending order.
//
//	m, _ := nodit.FromSliceStrict(nodit.RangeFromBounds[int], []nodit.Entry[nodit.Range[int], bool]{
//		{nodit.ClosedOpen(1, 3), false},
//		{nodit.ClosedOpen(5, 7), true},
//		{nodit.ClosedOpen(9, 100), false},
//	})
//
//	gaps := m.Gaps(nodit.AtLeast(2))
//	// gaps is [[3..5), [7..9), [100..+∞)]
func (m *Map[I, K, V]) Gaps(outer RangeBounds[I]) []Range[I] {
	panicIfInvalid[I](outer)

	outerStart, outerEnd := outer.StartBound(), outer.EndBound()

	// Zero-width synthetic neighbours stand in for coverage beyond
	// outer's endpoints. They carry pre-flipped bounds so that the
	// windows below emit outer's own endpoints for the outermost gaps.
	seq := []Range[I]{{start: outerStart.flip(), end: outerStart.flip()}}
	startC := overlappingStartComp[I, K](outerStart)
	endC := overlappingEndComp[I, K](outerEnd)
	m.inner.ascendRange(startC, endC, func(e *entry[I, K, V]) bool {
		seq = append(seq, Range[I]{start: e.key.StartBound(), end: e.key.EndBound()})
		return true
	})
	seq = append(seq, Range[I]{start: outerEnd.flip(), end: outerEnd.flip()})

	// a synthetic neighbour is redundant when a real entry covers the
	// corresponding endpoint of outer
	if _, found := m.inner.find(startC); found {
		seq = seq[1:]
	}
	if _, found := m.inner.find(endC); found {
		seq = seq[:len(seq)-1]
	}

	var gaps []Range[I]
	for i := 0; i+1 < len(seq); i++ {
		gap := Range[I]{start: seq[i].end.flip(), end: seq[i+1].start.flip()}
		if IsValid[I](gap) {
			gaps = append(gaps, gap)
		}
	}
	return gaps
}

// ContainsRange reports whether the entries cover every point of the
// given range.
func (m *Map[I, K, V]) ContainsRange(rng RangeBounds[I]) bool {
	return len(m.Gaps(rng)) == 0
}

// InsertStrict adds a new entry without modifying other entries. If the
// given range overlaps one or more ranges already in the map,
// ErrOverlap is returned and the map is not updated.
func (m *Map[I, K, V]) InsertStrict(rng K, value V) error {
	panicIfInvalid[I](rng)

	if m.Overlaps(rng) {
		return ErrOverlap
	}
	m.insertUnchecked(rng, value)
	return nil
}

func (m *Map[I, K, V]) insertUnchecked(rng K, value V) {
	m.inner.insert(&entry[I, K, V]{start: startOrd(rng.StartBound()), key: rng, value: value})
}

// insertMerge builds the merged range out of the side neighbours
// reported by matchStart and matchEnd, probing TryFromBounds before any
// mutation, then removes everything the merge swallows and inserts the
// merged range with the given value.
func (m *Map[I, K, V]) insertMerge(
	rng K, value V,
	matchStart, matchEnd func() (*entry[I, K, V], bool),
	removeStart, removeEnd func(),
) (K, error) {
	start, hasStart := matchStart()
	end, hasEnd := matchEnd()

	merged := rng
	var err error
	switch {
	case hasStart && hasEnd:
		merged, err = m.from(start.key.StartBound(), end.key.EndBound())
	case hasStart:
		merged, err = m.from(start.key.StartBound(), rng.EndBound())
	case hasEnd:
		merged, err = m.from(rng.StartBound(), end.key.EndBound())
	}
	if err != nil {
		var zero K
		return zero, err
	}

	m.removeOverlappingEntries(rng)
	removeStart()
	removeEnd()
	m.insertUnchecked(merged, value)
	return merged, nil
}

// InsertMergeTouching adds a new entry and merges it with the entries
// it touches, taking the merged range's endpoints from the touching
// neighbours where present. The merged entry carries the value given
// here, whatever the neighbours held.
//
// If the given range overlaps an existing entry, ErrOverlap is returned.
// If the merged range cannot be rebuilt by the map's TryFromBounds
// conversion, ErrUnrepresentable is returned. Either way the map is not
// updated. On success the merged range is returned.
//
//	m, _ := nodit.FromSliceStrict(nodit.RangeFromBounds[int], []nodit.Entry[nodit.Range[int], bool]{
//		{nodit.ClosedOpen(1, 4), false},
//		{nodit.ClosedOpen(6, 8), true},
//	})
//
//	merged, _ := m.InsertMergeTouching(nodit.ClosedOpen(4, 6), true)
//	// merged is [1..8), the map's only entry, with value true
func (m *Map[I, K, V]) InsertMergeTouching(rng K, value V) (K, error) {
	panicIfInvalid[I](rng)

	if m.Overlaps(rng) {
		var zero K
		return zero, ErrOverlap
	}

	startC := touchingStartComp[I, K](rng.StartBound())
	endC := touchingEndComp[I, K](rng.EndBound())
	return m.insertMerge(rng, value,
		func() (*entry[I, K, V], bool) { return m.inner.find(startC) },
		func() (*entry[I, K, V], bool) { return m.inner.find(endC) },
		func() { m.removeFound(startC) },
		func() { m.removeFound(endC) },
	)
}

// InsertMergeTouchingIfValuesEqual is InsertMergeTouching where a
// touching neighbour only takes part in the merge when eq reports its
// value equal to the value being inserted. Each side is considered
// independently.
func (m *Map[I, K, V]) InsertMergeTouchingIfValuesEqual(rng K, value V, eq func(a, b V) bool) (K, error) {
	panicIfInvalid[I](rng)

	if m.Overlaps(rng) {
		var zero K
		return zero, ErrOverlap
	}

	startC := touchingStartComp[I, K](rng.StartBound())
	endC := touchingEndComp[I, K](rng.EndBound())
	matchStart := func() (*entry[I, K, V], bool) {
		if e, ok := m.inner.find(startC); ok && eq(e.value, value) {
			return e, true
		}
		return nil, false
	}
	matchEnd := func() (*entry[I, K, V], bool) {
		if e, ok := m.inner.find(endC); ok && eq(e.value, value) {
			return e, true
		}
		return nil, false
	}
	return m.insertMerge(rng, value,
		matchStart,
		matchEnd,
		func() {
			if e, ok := matchStart(); ok {
				m.inner.remove(e)
			}
		},
		func() {
			if e, ok := matchEnd(); ok {
				m.inner.remove(e)
			}
		},
	)
}

// InsertMergeOverlapping adds a new entry and merges it with every
// entry it overlaps. The merged range spans from the least start
// endpoint among the new range and its overlappers to the greatest end
// endpoint, and carries the value given here.
//
// If the merged range cannot be rebuilt by the map's TryFromBounds
// conversion, ErrUnrepresentable is returned and the map is not
// updated. On success the merged range is returned.
func (m *Map[I, K, V]) InsertMergeOverlapping(rng K, value V) (K, error) {
	panicIfInvalid[I](rng)

	startC := overlappingStartComp[I, K](rng.StartBound())
	endC := overlappingEndComp[I, K](rng.EndBound())
	return m.insertMerge(rng, value,
		func() (*entry[I, K, V], bool) { return m.inner.find(startC) },
		func() (*entry[I, K, V], bool) { return m.inner.find(endC) },
		func() {},
		func() {},
	)
}

// InsertMergeTouchingOrOverlapping adds a new entry and merges it with
// every entry it touches or overlaps. On each side the touching
// neighbour wins over the overlapping one when both exist, since it
// reaches further out. The merged entry carries the value given here.
//
// If the merged range cannot be rebuilt by the map's TryFromBounds
// conversion, ErrUnrepresentable is returned and the map is not
// updated. On success the merged range is returned.
func (m *Map[I, K, V]) InsertMergeTouchingOrOverlapping(rng K, value V) (K, error) {
	panicIfInvalid[I](rng)

	touchStartC := touchingStartComp[I, K](rng.StartBound())
	touchEndC := touchingEndComp[I, K](rng.EndBound())
	overlapStartC := overlappingStartComp[I, K](rng.StartBound())
	overlapEndC := overlappingEndComp[I, K](rng.EndBound())
	return m.insertMerge(rng, value,
		func() (*entry[I, K, V], bool) {
			if e, ok := m.inner.find(touchStartC); ok {
				return e, true
			}
			return m.inner.find(overlapStartC)
		},
		func() (*entry[I, K, V], bool) {
			if e, ok := m.inner.find(touchEndC); ok {
				return e, true
			}
			return m.inner.find(overlapEndC)
		},
		func() { m.removeFound(touchStartC) },
		func() { m.removeFound(touchEndC) },
	)
}

// InsertOverwrite adds a new entry and overwrites any overlapping
// portion of existing entries, equivalent to Cut followed by
// InsertStrict. Straddling entries are trimmed, with Cut's atomicity
// guarantee: an unrepresentable leftover piece means
// ErrUnrepresentable and an unchanged map.
//
//	m, _ := nodit.FromSliceStrict(nodit.RangeFromBounds[int], []nodit.Entry[nodit.Range[int], bool]{
//		{nodit.ClosedOpen(2, 8), false},
//	})
//
//	_ = m.InsertOverwrite(nodit.ClosedOpen(4, 6), true)
//	// the map now holds [2..4)=false, [4..6)=true, [6..8)=false
func (m *Map[I, K, V]) InsertOverwrite(rng K, value V) error {
	panicIfInvalid[I](rng)

	if _, err := m.Cut(rng); err != nil {
		return err
	}
	m.insertUnchecked(rng, value)
	return nil
}

func (m *Map[I, K, V]) removeFound(c rangeComp[I, K]) {
	if e, ok := m.inner.find(c); ok {
		m.inner.remove(e)
	}
}

func (m *Map[I, K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	m.inner.scan(func(e *entry[I, K, V]) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%s=%v", formatRange[I](e.key), e.value)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

// panicIfInvalid enforces the precondition shared by every operation
// accepting a range.
func panicIfInvalid[I cmp.Ordered](r RangeBounds[I]) {
	if !IsValid[I](r) {
		panic("nodit: invalid range " + formatRange[I](r))
	}
}

// Comparator factories ==========================
//
// The four factories below are, together with the start-order less
// function of the tree, the only bridge between stored ranges and the
// ordered container. Each produces a unary comparator locating the
// stored range that overlaps, or touches, one endpoint of a query.

func overlappingStartComp[I cmp.Ordered, K RangeBounds[I]](start Bound[I]) rangeComp[I, K] {
	bo := startOrd(start)
	return rangeComp[I, K]{pivot: bo, cmp: func(k K) int {
		return cmpRangeToBound[I](k, bo)
	}}
}

func overlappingEndComp[I cmp.Ordered, K RangeBounds[I]](end Bound[I]) rangeComp[I, K] {
	bo := endOrd(end)
	return rangeComp[I, K]{pivot: bo, cmp: func(k K) int {
		return cmpRangeToBound[I](k, bo)
	}}
}

func touchingStartComp[I cmp.Ordered, K RangeBounds[I]](start Bound[I]) rangeComp[I, K] {
	bo := startOrd(start)
	return rangeComp[I, K]{pivot: bo, cmp: func(k K) int {
		end := k.EndBound()
		if abuts(end, start) {
			return 0
		}
		if c := endOrd(end).compare(bo); c != 0 {
			return c
		}
		// same-point contact with matching inclusivity is overlap or
		// separation, never touch; steer the search past it
		return 1
	}}
}

func touchingEndComp[I cmp.Ordered, K RangeBounds[I]](end Bound[I]) rangeComp[I, K] {
	bo := endOrd(end)
	return rangeComp[I, K]{pivot: bo, cmp: func(k K) int {
		kstart := k.StartBound()
		if abuts(end, kstart) {
			return 0
		}
		if c := startOrd(kstart).compare(bo); c != 0 {
			return c
		}
		return -1
	}}
}
