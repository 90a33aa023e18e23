package nodit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustSet(t *testing.T, ranges ...Range[int]) *Set[int, Range[int]] {
	t.Helper()
	s, err := SetFromSliceStrict[int, Range[int]](RangeFromBounds[int], ranges)
	assert.NoError(t, err)
	return s
}

func TestSetInsertStrict(t *testing.T) {
	s := NewRangeSet[int]()
	assert.True(t, s.IsEmpty())

	assert.NoError(t, s.InsertStrict(ClosedOpen(5, 10)))
	assert.ErrorIs(t, s.InsertStrict(ClosedOpen(5, 10)), ErrOverlap)
	assert.ErrorIs(t, s.InsertStrict(Closed(9, 12)), ErrOverlap)
	assert.NoError(t, s.InsertStrict(ClosedOpen(10, 12)))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []Range[int]{ClosedOpen(5, 10), ClosedOpen(10, 12)}, s.Ranges())
}

func TestSetPointQueries(t *testing.T) {
	s := mustSet(t, ClosedOpen(1, 4), ClosedOpen(8, 100))

	assert.True(t, s.ContainsPoint(3))
	assert.False(t, s.ContainsPoint(4))

	rng, _, ok := s.GetAtPoint(2)
	assert.True(t, ok)
	assert.Equal(t, ClosedOpen(1, 4), rng)

	_, gap, ok := s.GetAtPoint(5)
	assert.False(t, ok)
	assert.Equal(t, ClosedOpen(4, 8), gap)
}

func TestSetOverlapping(t *testing.T) {
	s := mustSet(t, ClosedOpen(1, 4), ClosedOpen(4, 8), ClosedOpen(8, 100))

	assert.True(t, s.Overlaps(ClosedOpen(2, 8)))
	assert.False(t, s.Overlaps(AtLeast(100)))

	var got []Range[int]
	for rng := range s.Overlapping(ClosedOpen(2, 8)) {
		got = append(got, rng)
	}
	assert.Equal(t, []Range[int]{ClosedOpen(1, 4), ClosedOpen(4, 8)}, got)
}

func TestSetRemoveAndCut(t *testing.T) {
	s := mustSet(t, ClosedOpen(1, 4), ClosedOpen(4, 8), ClosedOpen(8, 100))

	removed := s.RemoveOverlapping(ClosedOpen(2, 8))
	assert.Equal(t, []Range[int]{ClosedOpen(1, 4), ClosedOpen(4, 8)}, removed)
	assert.Equal(t, []Range[int]{ClosedOpen(8, 100)}, s.Ranges())

	pieces, err := s.Cut(ClosedOpen(50, 60))
	assert.NoError(t, err)
	assert.Equal(t, []Range[int]{ClosedOpen(50, 60)}, pieces)
	assert.Equal(t, []Range[int]{ClosedOpen(8, 50), ClosedOpen(60, 100)}, s.Ranges())
}

func TestSetGapsAndContainsRange(t *testing.T) {
	s := mustSet(t, ClosedOpen(1, 3), ClosedOpen(5, 7), ClosedOpen(9, 100))

	assert.Equal(t,
		[]Range[int]{ClosedOpen(3, 5), ClosedOpen(7, 9), AtLeast(100)},
		s.Gaps(AtLeast(2)))

	assert.True(t, s.ContainsRange(ClosedOpen(1, 3)))
	assert.False(t, s.ContainsRange(ClosedOpen(2, 6)))
}

func TestSetMerges(t *testing.T) {
	t.Run("touching", func(t *testing.T) {
		s := mustSet(t, ClosedOpen(1, 4), ClosedOpen(6, 8))
		merged, err := s.InsertMergeTouching(ClosedOpen(4, 6))
		assert.NoError(t, err)
		assert.Equal(t, ClosedOpen(1, 8), merged)
		assert.Equal(t, []Range[int]{ClosedOpen(1, 8)}, s.Ranges())
	})

	t.Run("touching rejects overlap", func(t *testing.T) {
		s := mustSet(t, ClosedOpen(1, 4), ClosedOpen(6, 8))
		_, err := s.InsertMergeTouching(ClosedOpen(4, 8))
		assert.ErrorIs(t, err, ErrOverlap)
		assert.Equal(t, []Range[int]{ClosedOpen(1, 4), ClosedOpen(6, 8)}, s.Ranges())
	})

	t.Run("overlapping", func(t *testing.T) {
		s := mustSet(t, ClosedOpen(1, 4), ClosedOpen(6, 8))
		merged, err := s.InsertMergeOverlapping(ClosedOpen(3, 7))
		assert.NoError(t, err)
		assert.Equal(t, ClosedOpen(1, 8), merged)
		assert.Equal(t, []Range[int]{ClosedOpen(1, 8)}, s.Ranges())
	})

	t.Run("touching or overlapping", func(t *testing.T) {
		s := mustSet(t, ClosedOpen(1, 4), ClosedOpen(6, 8))
		merged, err := s.InsertMergeTouchingOrOverlapping(ClosedOpen(4, 7))
		assert.NoError(t, err)
		assert.Equal(t, ClosedOpen(1, 8), merged)
		assert.Equal(t, []Range[int]{ClosedOpen(1, 8)}, s.Ranges())
	})
}

func TestSetFirstLast(t *testing.T) {
	s := NewRangeSet[int]()
	_, ok := s.First()
	assert.False(t, ok)

	s = mustSet(t, ClosedOpen(1, 4), ClosedOpen(8, 100))
	first, ok := s.First()
	assert.True(t, ok)
	assert.Equal(t, ClosedOpen(1, 4), first)
	last, ok := s.Last()
	assert.True(t, ok)
	assert.Equal(t, ClosedOpen(8, 100), last)
}

func TestSetString(t *testing.T) {
	s := mustSet(t, ClosedOpen(1, 4), AtLeast(8))
	assert.EqualValues(t, "{[1..4), [8..+∞)}", s.String())
}
