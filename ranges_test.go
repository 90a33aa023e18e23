package nodit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elodin-sys/nodit"
)

func TestRangeIsValid(t *testing.T) {
	tests := []struct {
		r    nodit.Range[int]
		want bool
	}{
		{r: nodit.Closed(3, 5), want: true},
		{r: nodit.Closed(5, 5), want: true},
		{r: nodit.ClosedOpen(5, 5), want: false},
		{r: nodit.OpenClosed(5, 5), want: false},
		{r: nodit.Open(5, 5), want: false},
		{r: nodit.Closed(6, 5), want: false},
		{r: nodit.Open(3, 4), want: true},
		{r: nodit.All[int](), want: true},
		{r: nodit.AtLeast(3), want: true},
		{r: nodit.LessThan(3), want: true},
		{r: nodit.NewRange(nodit.Excluded(2), nodit.Included(2)), want: false},
	}

	for _, tt := range tests {
		if got := tt.r.IsValid(); got != tt.want {
			t.Errorf("IsValid(%s) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func checkContains(t *testing.T, r nodit.Range[int]) {
	t.Helper()
	assert.False(t, r.Contains(4))
	assert.True(t, r.Contains(5))
	assert.True(t, r.Contains(7))
	assert.False(t, r.Contains(8))
}

func TestRangeContains(t *testing.T) {
	checkContains(t, nodit.Closed(5, 7))
	checkContains(t, nodit.Open(4, 8))
	checkContains(t, nodit.ClosedOpen(5, 8))
	checkContains(t, nodit.OpenClosed(4, 7))

	assert.True(t, nodit.AtMost(4).Contains(4))
	assert.False(t, nodit.LessThan(4).Contains(4))
	assert.True(t, nodit.AtLeast(4).Contains(4))
	assert.False(t, nodit.GreaterThan(4).Contains(4))
	assert.True(t, nodit.All[int]().Contains(4))
	assert.True(t, nodit.Singleton(4).Contains(4))
	assert.False(t, nodit.Singleton(4).Contains(5))
}

func TestRangeOverlaps(t *testing.T) {
	tests := []struct {
		a, b nodit.Range[int]
		want bool
	}{
		{a: nodit.Closed(1, 4), b: nodit.Closed(4, 6), want: true},
		{a: nodit.ClosedOpen(1, 4), b: nodit.Closed(4, 6), want: false},
		{a: nodit.Closed(1, 4), b: nodit.OpenClosed(4, 6), want: false},
		{a: nodit.ClosedOpen(1, 4), b: nodit.OpenClosed(4, 6), want: false},
		{a: nodit.Closed(1, 4), b: nodit.Closed(3, 6), want: true},
		{a: nodit.Closed(1, 4), b: nodit.Closed(5, 6), want: false},
		{a: nodit.AtMost(4), b: nodit.AtLeast(4), want: true},
		{a: nodit.LessThan(4), b: nodit.AtLeast(4), want: false},
		{a: nodit.All[int](), b: nodit.Singleton(9), want: true},
		{a: nodit.Closed(1, 9), b: nodit.Open(2, 3), want: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Overlaps(tt.b), "%s overlaps %s", tt.a, tt.b)
		assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "%s overlaps %s", tt.b, tt.a)
	}
}

func TestRangeTouches(t *testing.T) {
	tests := []struct {
		a, b nodit.Range[int]
		want bool
	}{
		{a: nodit.ClosedOpen(1, 4), b: nodit.Closed(4, 6), want: true},
		{a: nodit.Closed(1, 4), b: nodit.OpenClosed(4, 6), want: true},
		{a: nodit.Closed(1, 4), b: nodit.Closed(4, 6), want: false},         // overlap
		{a: nodit.ClosedOpen(1, 4), b: nodit.OpenClosed(4, 6), want: false}, // 4 lies between
		{a: nodit.Closed(1, 4), b: nodit.Closed(5, 6), want: false},
		{a: nodit.AtMost(4), b: nodit.GreaterThan(4), want: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Touches(tt.b), "%s touches %s", tt.a, tt.b)
		assert.Equal(t, tt.want, tt.b.Touches(tt.a), "%s touches %s", tt.b, tt.a)
	}
}

func TestRangeEncloses(t *testing.T) {
	r := nodit.Open(2, 5)

	assert.True(t, r.Encloses(r))
	assert.True(t, r.Encloses(nodit.Open(2, 4)))
	assert.True(t, r.Encloses(nodit.Open(3, 5)))
	assert.True(t, r.Encloses(nodit.Closed(3, 4)))
	assert.False(t, r.Encloses(nodit.Closed(2, 5)))
	assert.False(t, r.Encloses(nodit.Open(1, 6)))
	assert.False(t, r.Encloses(nodit.AtLeast(3)))

	assert.True(t, nodit.Closed(3, 6).Encloses(nodit.Closed(4, 5)))
	assert.False(t, nodit.OpenClosed(3, 6).Encloses(nodit.Closed(3, 6)))
	assert.True(t, nodit.All[int]().Encloses(nodit.AtMost(3)))
}

func TestRangeIntersection(t *testing.T) {
	got, ok := nodit.Closed(1, 5).Intersection(nodit.Open(3, 7))
	assert.True(t, ok)
	assert.Equal(t, nodit.OpenClosed(3, 5), got)

	got, ok = nodit.Closed(1, 5).Intersection(nodit.Closed(5, 7))
	assert.True(t, ok)
	assert.Equal(t, nodit.Singleton(5), got)

	_, ok = nodit.ClosedOpen(1, 5).Intersection(nodit.ClosedOpen(5, 7))
	assert.False(t, ok)

	got, ok = nodit.All[int]().Intersection(nodit.Open(3, 7))
	assert.True(t, ok)
	assert.Equal(t, nodit.Open(3, 7), got)
}

func TestRangeSpan(t *testing.T) {
	assert.Equal(t, nodit.ClosedOpen(1, 7), nodit.Closed(1, 3).Span(nodit.Open(5, 7)))
	assert.Equal(t, nodit.Closed(1, 7), nodit.Closed(5, 7).Span(nodit.Closed(1, 3)))
	assert.Equal(t, nodit.AtLeast(1), nodit.Closed(1, 3).Span(nodit.GreaterThan(5)))
	assert.Equal(t, nodit.Closed(1, 5), nodit.Closed(1, 5).Span(nodit.Closed(2, 3)))
}

func TestRangeGap(t *testing.T) {
	got, ok := nodit.Closed(1, 5).Gap(nodit.Open(7, 10))
	assert.True(t, ok)
	assert.Equal(t, nodit.OpenClosed(5, 7), got)

	got, ok = nodit.Open(7, 10).Gap(nodit.Closed(1, 5))
	assert.True(t, ok)
	assert.Equal(t, nodit.OpenClosed(5, 7), got)

	_, ok = nodit.Closed(1, 5).Gap(nodit.Closed(4, 8))
	assert.False(t, ok)

	// adjacent ranges leave no point between them
	_, ok = nodit.ClosedOpen(1, 5).Gap(nodit.ClosedOpen(5, 7))
	assert.False(t, ok)
}

func TestRangeString(t *testing.T) {
	assert.EqualValues(t, "[3..5]", nodit.Closed(3, 5).String())
	assert.EqualValues(t, "(3..5)", nodit.Open(3, 5).String())
	assert.EqualValues(t, "[3..5)", nodit.ClosedOpen(3, 5).String())
	assert.EqualValues(t, "(3..5]", nodit.OpenClosed(3, 5).String())
	assert.EqualValues(t, "(-∞..5]", nodit.AtMost(5).String())
	assert.EqualValues(t, "(-∞..5)", nodit.LessThan(5).String())
	assert.EqualValues(t, "[5..+∞)", nodit.AtLeast(5).String())
	assert.EqualValues(t, "(5..+∞)", nodit.GreaterThan(5).String())
	assert.EqualValues(t, "(-∞..+∞)", nodit.All[int]().String())
}

func TestRangeEqual(t *testing.T) {
	assert.True(t, nodit.Closed(3, 5).Equal(nodit.Closed(3, 5)))
	assert.False(t, nodit.Closed(3, 5).Equal(nodit.ClosedOpen(3, 5)))
	assert.False(t, nodit.Open(1, 4).Equal(nodit.Closed(2, 3)))
	assert.True(t, nodit.Singleton(4).Equal(nodit.Closed(4, 4)))
}

func TestRangeBoundAccess(t *testing.T) {
	r := nodit.OpenClosed(3, 5)
	assert.Equal(t, nodit.Excluded(3), r.StartBound())
	assert.Equal(t, nodit.Included(5), r.EndBound())

	all := nodit.All[int]()
	assert.True(t, all.StartBound().IsUnbounded())
	assert.True(t, all.EndBound().IsUnbounded())
}
