package nodit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundAccessors(t *testing.T) {
	in := Included(5)
	assert.True(t, in.IsIncluded())
	assert.False(t, in.IsExcluded())
	assert.False(t, in.IsUnbounded())
	assert.EqualValues(t, 5, in.Endpoint())

	ex := Excluded(5)
	assert.True(t, ex.IsExcluded())
	assert.EqualValues(t, 5, ex.Endpoint())

	un := Unbounded[int]()
	assert.True(t, un.IsUnbounded())
	_, err := un.EndpointE()
	assert.ErrorIs(t, err, ErrSideUnbounded)

	point, err := in.EndpointE()
	assert.NoError(t, err)
	assert.EqualValues(t, 5, point)
}

func TestBoundFlip(t *testing.T) {
	assert.Equal(t, Excluded(3), Included(3).flip())
	assert.Equal(t, Included(3), Excluded(3).flip())
	assert.Equal(t, Unbounded[int](), Unbounded[int]().flip())
}

func TestBoundString(t *testing.T) {
	assert.EqualValues(t, "Included(5)", Included(5).String())
	assert.EqualValues(t, "Excluded(5)", Excluded(5).String())
	assert.EqualValues(t, "Unbounded", Unbounded[int]().String())
}

func TestOrderingBoundOrds(t *testing.T) {
	a := startOrd(Unbounded[int]())
	b := endOrd(Excluded(0))
	c := startOrd(Included(0))
	d := startOrd(Excluded(0))
	e := endOrd(Excluded(1))
	f := pointOrd(1)
	g := startOrd(Excluded(1))
	h := endOrd(Unbounded[int]())

	testCompareAndEquals(t, []boundOrd[int]{a, b, c, d, e, f, g, h})
}

func testCompareAndEquals(t *testing.T, os []boundOrd[int]) {
	for i := range os {
		v := os[i]
		for j := 0; j < i; j++ {
			lesser := os[j]
			assert.True(t, lesser.compare(v) < 0)
			assert.True(t, v.compare(lesser) > 0)
		}

		assert.EqualValues(t, 0, v.compare(v)) // self compare

		for j := i + 1; j < len(os); j++ {
			greater := os[j]
			assert.True(t, greater.compare(v) > 0)
			assert.True(t, v.compare(greater) < 0)
		}
	}
}

// An inclusive bound sits at exactly its point whichever side it came
// from; the two sides of the same exclusive point land on opposite
// sides of it.
func TestBoundOrdsAtSharedPoint(t *testing.T) {
	assert.EqualValues(t, 0, startOrd(Included(5)).compare(endOrd(Included(5))))
	assert.EqualValues(t, 0, pointOrd(5).compare(startOrd(Included(5))))

	assert.True(t, endOrd(Excluded(5)).compare(startOrd(Included(5))) < 0)
	assert.True(t, startOrd(Excluded(5)).compare(endOrd(Included(5))) > 0)
	assert.True(t, endOrd(Excluded(5)).compare(startOrd(Excluded(5))) < 0)
}

func TestCutRange(t *testing.T) {
	t.Run("interior", func(t *testing.T) {
		res := cutRange[int](ClosedOpen(2, 8), ClosedOpen(4, 6))
		assert.True(t, res.hasBefore)
		assert.Equal(t, ClosedOpen(2, 4), res.before)
		assert.True(t, res.hasInside)
		assert.Equal(t, ClosedOpen(4, 6), res.inside)
		assert.True(t, res.hasAfter)
		assert.Equal(t, ClosedOpen(6, 8), res.after)
	})

	t.Run("flip keeps closed cuts out of the leftovers", func(t *testing.T) {
		res := cutRange[int](ClosedOpen(2, 8), Closed(4, 6))
		assert.Equal(t, ClosedOpen(2, 4), res.before)
		assert.Equal(t, Closed(4, 6), res.inside)
		assert.Equal(t, Open(6, 8), res.after)
	})

	t.Run("overhang on one side only", func(t *testing.T) {
		res := cutRange[int](ClosedOpen(2, 8), AtMost(5))
		assert.False(t, res.hasBefore)
		assert.True(t, res.hasInside)
		assert.Equal(t, Closed(2, 5), res.inside)
		assert.True(t, res.hasAfter)
		assert.Equal(t, Open(5, 8), res.after)
	})

	t.Run("disjoint leaves no inside", func(t *testing.T) {
		res := cutRange[int](ClosedOpen(2, 4), ClosedOpen(6, 8))
		assert.True(t, res.hasBefore)
		assert.False(t, res.hasInside)
		assert.False(t, res.hasAfter)
	})
}
