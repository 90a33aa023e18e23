package nodit

import (
	"cmp"

	"github.com/tidwall/btree"
)

// entry is what the ordered container stores: the user's range key, its
// value, and the precomputed start position the tree is sorted on.
// Entries live behind pointers so that mutable accessors can hand out
// *V handles. Probes used to navigate the tree are entries with only
// start set; the less function never looks at anything else.
type entry[I cmp.Ordered, K RangeBounds[I], V any] struct {
	start boundOrd[I]
	key   K
	value V
}

// rangeComp is a unary comparator over stored keys together with the
// start-order pivot a tree search radiates out from. The comparator
// reports the position of a stored range relative to the search target:
// negative when the range lies before it, zero on a match, positive
// when the range lies after it. Along the tree's start order the
// reported values are monotone, which is what makes pivot-based
// navigation sound.
type rangeComp[I cmp.Ordered, K RangeBounds[I]] struct {
	pivot boundOrd[I]
	cmp   func(K) int
}

// tree adapts the B-tree to the navigation the map engine needs: point
// search, bound search and ranged traversal, all driven by unary
// comparators over stored keys.
type tree[I cmp.Ordered, K RangeBounds[I], V any] struct {
	tr *btree.BTreeG[*entry[I, K, V]]
}

func newTree[I cmp.Ordered, K RangeBounds[I], V any]() tree[I, K, V] {
	return tree[I, K, V]{
		tr: btree.NewBTreeGOptions(func(a, b *entry[I, K, V]) bool {
			return a.start.compare(b.start) < 0
		}, btree.Options{NoLocks: true}),
	}
}

func (t tree[I, K, V]) probe(pivot boundOrd[I]) *entry[I, K, V] {
	return &entry[I, K, V]{start: pivot}
}

func (t tree[I, K, V]) len() int {
	return t.tr.Len()
}

func (t tree[I, K, V]) insert(e *entry[I, K, V]) {
	t.tr.Set(e)
}

func (t tree[I, K, V]) remove(e *entry[I, K, V]) {
	t.tr.Delete(e)
}

func (t tree[I, K, V]) first() (*entry[I, K, V], bool) {
	return t.tr.Min()
}

func (t tree[I, K, V]) last() (*entry[I, K, V], bool) {
	return t.tr.Max()
}

func (t tree[I, K, V]) scan(visit func(*entry[I, K, V]) bool) {
	t.tr.Scan(visit)
}

// find returns the entry the comparator reports a match for, if any. At
// most one entry can match any of the engine's comparators because the
// stored ranges never overlap.
func (t tree[I, K, V]) find(c rangeComp[I, K]) (*entry[I, K, V], bool) {
	var match *entry[I, K, V]
	t.tr.Descend(t.probe(c.pivot), func(e *entry[I, K, V]) bool {
		switch c.cmp(e.key) {
		case 0:
			match = e
			return false
		case 1:
			return true // overshot, keep walking down
		default:
			return false
		}
	})
	if match == nil {
		t.tr.Ascend(t.probe(c.pivot), func(e *entry[I, K, V]) bool {
			switch c.cmp(e.key) {
			case 0:
				match = e
				return false
			case -1:
				return true // undershot, keep walking up
			default:
				return false
			}
		})
	}
	return match, match != nil
}

// firstAtOrAfter returns the least entry the comparator does not report
// as lying before the search target.
func (t tree[I, K, V]) firstAtOrAfter(c rangeComp[I, K]) (*entry[I, K, V], bool) {
	var match *entry[I, K, V]
	t.tr.Descend(t.probe(c.pivot), func(e *entry[I, K, V]) bool {
		if c.cmp(e.key) < 0 {
			return false
		}
		match = e
		return true
	})
	if match == nil {
		t.tr.Ascend(t.probe(c.pivot), func(e *entry[I, K, V]) bool {
			if c.cmp(e.key) < 0 {
				return true
			}
			match = e
			return false
		})
	}
	return match, match != nil
}

// lastAtOrBefore returns the greatest entry the comparator does not
// report as lying after the search target.
func (t tree[I, K, V]) lastAtOrBefore(c rangeComp[I, K]) (*entry[I, K, V], bool) {
	var match *entry[I, K, V]
	t.tr.Ascend(t.probe(c.pivot), func(e *entry[I, K, V]) bool {
		if c.cmp(e.key) > 0 {
			return false
		}
		match = e
		return true
	})
	if match == nil {
		t.tr.Descend(t.probe(c.pivot), func(e *entry[I, K, V]) bool {
			if c.cmp(e.key) > 0 {
				return true
			}
			match = e
			return false
		})
	}
	return match, match != nil
}

// ascendRange visits, in ascending order, every entry lying between the
// two comparators, both sides included. The tree must not be mutated
// from inside visit.
func (t tree[I, K, V]) ascendRange(startC, endC rangeComp[I, K], visit func(*entry[I, K, V]) bool) {
	from, ok := t.firstAtOrAfter(startC)
	if !ok {
		return
	}
	t.tr.Ascend(from, func(e *entry[I, K, V]) bool {
		if endC.cmp(e.key) > 0 {
			return false
		}
		return visit(e)
	})
}
