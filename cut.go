package nodit

import "cmp"

// cutResult holds the up-to-three pieces left when one range is cut out
// of another: the part of base before the cut, the part inside it, and
// the part after it.
type cutResult[I cmp.Ordered] struct {
	before    Range[I]
	inside    Range[I]
	after     Range[I]
	hasBefore bool
	hasInside bool
	hasAfter  bool
}

// cutRange splits base around cut. The leftover pieces take the flipped
// bound of the cut range on the side they meet it, so that together the
// pieces and the cut tile base exactly with no point shared and none
// lost.
func cutRange[I cmp.Ordered](base, cut RangeBounds[I]) cutResult[I] {
	var res cutResult[I]

	baseStart, baseEnd := base.StartBound(), base.EndBound()
	cutStart, cutEnd := cut.StartBound(), cut.EndBound()

	if startOrd(baseStart).compare(startOrd(cutStart)) < 0 {
		res.before = Range[I]{start: baseStart, end: cutStart.flip()}
		res.hasBefore = true
	}
	if endOrd(cutEnd).compare(endOrd(baseEnd)) < 0 {
		res.after = Range[I]{start: cutEnd.flip(), end: baseEnd}
		res.hasAfter = true
	}
	if rangesOverlap[I](base, cut) {
		inside := Range[I]{start: baseStart, end: baseEnd}
		if startOrd(cutStart).compare(startOrd(inside.start)) > 0 {
			inside.start = cutStart
		}
		if endOrd(cutEnd).compare(endOrd(inside.end)) < 0 {
			inside.end = cutEnd
		}
		res.inside = inside
		res.hasInside = true
	}
	return res
}
