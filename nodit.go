package nodit

import "cmp"

// Open returns a range that contains all values strictly greater than
// lower and strictly less than upper.
//
//	(lower..upper) = {x | lower < x < upper}
func Open[I cmp.Ordered](lower, upper I) Range[I] {
	return Range[I]{start: Excluded(lower), end: Excluded(upper)}
}

// Closed returns a range that contains all values greater than or equal
// to lower and less than or equal to upper.
//
//	[lower..upper] = {x | lower <= x <= upper}
func Closed[I cmp.Ordered](lower, upper I) Range[I] {
	return Range[I]{start: Included(lower), end: Included(upper)}
}

// ClosedOpen returns a range that contains all values greater than or
// equal to lower and strictly less than upper.
//
//	[lower..upper) = {x | lower <= x < upper}
func ClosedOpen[I cmp.Ordered](lower, upper I) Range[I] {
	return Range[I]{start: Included(lower), end: Excluded(upper)}
}

// OpenClosed returns a range that contains all values strictly greater
// than lower and less than or equal to upper.
//
//	(lower..upper] = {x | lower < x <= upper}
func OpenClosed[I cmp.Ordered](lower, upper I) Range[I] {
	return Range[I]{start: Excluded(lower), end: Included(upper)}
}

// LessThan returns a range that contains all values strictly less than
// upper.
//
//	(-∞..upper) = {x | x < upper}
func LessThan[I cmp.Ordered](upper I) Range[I] {
	return Range[I]{start: Unbounded[I](), end: Excluded(upper)}
}

// AtMost returns a range that contains all values less than or equal to
// upper.
//
//	(-∞..upper] = {x | x <= upper}
func AtMost[I cmp.Ordered](upper I) Range[I] {
	return Range[I]{start: Unbounded[I](), end: Included(upper)}
}

// GreaterThan returns a range that contains all values strictly greater
// than lower.
//
//	(lower..+∞) = {x | lower < x}
func GreaterThan[I cmp.Ordered](lower I) Range[I] {
	return Range[I]{start: Excluded(lower), end: Unbounded[I]()}
}

// AtLeast returns a range that contains all values greater than or
// equal to lower.
//
//	[lower..+∞) = {x | lower <= x}
func AtLeast[I cmp.Ordered](lower I) Range[I] {
	return Range[I]{start: Included(lower), end: Unbounded[I]()}
}

// All returns a range that contains every value of type I.
//
//	(-∞..+∞) = {x}
func All[I cmp.Ordered]() Range[I] {
	return Range[I]{start: Unbounded[I](), end: Unbounded[I]()}
}

// Singleton returns a range that contains only the given value.
// The returned range is closed on both ends.
//
//	[value..value] = {value}
func Singleton[I cmp.Ordered](value I) Range[I] {
	return Closed(value, value)
}
