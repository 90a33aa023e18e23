/*
Package nodit implements an ordered map of non-overlapping ranges.

A range (or "interval") defines the boundaries around a contiguous span
of values of some ordered point type; for example, "integers from 1 to
100 inclusive". A Map associates such ranges with values under the
guarantee that no two stored ranges share a point, and a Set keeps bare
ranges under the same guarantee. On top of point lookup the containers
support overlap queries, gap enumeration, cutting a range out of the
stored coverage, and several merging insertion variants that unify
touching or overlapping neighbours.

# Types of ranges

Each end of a range may be bounded or unbounded. If bounded, there is an
associated endpoint value, and the range is considered to be either open
(does not include the endpoint) or closed (includes the endpoint) on
that side. With three possibilities on each side, this yields nine basic
types of ranges, enumerated below. (Notation: a square bracket ([])
indicates that the range is closed on that side; a parenthesis (())
means it is either open or unbounded. The construct {x | statement} is
read "the set of all x such that statement".)

  - Open: (a..b) -> {x | a < x < b}
  - Closed: [a..b] -> {x | a <= x <= b}
  - OpenClosed: (a..b] -> {x | a < x <= b}
  - ClosedOpen: [a..b) -> {x | a <= x < b}
  - GreaterThan: (a..+∞) -> {x | x > a}
  - AtLeast: [a..+∞) -> {x | x >= a}
  - LessThan: (-∞..b) -> {x | x < b}
  - AtMost: (-∞..b] -> {x | x <= b}
  - All: (-∞..+∞) -> {x}

The built-in Range type represents all nine. A Map does not require its
keys to be Range, though: any type exposing its two endpoints through
the RangeBounds interface can be stored, including representations that
deliberately support only some of the shapes (say, half-open only). The
map never fabricates a key shape on its own; whenever an operation has
to build a new key (the leftovers of a cut, the union of a merge) it
goes through the TryFromBounds conversion supplied at construction, and
backs out of the whole operation when the conversion reports the shape
unrepresentable.

# Invalid ranges

A range is valid when its start endpoint does not come after its end
endpoint, where a shared point is allowed only if both sides include it:
[5..5] is valid, [5..5), (5..5] and (5..5) are not, and neither is
[6..5]. Passing an invalid range to any Map or Set operation is a
precondition violation and panics. Operations never construct invalid
ranges themselves; IsValid is exported for checking ranges built from
untrusted endpoints.

# Warnings

  - Use immutable value types for points and range keys, if at all
    possible. If you must use a mutable type, do not allow the stored
    values to mutate in ways that change their order!
  - Containers are not synchronised. Concurrent readers are fine;
    mutation requires exclusive access, and iterators must not outlive
    mutations of the container they borrow from.
*/
package nodit
