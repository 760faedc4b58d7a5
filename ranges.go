package segtree

import "fmt"

type boundKind uint8

const (
	unbounded boundKind = iota
	included
	excluded
)

// Bound is one end of a Range: unbounded, or an item index which is either
// included in or excluded from the range.
type Bound struct {
	kind boundKind
	at   int
}

// Unbounded returns a bound extending to the respective end of the tree.
func Unbounded() Bound { return Bound{} }

// Included returns a bound containing index i.
func Included(i int) Bound { return Bound{kind: included, at: i} }

// Excluded returns a bound stopping right before (or after) index i.
func Excluded(i int) Bound { return Bound{kind: excluded, at: i} }

func (b Bound) String() string {
	switch b.kind {
	case included:
		return fmt.Sprintf("[%d]", b.at)
	case excluded:
		return fmt.Sprintf("(%d)", b.at)
	}
	return "∞"
}

// Range selects a contiguous run of items. Ranges are never rejected: bounds
// are clamped to the tree's items, and a descending range is empty.
type Range struct {
	Start, End Bound
}

// All selects every item.
func All() Range { return Range{} }

// Span selects the half-open interval [i, j).
func Span(i, j int) Range { return Range{Included(i), Excluded(j)} }

// Closed selects the closed interval [i, j].
func Closed(i, j int) Range { return Range{Included(i), Included(j)} }

// From selects all items starting at index i.
func From(i int) Range { return Range{Start: Included(i)} }

// To selects all items before index j.
func To(j int) Range { return Range{End: Excluded(j)} }

// Through selects all items up to and including index j.
func Through(j int) Range { return Range{End: Included(j)} }

func (r Range) String() string {
	return fmt.Sprintf("%v…%v", r.Start, r.End)
}

// indices normalizes r into a half-open interval [start, end) of item
// indices, clamped to [0, n]. For empty ranges start ≥ end.
//
// Bounds are clamped before stepping past them, so indices near math.MaxInt
// cannot wrap around.
func (r Range) indices(n int) (start, end int) {
	switch r.Start.kind {
	case included:
		start = r.Start.at
	case excluded:
		start = min(r.Start.at, n-1) + 1
	}
	end = n
	switch r.End.kind {
	case included:
		end = min(r.End.at, n-1) + 1
	case excluded:
		end = r.End.at
	}
	return min(max(start, 0), n), min(max(end, 0), n)
}
