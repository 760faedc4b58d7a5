package segtree

// BisectLeft searches r for the leftmost item where pred becomes true.
//
// The window is halved repeatedly: if pred holds for the fold of the lower
// half, the search continues there, otherwise in the upper half. Finally pred
// is checked on the single remaining item. pred sees folds of sub-windows,
// not running prefixes, so it suits selective monoids such as Max or Min with
// a threshold predicate, e.g. "max ≥ 10". pred has to be monotonic; for other
// predicates the result is unspecified. O(log² n).
//
// ok is false if r is empty or pred does not hold for the item found.
func (t *Tree[T]) BisectLeft(r Range, pred func(T) bool) (index int, ok bool) {
	start, end := r.indices(t.Len())
	if start >= end {
		return 0, false
	}
	for end-start > 1 {
		mid := start + (end-start)/2
		if pred(t.combine(start, mid)) {
			end = mid
		} else {
			start = mid
		}
	}
	if !pred(t.tree[t.leafOffset()+start]) {
		return 0, false
	}
	return start, true
}

// BisectRight searches r for the rightmost item where pred becomes true,
// mirroring BisectLeft: if pred holds for the fold of the upper half, the
// search continues there, otherwise in the lower half. O(log² n).
//
// ok is false if r is empty or pred does not hold for the item found.
func (t *Tree[T]) BisectRight(r Range, pred func(T) bool) (index int, ok bool) {
	start, end := r.indices(t.Len())
	if start >= end {
		return 0, false
	}
	for end-start > 1 {
		mid := start + (end-start)/2
		if pred(t.combine(mid, end)) {
			start = mid
		} else {
			end = mid
		}
	}
	if !pred(t.tree[t.leafOffset()+start]) {
		return 0, false
	}
	return start, true
}
