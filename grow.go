package segtree

import (
	"iter"
	"slices"
)

// Push appends x to the tree. Amortized O(log n); every capacity doubling
// rebuilds the whole tree. To create a tree from known data use FromSlice or
// FromSeq instead.
func (t *Tree[T]) Push(x T) {
	t.resizeUpto(t.len + 1)
	_, ok := t.Update(t.len-1, x)
	assert(ok, "push could not update freshly grown leaf")
}

// Grow extends the tree to n items by appending Zero() values. Grow never
// truncates; n ≤ Len() is a no-op.
func (t *Tree[T]) Grow(n int) {
	t.resizeUpto(n)
}

// ExtendFromSlice appends items to the tree, in order.
func (t *Tree[T]) ExtendFromSlice(items []T) {
	t.extendWithLength(len(items), slices.Values(items))
}

// ExtendN appends n items from seq. Items past n are ignored; if seq yields
// fewer than n items, Zero() values are appended in their place.
func (t *Tree[T]) ExtendN(n int, seq iter.Seq[T]) {
	t.extendWithLength(n, seq)
}

// Extend appends all items of a sequence of unknown length.
func (t *Tree[T]) Extend(seq iter.Seq[T]) {
	if seq == nil {
		return
	}
	t.ExtendFromSlice(slices.Collect(seq))
}

// extendWithLength switches between two modes: if the combined length
// exceeds the current capacity, the tree is rebuilt once with all items;
// otherwise the items are pushed one by one, each costing O(log n).
func (t *Tree[T]) extendWithLength(n int, seq iter.Seq[T]) {
	if n <= 0 {
		return
	}
	items := take(n, seq, t.cfg.Monoid.Zero)
	if t.overCapacity(t.len + n) {
		tracer().Debugf("segtree: bulk extend of %d items onto %d", n, t.len)
		data := append(t.Items(), items...)
		t.tree = t.zeros(capacity(len(data)))
		t.len = len(data)
		t.reconstruct(data)
		return
	}
	for _, item := range items {
		t.Push(item)
	}
}

// take collects exactly n items from seq, padding with zero() if seq runs dry.
func take[T any](n int, seq iter.Seq[T], zero func() T) []T {
	items := make([]T, 0, n)
	if seq != nil {
		for item := range seq {
			items = append(items, item)
			if len(items) == n {
				break
			}
		}
	}
	for len(items) < n {
		items = append(items, zero())
	}
	return items
}
