package segtree

import (
	"iter"
	"slices"
)

// At returns the item at index i. ok is false if i is out of range.
func (t *Tree[T]) At(i int) (item T, ok bool) {
	if i < 0 || i >= t.Len() {
		return item, false
	}
	return t.tree[t.leafOffset()+i], true
}

// Items returns a copy of all items, in order.
func (t *Tree[T]) Items() []T {
	if t.IsEmpty() {
		return nil
	}
	return slices.Clone(t.leaves())
}

// leaves is the live view of the items within the buffer.
func (t *Tree[T]) leaves() []T {
	off := t.leafOffset()
	return t.tree[off : off+t.len]
}

// ForEachItem walks items in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[T]) ForEachItem(fn func(item T) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	for _, item := range t.leaves() {
		if !fn(item) {
			return
		}
	}
}

// All returns an iterator over index/item pairs, in order.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if t.IsEmpty() {
			return
		}
		for i, item := range t.leaves() {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values returns an iterator over the items, in order.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ForEachItem(yield)
	}
}

// Backward returns an iterator over index/item pairs, last item first.
func (t *Tree[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if t.IsEmpty() {
			return
		}
		leaves := t.leaves()
		for i := len(leaves) - 1; i >= 0; i-- {
			if !yield(i, leaves[i]) {
				return
			}
		}
	}
}
