package segtree

// Update sets item i to x and returns the previous value.
//
// If i is out of range, the tree is left unchanged and ok is false.
func (t *Tree[T]) Update(i int, x T) (prev T, ok bool) {
	return t.UpdateWith(i, func(T) T { return x })
}

// UpdateWith sets item i to f(item i) and returns the value f was called with.
// O(log n).
//
// If i is out of range, f is not called, the tree is left unchanged and ok is
// false.
func (t *Tree[T]) UpdateWith(i int, f func(T) T) (prev T, ok bool) {
	if i < 0 || i >= t.Len() {
		return prev, false
	}
	m := t.cfg.Monoid
	node := t.leafOffset() + i
	prev = t.tree[node]
	t.tree[node] = f(prev)
	for node > 1 {
		node /= 2
		t.tree[node] = m.Add(t.tree[2*node], t.tree[2*node+1])
	}
	return prev, true
}
