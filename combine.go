package segtree

// Combine folds the items selected by r, in sequence order. An empty or
// descending range yields Zero(). O(log n).
func (t *Tree[T]) Combine(r Range) T {
	start, end := r.indices(t.Len())
	return t.combine(start, end)
}

// combine folds [start, end) by moving two pointers upwards until they meet.
// Left boundary nodes are added as Add(acc, node), right boundary nodes as
// Add(node, acc). The two sides accumulate separately and are joined last,
// so non-commutative operations stay in sequence order.
func (t *Tree[T]) combine(start, end int) T {
	if start >= end {
		return t.zero()
	}
	m := t.cfg.Monoid
	off := t.leafOffset()
	left, right := off+start, off+end
	accL, accR := m.Zero(), m.Zero()
	for left < right {
		if left%2 == 1 {
			accL = m.Add(accL, t.tree[left])
			left++
		}
		if right%2 == 1 {
			right--
			accR = m.Add(t.tree[right], accR)
		}
		left /= 2
		right /= 2
	}
	return m.Add(accL, accR)
}
