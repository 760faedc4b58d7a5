package segtree

import (
	"iter"
	"math/bits"
	"reflect"
	"slices"
)

// Tree is a segment tree over a sequence of monoid values.
//
// tree is a 1-indexed perfect binary tree: left child 2i, right child 2i+1,
// parent i/2. Slot 0 is unused. Leaves start at leafOffset(); leaves at or
// past Len() hold Zero().
//
// Trees are created with New, FromSlice, FromSeqN or FromSeq. A nil or zero
// Tree reads as empty, with Summary and Combine returning the zero value of
// T, but it cannot grow.
type Tree[T any] struct {
	cfg  Config[T]
	tree []T
	len  int
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[T]{cfg: cfg.normalized()}
	t.tree = t.zeros(capacity(0))
	return t, nil
}

// FromSlice builds a tree holding a copy of items, in order.
func FromSlice[T any](cfg Config[T], items []T) (*Tree[T], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	t.resizeUpto(len(items))
	t.reconstruct(items)
	return t, nil
}

// FromSeqN builds a tree of length n from seq with a single allocation.
// Items past n are ignored; if seq yields fewer than n items, the remaining
// leaves hold Zero().
func FromSeqN[T any](cfg Config[T], n int, seq iter.Seq[T]) (*Tree[T], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	t.resizeUpto(n)
	if seq != nil && n > 0 {
		off, i := t.leafOffset(), 0
		for item := range seq {
			t.tree[off+i] = item
			if i++; i == n {
				break
			}
		}
	}
	t.sweep()
	return t, nil
}

// FromSeq builds a tree from a sequence of unknown length. The sequence is
// collected first, as the tree capacity has to be known up front.
func FromSeq[T any](cfg Config[T], seq iter.Seq[T]) (*Tree[T], error) {
	var items []T
	if seq != nil {
		items = slices.Collect(seq)
	}
	return FromSlice(cfg, items)
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.len
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[T]) IsEmpty() bool {
	return t.Len() == 0
}

// Summary returns the fold over all items, or Zero() for an empty tree.
func (t *Tree[T]) Summary() T {
	if t.IsEmpty() {
		return t.zero()
	}
	return t.tree[1]
}

// Clone returns a copy of the tree. The buffer is copied, the values are not:
// for reference types clone and original share their values until one of
// them is updated.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	return &Tree[T]{
		cfg:  t.cfg,
		tree: slices.Clone(t.tree),
		len:  t.len,
	}
}

// --- Index arithmetic ------------------------------------------------------

// nextPowerOfTwo returns the smallest power of two ≥ n, and 1 for n ≤ 1.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// capacity is the buffer size of a tree holding n items.
func capacity(n int) int {
	return 2 * nextPowerOfTwo(n)
}

func (t *Tree[T]) leafOffset() int {
	return nextPowerOfTwo(t.len)
}

func (t *Tree[T]) overCapacity(n int) bool {
	return len(t.tree) < capacity(n)
}

// zero is Zero(), or the zero value of T for a tree without a monoid.
func (t *Tree[T]) zero() (z T) {
	if t == nil || t.cfg.Monoid == nil {
		return z
	}
	return t.cfg.Monoid.Zero()
}

func (t *Tree[T]) zeros(n int) []T {
	buf := make([]T, n)
	for i := range buf {
		buf[i] = t.cfg.Monoid.Zero()
	}
	return buf
}

// --- Building --------------------------------------------------------------

// resizeUpto grows the tree to n items without truncating. Only if the
// capacity is exceeded, the leaves are extracted into a fresh buffer and the
// tree is rebuilt; otherwise only the length changes.
func (t *Tree[T]) resizeUpto(n int) {
	n = max(n, t.len)
	if !t.overCapacity(n) {
		t.len = n
		return
	}
	data := t.Items()
	tracer().Debugf("segtree: growing capacity %d → %d for %d items", len(t.tree), capacity(n), n)
	t.tree = t.zeros(capacity(n))
	t.len = n
	t.reconstruct(data)
}

// reconstruct writes items to the leaves, starting at the first leaf, and
// recomputes every internal node.
func (t *Tree[T]) reconstruct(items []T) {
	assert(len(items) <= t.len, "reconstruct called with more items than leaves")
	copy(t.tree[t.leafOffset():], items)
	t.sweep()
}

// sweep recomputes internal nodes bottom-up, from the last internal node to
// the root. O(n) in total.
func (t *Tree[T]) sweep() {
	m := t.cfg.Monoid
	for i := t.leafOffset() - 1; i >= 1; i-- {
		t.tree[i] = m.Add(t.tree[2*i], t.tree[2*i+1])
	}
}

func deepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
