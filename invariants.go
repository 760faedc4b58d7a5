package segtree

import "fmt"

// Check validates the tree invariants:
//
//   - the buffer holds a perfect binary tree sized for Len() items,
//   - every internal node equals the sum of its children,
//   - every leaf past Len() equals Zero().
//
// Values are compared with Config.Equal. Check is O(n) and meant for tests.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if err := t.checkShape(); err != nil {
		tracer().Debugf("segtree: check failed: %v", err)
		return err
	}
	if err := t.checkNodes(); err != nil {
		tracer().Debugf("segtree: check failed: %v", err)
		return err
	}
	return nil
}

func (t *Tree[T]) checkShape() error {
	if t.len < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvariant, t.len)
	}
	if len(t.tree) != capacity(t.len) {
		return fmt.Errorf("%w: buffer size %d, expected %d for %d items",
			ErrInvariant, len(t.tree), capacity(t.len), t.len)
	}
	return nil
}

func (t *Tree[T]) checkNodes() error {
	m, eq := t.cfg.Monoid, t.cfg.Equal
	off := t.leafOffset()
	for i := 1; i < off; i++ {
		if !eq(t.tree[i], m.Add(t.tree[2*i], t.tree[2*i+1])) {
			return fmt.Errorf("%w: node %d is not the sum of its children", ErrInvariant, i)
		}
	}
	zero := m.Zero()
	for i := off + t.len; i < len(t.tree); i++ {
		if !eq(t.tree[i], zero) {
			return fmt.Errorf("%w: padding leaf %d is not zero", ErrInvariant, i-off)
		}
	}
	return nil
}
