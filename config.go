package segtree

import "fmt"

// Monoid defines how values are aggregated up the tree.
//
// For values s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
//
// Add need not be commutative. Zero is called for every padding slot, so it
// must return a fresh value if T is a reference type.
type Monoid[T any] interface {
	Zero() T
	Add(left, right T) T
}

// Config configures a segment tree.
type Config[T any] struct {
	// Monoid aggregates values up the tree.
	Monoid Monoid[T]
	// Equal compares two values during Check. If nil, reflect.DeepEqual is used.
	Equal func(a, b T) bool
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Equal == nil {
		cfg.Equal = deepEqual[T]
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	return nil
}
