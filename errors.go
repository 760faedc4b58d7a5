package segtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrInvariant signals that a tree violates one of its structural invariants.
	ErrInvariant = errors.New("segtree: invariant violated")
)
