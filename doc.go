/*
Package segtree provides a mutable, array-backed segment tree over a monoid.

Segment Trees

A segment tree caches folds of contiguous runs of a sequence in a perfect
binary tree. Every internal node holds the monoid sum of its two children,
so any range of the sequence can be folded by visiting O(log n) nodes, and
replacing a single element touches only the path from its leaf to the root.

The tree is stored pointer-free in one flat slice, 1-indexed:

	node i  →  children 2i and 2i+1, parent i/2
	leaves  →  [leafOffset, 2·leafOffset), leafOffset = next power of two ≥ Len()

Leaves past Len() hold the monoid's neutral element, therefore folds over
padding degrade gracefully to Zero().

Operations and their cost:

  - construction from a slice or sequence (bulk bottom-up build, O(n)),
  - Push / Extend (amortized; a capacity doubling rebuilds the whole tree),
  - Update / UpdateWith (O(log n)),
  - Combine over a Range (O(log n)),
  - BisectLeft / BisectRight over a Range (O(log² n)).

Monoids

Clients provide the operation through the Monoid interface. The operation
need not be commutative: Combine always folds elements in sequence order.
Package segtree/monoid holds a catalogue of common monoids.

Soft Boundaries

Out-of-range updates and empty or descending ranges are not errors. Updates
report them with a false flag, folds return Zero(). Errors are reserved for
invalid configurations and failed invariant checks.

Concurrency

A Tree is not safe for concurrent mutation. Read-only queries (Combine,
Bisect*, iteration) may run concurrently as long as no mutation happens at
the same time.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
