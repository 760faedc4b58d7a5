/*
Package monoid provides ready-made monoids for segment trees.

Every type in this package has two methods,

	Zero() T
	Add(left, right T) T

and therefore satisfies segtree.Monoid[T]. The types are stateless or hold
configuration only. Their zero values are usable, with two exceptions:
Option and Func need their function fields set, otherwise Zero or Add panic.
The zero Histogram falls back to the bounds of DefaultHistogram.

Numeric monoids (Sum, Prod, Max, Min, Xor, Gcd, Lcm) work on plain Go
numbers. Option lifts an associative operation without a neutral element
(a semigroup) to a monoid over Opt[T]; Coalesce and Overwrite are the
"first wins" and "last wins" instances. Union, Moments and Histogram
aggregate bitmaps, running statistics and latency distributions.

CheckLaws verifies associativity and neutrality of a monoid for sample values.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package monoid

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
