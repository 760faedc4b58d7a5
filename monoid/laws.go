package monoid

import (
	"errors"
	"fmt"
)

// ErrLawViolated signals that a monoid does not satisfy the monoid laws.
var ErrLawViolated = errors.New("monoid: law violated")

// Operation is the method set shared by all monoids.
type Operation[T any] interface {
	Zero() T
	Add(left, right T) T
}

// CheckLaws verifies for samples a, b, c that m is associative and that
// m.Zero() is neutral on either side. Values are compared with eq.
func CheckLaws[T any](m Operation[T], eq func(x, y T) bool, a, b, c T) error {
	if !eq(m.Add(m.Add(a, b), c), m.Add(a, m.Add(b, c))) {
		return fmt.Errorf("%w: (a+b)+c != a+(b+c) for a=%v, b=%v, c=%v", ErrLawViolated, a, b, c)
	}
	for _, x := range []T{a, b, c} {
		if !eq(m.Add(m.Zero(), x), x) {
			return fmt.Errorf("%w: zero+x != x for x=%v", ErrLawViolated, x)
		}
		if !eq(m.Add(x, m.Zero()), x) {
			return fmt.Errorf("%w: x+zero != x for x=%v", ErrLawViolated, x)
		}
	}
	return nil
}

// Fold adds items from left to right, starting with m.Zero().
func Fold[T any](m Operation[T], items []T) T {
	acc := m.Zero()
	for _, x := range items {
		acc = m.Add(acc, x)
	}
	return acc
}
