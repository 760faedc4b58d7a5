package monoid

import "fmt"

// Opt is an optional value.
type Opt[T any] struct {
	Value T
	Valid bool
}

// Some wraps a present value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{Value: v, Valid: true}
}

// None returns an absent value.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.Value, o.Valid
}

func (o Opt[T]) String() string {
	if !o.Valid {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.Value)
}

// Option lifts an associative operation without a neutral element to a
// monoid over Opt[T]. None is the neutral element; two present values are
// combined with Op.
type Option[T any] struct {
	Op func(left, right T) T
}

func (Option[T]) Zero() Opt[T] { return None[T]() }

func (m Option[T]) Add(left, right Opt[T]) Opt[T] {
	switch {
	case !left.Valid:
		return right
	case !right.Valid:
		return left
	}
	return Some(m.Op(left.Value, right.Value))
}

// Coalesce selects the first present value. It is not commutative.
type Coalesce[T any] struct{}

func (Coalesce[T]) Zero() Opt[T] { return None[T]() }

func (Coalesce[T]) Add(left, right Opt[T]) Opt[T] {
	if left.Valid {
		return left
	}
	return right
}

// Overwrite selects the last present value. It is not commutative.
type Overwrite[T any] struct{}

func (Overwrite[T]) Zero() Opt[T] { return None[T]() }

func (Overwrite[T]) Add(left, right Opt[T]) Opt[T] {
	if right.Valid {
		return right
	}
	return left
}

// Func assembles a monoid from two functions.
type Func[T any] struct {
	ZeroFunc func() T
	AddFunc  func(left, right T) T
}

func (m Func[T]) Zero() T             { return m.ZeroFunc() }
func (m Func[T]) Add(left, right T) T { return m.AddFunc(left, right) }
