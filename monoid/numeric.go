package monoid

import (
	"math"
	"reflect"
)

// Signed is a constraint for signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint for unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint for integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint for floating point types.
type Float interface {
	~float32 | ~float64
}

// Number is a constraint for integer and floating point types.
type Number interface {
	Integer | Float
}

// Sum adds numbers. Zero is 0.
type Sum[N Number] struct{}

func (Sum[N]) Zero() N             { return 0 }
func (Sum[N]) Add(left, right N) N { return left + right }

// Prod multiplies numbers. Zero is 1.
type Prod[N Number] struct{}

func (Prod[N]) Zero() N             { return 1 }
func (Prod[N]) Add(left, right N) N { return left * right }

// Max selects the greater number. Zero is the lowest value of N, -Inf for
// floating point types.
type Max[N Number] struct{}

func (Max[N]) Zero() N { return Lowest[N]() }

func (Max[N]) Add(left, right N) N {
	if right > left {
		return right
	}
	return left
}

// Min selects the smaller number. Zero is the highest value of N, +Inf for
// floating point types.
type Min[N Number] struct{}

func (Min[N]) Zero() N { return Highest[N]() }

func (Min[N]) Add(left, right N) N {
	if right < left {
		return right
	}
	return left
}

// Xor combines integers bitwise. Zero is 0.
type Xor[N Integer] struct{}

func (Xor[N]) Zero() N             { return 0 }
func (Xor[N]) Add(left, right N) N { return left ^ right }

// Gcd computes the greatest common divisor. Zero is 0, as gcd(0, n) = n.
type Gcd[N Unsigned] struct{}

func (Gcd[N]) Zero() N             { return 0 }
func (Gcd[N]) Add(left, right N) N { return gcd(left, right) }

// Lcm computes the least common multiple. Zero is 1; 0 is absorbing.
type Lcm[N Unsigned] struct{}

func (Lcm[N]) Zero() N { return 1 }

func (Lcm[N]) Add(left, right N) N {
	if left == 0 || right == 0 {
		return 0
	}
	return left / gcd(left, right) * right
}

func gcd[N Unsigned](a, b N) N {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Lowest returns the lowest value of a number type, -Inf for floating point
// types.
func Lowest[N Number]() N {
	var n N
	v := reflect.ValueOf(&n).Elem()
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(-1 << (v.Type().Bits() - 1))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(math.Inf(-1))
	}
	return n
}

// Highest returns the highest value of a number type, +Inf for floating point
// types.
func Highest[N Number]() N {
	var n N
	v := reflect.ValueOf(&n).Elem()
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(1<<(v.Type().Bits()-1) - 1)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v.SetUint(math.MaxUint64 >> (64 - v.Type().Bits()))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(math.Inf(1))
	}
	return n
}
