package algebra

import (
	"cmp"
	"math"
	"strconv"
)

// Fixed-width signed integer representations. Arithmetic wraps on overflow
// and division truncates toward zero.
var (
	Int8  Arithmetic[int8]  = integer[int8]{}
	Int16 Arithmetic[int16] = integer[int16]{}
	Int32 Arithmetic[int32] = integer[int32]{}
	Int64 Arithmetic[int64] = integer[int64]{}
)

type integer[T Integer] struct{}

func (integer[T]) Add(a, b T) T { return a + b }
func (integer[T]) Sub(a, b T) T { return a - b }
func (integer[T]) Mul(a, b T) T { return a * b }
func (integer[T]) Div(a, b T) T { return a / b }

// Sqrt returns the floor of the square root of a. Negative values yield 0.
func (integer[T]) Sqrt(a T) T {
	return T(isqrt(int64(a)))
}

func (integer[T]) FromInt(i int) T { return T(i) }

func (integer[T]) Min(a, b T) T { return min(a, b) }
func (integer[T]) Max(a, b T) T { return max(a, b) }
func (integer[T]) Compare(a, b T) int { return cmp.Compare(a, b) }
func (integer[T]) Equal(a, b T) bool { return a == b }
func (integer[T]) Alloc(n int) []T { return make([]T, n) }
func (integer[T]) Clone(a T) T { return a }
func (integer[T]) Format(a T) string { return strconv.FormatInt(int64(a), 10) }
func (integer[T]) ToNumber(a T) Number { return NumberFromInt64(int64(a)) }
func (integer[T]) FromNumber(n Number) T { return T(n.Int64()) }

// isqrt returns floor(sqrt(x)) for x >= 0 and 0 otherwise.
func isqrt(x int64) int64 {
	if x <= 0 {
		return 0
	}

	// math.Sqrt is within one of the exact root for every int64; the
	// corrections use division so they cannot overflow.
	r := int64(math.Sqrt(float64(x)))
	for r > x/r {
		r--
	}
	for r+1 <= x/(r+1) {
		r++
	}

	return r
}
