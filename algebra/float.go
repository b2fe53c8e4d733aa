package algebra

import (
	"cmp"
	"math"
	"strconv"
)

// Floating-point representations with IEEE-754 semantics: division by zero
// yields ±Inf or NaN rather than failing.
var (
	Float32 Arithmetic[float32] = float[float32]{bits: 32}
	Float64 Arithmetic[float64] = float[float64]{bits: 64}
)

type float[T Float] struct {
	bits int
}

func (float[T]) Add(a, b T) T { return a + b }
func (float[T]) Sub(a, b T) T { return a - b }
func (float[T]) Mul(a, b T) T { return a * b }
func (float[T]) Div(a, b T) T { return a / b }
func (float[T]) Sqrt(a T) T { return T(math.Sqrt(float64(a))) }
func (float[T]) FromInt(i int) T { return T(i) }

// Min and Max propagate NaN and order -0 before +0.
func (float[T]) Min(a, b T) T { return min(a, b) }
func (float[T]) Max(a, b T) T { return max(a, b) }

// Compare orders NaN before every other value and treats -0 and +0 as equal.
func (float[T]) Compare(a, b T) int { return cmp.Compare(a, b) }

// Equal is numeric equality: NaN is never equal to anything.
func (float[T]) Equal(a, b T) bool { return a == b }

func (float[T]) Alloc(n int) []T { return make([]T, n) }
func (float[T]) Clone(a T) T { return a }

func (f float[T]) Format(a T) string {
	return strconv.FormatFloat(float64(a), 'g', -1, f.bits)
}

func (float[T]) ToNumber(a T) Number { return NumberFromFloat64(float64(a)) }

func (f float[T]) FromNumber(n Number) T {
	if f.bits == 32 {
		return T(n.Float32())
	}
	return T(n.Float64())
}
