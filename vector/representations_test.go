package vector

import (
	"errors"
	"math/big"
	"testing"

	"github.com/cwbudde/algo-vector/algebra"
)

// checkRepresentation runs the same small workload against one
// representation; every representation must agree on these integer-valued
// results.
func checkRepresentation[T any](t *testing.T, ar algebra.Arithmetic[T], lift func(int64) T) {
	t.Helper()

	of := func(xs ...int64) Vector[T] {
		out := make([]T, len(xs))
		for i, x := range xs {
			out[i] = lift(x)
		}
		return New(ar, out...)
	}

	a := of(1, 2, 3)
	b := of(4, 5, 6)

	sum, err := a.AddVector(b)
	if err != nil || sum.String() != "[5,7,9]" {
		t.Fatalf("AddVector() = %v, %v; want [5,7,9]", sum, err)
	}
	if got := b.SubScalar(lift(4)).String(); got != "[0,1,2]" {
		t.Fatalf("SubScalar() = %s, want [0,1,2]", got)
	}
	if got := a.MulScalar(lift(2)).String(); got != "[2,4,6]" {
		t.Fatalf("MulScalar() = %s, want [2,4,6]", got)
	}
	if got := of(8, 6, 4).DivScalar(lift(2)).String(); got != "[4,3,2]" {
		t.Fatalf("DivScalar() = %s, want [4,3,2]", got)
	}

	dot, err := a.Dot(b)
	if err != nil || ar.Format(dot) != "32" {
		t.Fatalf("Dot() = %s, %v; want 32", ar.Format(dot), err)
	}

	cross, err := a.Cross(b)
	if err != nil || cross.String() != "[-3,6,-3]" {
		t.Fatalf("Cross() = %v, %v; want [-3,6,-3]", cross, err)
	}

	if _, err := a.AddVector(of(1)); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("AddVector() error = %v, want ErrSizeMismatch", err)
	}

	c := of(3, 1, 2, 3)
	expect := func(name string, got T, err error, want string) {
		t.Helper()
		if err != nil || ar.Format(got) != want {
			t.Fatalf("%s() = %s, %v; want %s", name, ar.Format(got), err, want)
		}
	}
	minV, err := c.Min()
	expect("Min", minV, err, "1")
	maxV, err := c.Max()
	expect("Max", maxV, err, "3")
	expect("Sum", c.Sum(), nil, "9")
	median, err := of(1, 2, 3).Median()
	expect("Median", median, err, "2")
	mode, err := c.Mode()
	expect("Mode", mode, err, "3")
	mean, err := of(2, 4, 6).Mean()
	expect("Mean", mean, err, "4")
	expect("MagnitudeSquared", of(3, 4).MagnitudeSquared(), nil, "25")
	mag, err := of(3, 4).Magnitude()
	expect("Magnitude", mag, err, "5")

	sw, err := a.Swizzle(0, 0, 1)
	if err != nil || sw.String() != "[1,1,2]" {
		t.Fatalf("Swizzle() = %v, %v; want [1,1,2]", sw, err)
	}

	composed := Surround(lift(0), a, lift(9))
	if composed.String() != "[0,1,2,3,9]" {
		t.Fatalf("Surround() = %v, want [0,1,2,3,9]", composed)
	}

	if got := Convert(algebra.Int64, a); !got.Equal(Int64s(1, 2, 3)) {
		t.Fatalf("Convert() = %v, want [1,2,3]", got)
	}
}

func TestRepresentations(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		checkRepresentation(t, algebra.Int8, func(x int64) int8 { return int8(x) })
	})
	t.Run("int16", func(t *testing.T) {
		checkRepresentation(t, algebra.Int16, func(x int64) int16 { return int16(x) })
	})
	t.Run("int32", func(t *testing.T) {
		checkRepresentation(t, algebra.Int32, func(x int64) int32 { return int32(x) })
	})
	t.Run("int64", func(t *testing.T) {
		checkRepresentation(t, algebra.Int64, func(x int64) int64 { return x })
	})
	t.Run("float32", func(t *testing.T) {
		checkRepresentation(t, algebra.Float32, func(x int64) float32 { return float32(x) })
	})
	t.Run("float64", func(t *testing.T) {
		checkRepresentation(t, algebra.Float64, func(x int64) float64 { return float64(x) })
	})
	t.Run("bigint", func(t *testing.T) {
		checkRepresentation(t, algebra.BigInt, big.NewInt)
	})
}

// fixed is a user-supplied representation: decimal fixed point with two
// fractional digits stored as hundredths. It plugs into the engine without
// any change to this package.
type fixed int64

type fixedArithmetic struct{}

func (fixedArithmetic) Add(a, b fixed) fixed { return a + b }
func (fixedArithmetic) Sub(a, b fixed) fixed { return a - b }
func (fixedArithmetic) Mul(a, b fixed) fixed { return a * b / 100 }
func (fixedArithmetic) Div(a, b fixed) fixed { return a * 100 / b }
func (fixedArithmetic) Sqrt(a fixed) fixed { return fixed(algebra.Int64.Sqrt(int64(a) * 100)) }
func (fixedArithmetic) FromInt(i int) fixed { return fixed(i * 100) }
func (fixedArithmetic) Min(a, b fixed) fixed { return min(a, b) }
func (fixedArithmetic) Max(a, b fixed) fixed { return max(a, b) }
func (fixedArithmetic) Compare(a, b fixed) int { return algebra.Int64.Compare(int64(a), int64(b)) }
func (fixedArithmetic) Equal(a, b fixed) bool { return a == b }
func (fixedArithmetic) Alloc(n int) []fixed { return make([]fixed, n) }
func (fixedArithmetic) Clone(a fixed) fixed { return a }
func (fixedArithmetic) ToNumber(a fixed) algebra.Number {
	return algebra.NumberFromFloat64(float64(a) / 100)
}
func (fixedArithmetic) FromNumber(n algebra.Number) fixed {
	return fixed(n.Float64() * 100)
}
func (fixedArithmetic) Format(a fixed) string {
	return algebra.Float64.Format(float64(a) / 100)
}

func TestCustomRepresentation(t *testing.T) {
	var ar algebra.Arithmetic[fixed] = fixedArithmetic{}
	v := New(ar, 150, 250) // 1.50, 2.50

	mean, err := v.Mean()
	if err != nil || mean != 200 {
		t.Fatalf("Mean() = %v, %v; want 200", mean, err)
	}
	if got := v.MulScalar(200).String(); got != "[3,5]" {
		t.Fatalf("MulScalar(2.00) = %s, want [3,5]", got)
	}
	mag, _ := New(ar, 300, 400).Magnitude()
	if mag != 500 {
		t.Fatalf("Magnitude() = %v, want 500", mag)
	}
	if got := Convert(algebra.Float64, v); !got.Equal(Float64s(1.5, 2.5)) {
		t.Fatalf("Convert() = %v, want [1.5,2.5]", got)
	}
}
