package algebra

import (
	"math"
	"math/big"
	"strconv"
)

// Number is a representation-neutral numeric value used to move elements
// between representations. It holds either an exact integer or a float64.
// The zero Number is the integer 0.
type Number struct {
	integer *big.Int
	float   float64
	isFloat bool
}

// NumberFromInt64 returns the exact integer i.
func NumberFromInt64(i int64) Number {
	return Number{integer: big.NewInt(i)}
}

// NumberFromBigInt returns the exact integer i. A nil i is zero.
func NumberFromBigInt(i *big.Int) Number {
	return Number{integer: new(big.Int).Set(orZero(i))}
}

// NumberFromFloat64 returns the floating-point value f.
func NumberFromFloat64(f float64) Number {
	return Number{float: f, isFloat: true}
}

// IsFloat reports whether n carries a floating-point value.
func (n Number) IsFloat() bool { return n.isFloat }

var (
	twoPow63 = math.Ldexp(1, 63)
	mask64   = new(big.Int).SetUint64(math.MaxUint64)
)

// Int64 converts n to an int64.
//
// Integers wider than 64 bits keep their low 64 bits (two's complement), the
// same wrap-around a narrower integer type applies when converted from int64.
// Floats truncate toward zero; NaN becomes 0 and out-of-range values saturate
// at math.MinInt64 or math.MaxInt64.
func (n Number) Int64() int64 {
	if n.isFloat {
		return truncFloat(n.float)
	}

	i := orZero(n.integer)
	if i.IsInt64() {
		return i.Int64()
	}

	return int64(new(big.Int).And(i, mask64).Uint64())
}

// Float64 converts n to the nearest float64.
func (n Number) Float64() float64 {
	if n.isFloat {
		return n.float
	}

	i := orZero(n.integer)
	if i.IsInt64() {
		return float64(i.Int64())
	}

	f, _ := new(big.Float).SetInt(i).Float64()
	return f
}

// Float32 converts n to the nearest float32. Integers are rounded once,
// directly to float32 precision.
func (n Number) Float32() float32 {
	if n.isFloat {
		return float32(n.float)
	}

	f, _ := new(big.Float).SetInt(orZero(n.integer)).Float32()
	return f
}

// BigInt converts n to a newly allocated *big.Int. Finite floats truncate
// toward zero exactly; NaN becomes 0 and ±Inf saturate at the int64 bounds.
func (n Number) BigInt() *big.Int {
	if !n.isFloat {
		return new(big.Int).Set(orZero(n.integer))
	}

	switch f := n.float; {
	case math.IsNaN(f):
		return new(big.Int)
	case math.IsInf(f, 1):
		return big.NewInt(math.MaxInt64)
	case math.IsInf(f, -1):
		return big.NewInt(math.MinInt64)
	default:
		i, _ := new(big.Float).SetFloat64(f).Int(nil)
		return i
	}
}

// String returns the decimal form of n.
func (n Number) String() string {
	if n.isFloat {
		return strconv.FormatFloat(n.float, 'g', -1, 64)
	}
	return orZero(n.integer).String()
}

func truncFloat(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= twoPow63:
		return math.MaxInt64
	case f <= -twoPow63:
		return math.MinInt64
	default:
		return int64(f)
	}
}
