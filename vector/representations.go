package vector

import (
	"math/big"

	"github.com/cwbudde/algo-vector/algebra"
)

// Int8s returns an int8 vector holding a copy of values.
func Int8s(values ...int8) Vector[int8] { return New(algebra.Int8, values...) }

// Int16s returns an int16 vector holding a copy of values.
func Int16s(values ...int16) Vector[int16] { return New(algebra.Int16, values...) }

// Int32s returns an int32 vector holding a copy of values.
func Int32s(values ...int32) Vector[int32] { return New(algebra.Int32, values...) }

// Int64s returns an int64 vector holding a copy of values.
func Int64s(values ...int64) Vector[int64] { return New(algebra.Int64, values...) }

// Float32s returns a float32 vector holding a copy of values.
func Float32s(values ...float32) Vector[float32] { return New(algebra.Float32, values...) }

// Float64s returns a float64 vector holding a copy of values.
func Float64s(values ...float64) Vector[float64] { return New(algebra.Float64, values...) }

// BigInts returns an arbitrary-precision vector holding copies of values.
// The vector does not retain any of the given pointers.
func BigInts(values ...*big.Int) Vector[*big.Int] { return New(algebra.BigInt, values...) }

// BigIntsFromInt64 returns an arbitrary-precision vector lifted from int64 values.
func BigIntsFromInt64(values ...int64) Vector[*big.Int] {
	data := make([]*big.Int, len(values))
	for i, x := range values {
		data[i] = big.NewInt(x)
	}
	return Vector[*big.Int]{ar: algebra.BigInt, data: data}
}
