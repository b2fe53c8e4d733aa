// Package vector provides immutable fixed-length numeric vectors.
//
// Vector[T] is generic over its element type and performs all arithmetic
// through an algebra.Arithmetic[T], so the same algorithms serve every
// representation: fixed-width integers, floats and *big.Int.
//
// Every operation returns a new vector or a scalar; nothing modifies its
// receiver. Operations combining two vectors return a *SizeError (matching
// ErrSizeMismatch) when the lengths are incompatible, Set and Swizzle return
// an *IndexError for out-of-range indices, and statistics that are undefined
// on an empty vector return ErrEmpty.
//
//	a := vector.Float64s(1, 2, 3)
//	b := vector.Float64s(4, 5, 6)
//	dot, err := a.Dot(b) // 32
package vector
