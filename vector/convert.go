package vector

import "github.com/cwbudde/algo-vector/algebra"

// Convert returns v with every element converted into ar's representation.
// Each element passes through algebra.Number, so the target's narrowing rule
// applies: floats truncate toward zero into integers, wide integers wrap into
// narrow ones, and every integer lifts exactly into BigInt.
func Convert[U, T any](ar algebra.Arithmetic[U], v Vector[T]) Vector[U] {
	if ar == nil {
		panic("vector: nil arithmetic")
	}

	out := ar.Alloc(len(v.data))
	for i, x := range v.data {
		out[i] = ar.FromNumber(v.ar.ToNumber(x))
	}
	return Vector[U]{ar: ar, data: out}
}
