package vector

import "github.com/cwbudde/algo-vector/algebra"

// Swizzle returns a vector whose k-th element is v[indices[k]]. Indices may
// repeat, reorder or omit positions. Any index outside [0, Len) fails the
// whole call with an *IndexError.
func (v Vector[T]) Swizzle(indices ...int) (Vector[T], error) {
	for _, idx := range indices {
		if err := checkIndex(idx, len(v.data)); err != nil {
			return Vector[T]{}, err
		}
	}

	out := v.alloc(len(indices))
	for k, idx := range indices {
		out[k] = v.data[idx]
	}
	return v.with(out), nil
}

// SwizzleBy is Swizzle with the indices taken from an integer vector.
func SwizzleBy[T any, I algebra.Integer](v Vector[T], indices Vector[I]) (Vector[T], error) {
	idx := make([]int, len(indices.data))
	for k, i := range indices.data {
		idx[k] = int(i)
	}
	return v.Swizzle(idx...)
}
