package vector

import "slices"

// Min returns the smallest element.
func (v Vector[T]) Min() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.fold(v.ar.Min), nil
}

// Max returns the largest element.
func (v Vector[T]) Max() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.fold(v.ar.Max), nil
}

// Sum returns the sum of all elements; zero for an empty vector.
func (v Vector[T]) Sum() T {
	acc := v.zero()
	for _, x := range v.data {
		acc = v.ar.Add(acc, x)
	}
	return acc
}

// Mean returns Sum() / Len() using the representation's division.
func (v Vector[T]) Mean() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.ar.Div(v.Sum(), v.ar.FromInt(len(v.data))), nil
}

// Median returns the middle element of the sorted values. For an even length
// it returns the mean of the two middle elements, (lo + hi) / 2.
func (v Vector[T]) Median() (T, error) {
	n := len(v.data)
	if n == 0 {
		var zero T
		return zero, ErrEmpty
	}

	ar := v.ar
	sorted := slices.Clone(v.data)
	slices.SortFunc(sorted, ar.Compare)

	mid := n / 2
	if n%2 == 1 {
		return ar.Clone(sorted[mid]), nil
	}
	return ar.Div(ar.Add(sorted[mid-1], sorted[mid]), ar.FromInt(2)), nil
}

// Mode returns the most frequent element. Ties go to the value that occurs
// first.
func (v Vector[T]) Mode() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	ar := v.ar
	best, bestCount := 0, 0
	for i, x := range v.data {
		count := 0
		for _, y := range v.data {
			if ar.Equal(x, y) {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = i, count
		}
	}

	return ar.Clone(v.data[best]), nil
}

// MagnitudeSquared returns the sum of squares, v · v.
func (v Vector[T]) MagnitudeSquared() T { return v.dot(v) }

// Magnitude returns the Euclidean length, sqrt(v · v), truncated to the
// representation's domain for integer elements.
func (v Vector[T]) Magnitude() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.ar.Sqrt(v.MagnitudeSquared()), nil
}

// Normalise returns v / Magnitude(). A zero vector follows the
// representation's division: NaN elements for floats, a panic for integers.
func (v Vector[T]) Normalise() (Vector[T], error) {
	mag, err := v.Magnitude()
	if err != nil {
		return Vector[T]{}, err
	}
	return v.DivScalar(mag), nil
}

// fold reduces a non-empty vector with op.
func (v Vector[T]) fold(op func(a, b T) T) T {
	acc := v.data[0]
	for _, x := range v.data[1:] {
		acc = op(acc, x)
	}
	return v.ar.Clone(acc)
}

// zero returns the additive identity, or T's zero value for the zero Vector.
func (v Vector[T]) zero() T {
	if v.ar == nil {
		var zero T
		return zero
	}
	return v.ar.FromInt(0)
}
