package vector

import "github.com/cwbudde/algo-vector/algebra"

// AddScalar returns v[i] + s for every element.
func (v Vector[T]) AddScalar(s T) Vector[T] { return v.mapScalar(s, algebra.Arithmetic[T].Add) }

// SubScalar returns v[i] - s for every element.
func (v Vector[T]) SubScalar(s T) Vector[T] { return v.mapScalar(s, algebra.Arithmetic[T].Sub) }

// MulScalar returns v[i] * s for every element.
func (v Vector[T]) MulScalar(s T) Vector[T] { return v.mapScalar(s, algebra.Arithmetic[T].Mul) }

// DivScalar returns v[i] / s for every element.
func (v Vector[T]) DivScalar(s T) Vector[T] { return v.mapScalar(s, algebra.Arithmetic[T].Div) }

// AddVector returns v[i] + o[i]. It fails with a *SizeError if the lengths differ.
func (v Vector[T]) AddVector(o Vector[T]) (Vector[T], error) { return v.zip(o, algebra.Arithmetic[T].Add) }

// SubVector returns v[i] - o[i]. It fails with a *SizeError if the lengths differ.
func (v Vector[T]) SubVector(o Vector[T]) (Vector[T], error) { return v.zip(o, algebra.Arithmetic[T].Sub) }

// MulVector returns v[i] * o[i]. It fails with a *SizeError if the lengths differ.
func (v Vector[T]) MulVector(o Vector[T]) (Vector[T], error) { return v.zip(o, algebra.Arithmetic[T].Mul) }

// DivVector returns v[i] / o[i]. It fails with a *SizeError if the lengths differ.
func (v Vector[T]) DivVector(o Vector[T]) (Vector[T], error) { return v.zip(o, algebra.Arithmetic[T].Div) }

// Dot returns the sum of v[i] * o[i]. It fails with a *SizeError if the lengths differ.
func (v Vector[T]) Dot(o Vector[T]) (T, error) {
	if err := checkSize(len(v.data), len(o.data)); err != nil {
		var zero T
		return zero, err
	}
	return v.dot(o), nil
}

// Cross returns the 3D cross product v × o. Both operands must have length 3;
// otherwise a *SizeError with Want 3 reports the first offending length.
func (v Vector[T]) Cross(o Vector[T]) (Vector[T], error) {
	if err := checkSize(3, len(v.data)); err != nil {
		return Vector[T]{}, err
	}
	if err := checkSize(3, len(o.data)); err != nil {
		return Vector[T]{}, err
	}

	ar := v.ar
	ax, ay, az := v.data[0], v.data[1], v.data[2]
	bx, by, bz := o.data[0], o.data[1], o.data[2]

	out := ar.Alloc(3)
	out[0] = ar.Sub(ar.Mul(ay, bz), ar.Mul(az, by))
	out[1] = ar.Sub(ar.Mul(az, bx), ar.Mul(ax, bz))
	out[2] = ar.Sub(ar.Mul(ax, by), ar.Mul(ay, bx))
	return v.with(out), nil
}

// binaryOp is a method expression such as algebra.Arithmetic[T].Add, applied
// per element so the zero Vector's nil representation is never touched.
type binaryOp[T any] func(ar algebra.Arithmetic[T], a, b T) T

func (v Vector[T]) mapScalar(s T, op binaryOp[T]) Vector[T] {
	out := v.alloc(len(v.data))
	for i, x := range v.data {
		out[i] = op(v.ar, x, s)
	}
	return v.with(out)
}

func (v Vector[T]) zip(o Vector[T], op binaryOp[T]) (Vector[T], error) {
	if err := checkSize(len(v.data), len(o.data)); err != nil {
		return Vector[T]{}, err
	}

	out := v.alloc(len(v.data))
	for i, x := range v.data {
		out[i] = op(v.ar, x, o.data[i])
	}
	return v.with(out), nil
}

func (v Vector[T]) dot(o Vector[T]) T {
	acc := v.zero()
	for i, x := range v.data {
		acc = v.ar.Add(acc, v.ar.Mul(x, o.data[i]))
	}
	return acc
}
