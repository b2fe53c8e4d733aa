package vector

import (
	"strings"

	"github.com/cwbudde/algo-vector/algebra"
)

// Vector is an immutable, fixed-length sequence of elements of one numeric
// representation. Every operation that produces a vector returns a new
// instance; the receiver and its storage are never modified, so a Vector may
// be shared between goroutines without locking.
//
// The zero Vector is empty and carries no representation. Build vectors with
// New or one of the other constructors.
type Vector[T any] struct {
	ar   algebra.Arithmetic[T]
	data []T
}

// New returns a vector holding a copy of values.
func New[T any](ar algebra.Arithmetic[T], values ...T) Vector[T] {
	if ar == nil {
		panic("vector: nil arithmetic")
	}

	data := ar.Alloc(len(values))
	for i, x := range values {
		data[i] = ar.Clone(x)
	}

	return Vector[T]{ar: ar, data: data}
}

// Zeros returns a vector of n zero elements.
func Zeros[T any](ar algebra.Arithmetic[T], n int) Vector[T] {
	if ar == nil {
		panic("vector: nil arithmetic")
	}
	if n < 0 {
		n = 0
	}
	return Vector[T]{ar: ar, data: ar.Alloc(n)}
}

// Vec2 returns the vector [x, y].
func Vec2[T any](ar algebra.Arithmetic[T], x, y T) Vector[T] {
	return New(ar, x, y)
}

// Vec3 returns the vector [x, y, z].
func Vec3[T any](ar algebra.Arithmetic[T], x, y, z T) Vector[T] {
	return New(ar, x, y, z)
}

// Vec4 returns the vector [x, y, z, w].
func Vec4[T any](ar algebra.Arithmetic[T], x, y, z, w T) Vector[T] {
	return New(ar, x, y, z, w)
}

// Prepend returns [x, v...] in v's representation.
func Prepend[T any](x T, v Vector[T]) Vector[T] {
	out := v.alloc(len(v.data) + 1)
	out[0] = v.ar.Clone(x)
	copy(out[1:], v.data)
	return v.with(out)
}

// Append returns [v..., y] in v's representation.
func Append[T any](v Vector[T], y T) Vector[T] {
	out := v.alloc(len(v.data) + 1)
	copy(out, v.data)
	out[len(v.data)] = v.ar.Clone(y)
	return v.with(out)
}

// Surround returns [x, v..., y] in v's representation.
func Surround[T any](x T, v Vector[T], y T) Vector[T] {
	n := len(v.data)
	out := v.alloc(n + 2)
	out[0] = v.ar.Clone(x)
	copy(out[1:], v.data)
	out[n+1] = v.ar.Clone(y)
	return v.with(out)
}

// Concat returns [a..., b...] in a's representation, or b's if a is the zero Vector.
func Concat[T any](a, b Vector[T]) Vector[T] {
	base := a
	if base.ar == nil {
		base = b
	}

	out := base.alloc(len(a.data) + len(b.data))
	copy(out, a.data)
	copy(out[len(a.data):], b.data)
	return base.with(out)
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return len(v.data) }

// Arithmetic returns the representation of v's elements.
func (v Vector[T]) Arithmetic() algebra.Arithmetic[T] { return v.ar }

// Get returns the element at index i. Like slice indexing it panics, with an
// *IndexError, if i is outside [0, Len).
func (v Vector[T]) Get(i int) T {
	if err := checkIndex(i, len(v.data)); err != nil {
		panic(err)
	}
	return v.ar.Clone(v.data[i])
}

// Set returns a copy of v with element i replaced by x.
func (v Vector[T]) Set(i int, x T) (Vector[T], error) {
	if err := checkIndex(i, len(v.data)); err != nil {
		return Vector[T]{}, err
	}

	out := v.alloc(len(v.data))
	copy(out, v.data)
	out[i] = v.ar.Clone(x)
	return v.with(out), nil
}

// Slice returns a copy of the elements in order.
func (v Vector[T]) Slice() []T {
	out := v.alloc(len(v.data))
	for i, x := range v.data {
		out[i] = v.ar.Clone(x)
	}
	return out
}

// Equal reports whether v and o have the same length and element-wise equal values.
func (v Vector[T]) Equal(o Vector[T]) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if !v.ar.Equal(v.data[i], o.data[i]) {
			return false
		}
	}
	return true
}

// String formats v as "[e0,e1,...]".
func (v Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.ar.Format(x))
	}
	sb.WriteByte(']')
	return sb.String()
}

// alloc returns fresh storage for n elements. Only empty storage can be
// produced for the zero Vector.
func (v Vector[T]) alloc(n int) []T {
	if v.ar == nil {
		if n == 0 {
			return nil
		}
		panic("vector: zero Vector has no arithmetic")
	}
	return v.ar.Alloc(n)
}

// with wraps data, which must be freshly allocated, in v's representation.
func (v Vector[T]) with(data []T) Vector[T] {
	return Vector[T]{ar: v.ar, data: data}
}
