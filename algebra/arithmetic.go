package algebra

// Integer is the set of fixed-width signed integer element types.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Float is the set of IEEE-754 floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Arithmetic is the capability contract a numeric representation supplies to
// the vector engine. Implementations hold no mutable state and are safe for
// concurrent use.
//
// Operations must not modify their arguments. For reference-typed elements
// (such as *big.Int) every result is a freshly allocated value.
type Arithmetic[T any] interface {
	// Add returns a + b.
	Add(a, b T) T
	// Sub returns a - b.
	Sub(a, b T) T
	// Mul returns a * b.
	Mul(a, b T) T
	// Div returns a / b using the representation's native division.
	// Integer representations truncate toward zero and panic on a zero divisor.
	Div(a, b T) T
	// Sqrt returns the square root of a, truncated to the representation's domain.
	Sqrt(a T) T

	// FromInt lifts a small integer constant into T.
	FromInt(i int) T

	// Min returns the smaller of a and b.
	Min(a, b T) T
	// Max returns the larger of a and b.
	Max(a, b T) T
	// Compare returns -1, 0 or +1 depending on whether a is less than,
	// equal to or greater than b. It must define a total order.
	Compare(a, b T) int
	// Equal reports whether a and b hold the same value.
	Equal(a, b T) bool

	// Alloc returns fresh storage for n zero-valued elements.
	Alloc(n int) []T
	// Clone returns a copy of a that shares no mutable state with it.
	Clone(a T) T
	// Format returns the string form of a.
	Format(a T) string

	// ToNumber exports a as a representation-neutral Number.
	ToNumber(a T) Number
	// FromNumber converts n into T using this representation's
	// narrowing/widening rule.
	FromNumber(n Number) T
}
