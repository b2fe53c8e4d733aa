// Package algebra defines the arithmetic capability a numeric element type
// must supply to be stored in a vector.
//
// An Arithmetic[T] is a stateless set of pure functions over T: the four
// basic operations, square root, min/max, a total order, value equality,
// storage allocation and a conversion bridge through Number. The vector
// engine is written once against this interface; adding a new numeric
// representation means implementing Arithmetic for it and nothing else.
//
// Seven representations are provided:
//
//	Int8, Int16, Int32, Int64  fixed-width signed integers (wrap on overflow)
//	Float32, Float64           IEEE-754 floating point
//	BigInt                     arbitrary-precision integers (*big.Int)
//
// The fixed-width and floating-point representations share one generic
// implementation each, parameterized by the Integer and Float constraints.
package algebra
