package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch is wrapped by every *SizeError.
	ErrSizeMismatch = errors.New("vector: size mismatch")
	// ErrIndexOutOfRange is wrapped by every *IndexError.
	ErrIndexOutOfRange = errors.New("vector: index out of range")
	// ErrEmpty is returned by statistics that are undefined for a zero-length vector.
	ErrEmpty = errors.New("vector: empty vector")
)

// SizeError reports operands whose lengths are incompatible with an operation.
type SizeError struct {
	Want int // required length
	Got  int // observed length
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("vector: size mismatch: got length %d, want %d", e.Got, e.Want)
}

func (e *SizeError) Unwrap() error { return ErrSizeMismatch }

// IndexError reports an index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0,%d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func checkSize(want, got int) error {
	if want != got {
		return &SizeError{Want: want, Got: got}
	}
	return nil
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Index: i, Len: n}
	}
	return nil
}
