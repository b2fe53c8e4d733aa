package algebra

import "math/big"

// BigInt is the arbitrary-precision integer representation. Elements are
// *big.Int values treated as immutable: every operation allocates its result
// and a nil element reads as zero.
var BigInt Arithmetic[*big.Int] = bigInt{}

type bigInt struct{}

var bigZero = new(big.Int)

func orZero(a *big.Int) *big.Int {
	if a == nil {
		return bigZero
	}
	return a
}

func (bigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(orZero(a), orZero(b)) }
func (bigInt) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(orZero(a), orZero(b)) }
func (bigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(orZero(a), orZero(b)) }

// Div truncates toward zero. It panics if b is zero.
func (bigInt) Div(a, b *big.Int) *big.Int { return new(big.Int).Quo(orZero(a), orZero(b)) }

// Sqrt returns the exact floor of the square root for any magnitude.
// Negative values yield 0.
func (bigInt) Sqrt(a *big.Int) *big.Int {
	a = orZero(a)
	if a.Sign() <= 0 {
		return new(big.Int)
	}
	return new(big.Int).Sqrt(a)
}

func (bigInt) FromInt(i int) *big.Int { return big.NewInt(int64(i)) }

func (b bigInt) Min(x, y *big.Int) *big.Int {
	if b.Compare(x, y) <= 0 {
		return x
	}
	return y
}

func (b bigInt) Max(x, y *big.Int) *big.Int {
	if b.Compare(x, y) >= 0 {
		return x
	}
	return y
}

func (bigInt) Compare(a, b *big.Int) int { return orZero(a).Cmp(orZero(b)) }
func (bigInt) Equal(a, b *big.Int) bool { return orZero(a).Cmp(orZero(b)) == 0 }
func (bigInt) Clone(a *big.Int) *big.Int { return new(big.Int).Set(orZero(a)) }
func (bigInt) Format(a *big.Int) string { return orZero(a).String() }
func (bigInt) ToNumber(a *big.Int) Number { return NumberFromBigInt(orZero(a)) }
func (bigInt) FromNumber(n Number) *big.Int { return n.BigInt() }

func (bigInt) Alloc(n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = new(big.Int)
	}
	return out
}
