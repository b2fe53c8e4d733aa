package testutil

import "math/rand"

// DeterministicFloats returns n uniform values in [-amplitude, amplitude)
// drawn from a fixed seed.
func DeterministicFloats(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicInts returns n uniform values in [-limit, limit] drawn from a
// fixed seed. limit must be positive.
func DeterministicInts(seed, limit int64, n int) []int64 {
	out := make([]int64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Int63n(2*limit+1) - limit
	}
	return out
}

// Basis returns the unit vector of length n with a 1 at pos.
func Basis(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}

// Constant returns a slice of length n filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return Constant(1.0, n)
}
