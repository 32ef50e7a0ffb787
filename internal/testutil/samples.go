package testutil

import "math/rand"

// DeterministicSamples returns n values uniformly distributed in
// [0, amplitude) for a fixed seed, suitable as non-negative voxel data.
func DeterministicSamples(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64() * amplitude
	}
	return out
}

// Impulse returns n zeros with a single 1 at pos.
func Impulse(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}

// Constant returns n copies of value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}
