//go:build !fastmath

package fastmath

import "math"

// Exp computes e^x using standard library math.
func Exp(x float64) float64 {
	return math.Exp(x)
}

// Log2 computes log2(x) using standard library math.
func Log2(x float64) float64 {
	return math.Log2(x)
}

// Sqrt computes sqrt(x) using standard library math.
func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}
