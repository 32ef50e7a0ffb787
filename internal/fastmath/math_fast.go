//go:build fastmath

package fastmath

import "github.com/meko-christian/algo-approx"

// ln2 is the natural logarithm of 2, used for log base conversions.
const ln2 = 0.693147180559945309417232121458

// Exp computes e^x using fast approximation.
func Exp(x float64) float64 {
	return approx.FastExp(x)
}

// Log2 computes log2(x) using fast approximation.
// Uses the identity: log2(x) = ln(x) / ln(2)
func Log2(x float64) float64 {
	return approx.FastLog(x) / ln2
}

// Sqrt computes sqrt(x) using fast approximation.
func Sqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
