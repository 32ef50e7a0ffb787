// Package fastmath routes the transcendental functions used by the volume
// kernels through a single place.
//
// By default the functions call the standard library. Building with
// -tags fastmath switches them to the algo-approx approximations, which
// trade a small relative error for speed on large volumes.
package fastmath
