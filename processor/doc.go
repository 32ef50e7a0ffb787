// Package processor defines a uniform contract for volumetric transforms
// and the built-in transforms that satisfy it.
//
// Every [Processor] has a descriptive name, a bag of named options fixed at
// construction, and an Apply method that maps one volume to a new one.
// Callers can swap, inspect and construct processors without knowing the
// concrete type:
//
//	p, err := processor.Global.New("blur", processor.Options{"sigma": 2.0})
//	out, err := p.Apply(v)
//	sigma, err := p.Option("sigma")
//
// # Variants
//
//   - [Copy]: identity
//   - [Blur]: separable Gaussian smoothing with periodic boundary
//   - [Noise]: additive Gaussian noise clamped at zero
//   - [FFT]: centred, normalised Fourier magnitude (optionally log2)
//   - [LucyRichardson]: PSF cache bookkeeping; deconvolution is opt-in
//   - [Func]: adapter for arbitrary functions
//
// Apply never modifies its input. Processor instances are not safe for
// concurrent use; use one instance per goroutine. The [Registry] is safe for
// concurrent use.
package processor
