// Package volume provides a dense 3-D sample container and the numeric
// primitives that volumetric processors are built from.
//
// A [Volume] stores float64 samples in row-major order with shape
// (Z, Y, X); x varies fastest. [Complex] is the complex-valued counterpart
// used on the Fourier path.
//
// # Primitives
//
//   - [ConvolveSep3]: separable convolution with periodic (wrap-around) boundary
//   - [PadToShape], [PadToPower2]: centred padding and cropping
//   - [FFT3], [Magnitude], [FFTShift]: forward 3-D DFT via algo-fft plans
//   - [GaussianKernel], [GaussianPSF], [LucyRichardson]: deconvolution support
//
// All primitives are synchronous and return new volumes; inputs are never
// modified.
//
// # Usage
//
//	v, _ := volume.Sphere(volume.Shape{32, 32, 32}, 8, 100)
//	h, _ := volume.GaussianKernel(2, 5)
//	smooth, err := volume.ConvolveSep3(v, h, h, h)
package volume
