package processor

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-volume/volume"
)

// DefaultBlurSigma is the Gaussian width used when none is given.
const DefaultBlurSigma = 4.0

// MaxBlurSigma bounds sigma so the kernel half-width stays within 1<<20 taps.
const MaxBlurSigma = (1<<20 - 1) / 2.0

// Blur smooths a volume with a separable Gaussian.
//
// Options: "sigma" (float, > 0).
type Blur struct {
	Base
}

// NewBlur returns a Blur named "blur".
func NewBlur(sigma float64) (*Blur, error) {
	if err := validateSigma(sigma); err != nil {
		return nil, err
	}
	return &Blur{Base: *NewBase("blur", Options{"sigma": sigma})}, nil
}

// Sigma returns the configured Gaussian width.
func (p *Blur) Sigma() (float64, error) {
	sigma, err := p.opts.Float("sigma")
	if err != nil {
		return 0, err
	}
	return sigma, validateSigma(sigma)
}

// Apply convolves v with the kernel from BlurKernel along all three axes.
// The boundary is periodic; the result has the shape of v.
func (p *Blur) Apply(v *volume.Volume) (*volume.Volume, error) {
	sigma, err := p.Sigma()
	if err != nil {
		return nil, err
	}
	h, err := BlurKernel(sigma)
	if err != nil {
		return nil, err
	}
	return volume.ConvolveSep3(v, h, h, h)
}

// BlurKernel returns the normalised Gaussian exp(-x²/(2σ²)) sampled on
// [-N, N] with N = ceil(2σ + 1).
func BlurKernel(sigma float64) ([]float64, error) {
	if err := validateSigma(sigma); err != nil {
		return nil, err
	}
	return volume.GaussianKernel(sigma, int(math.Ceil(2*sigma+1)))
}

func validateSigma(sigma float64) error {
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return fmt.Errorf("%w: blur sigma must be finite and > 0: %v", ErrInvalidArgument, sigma)
	}
	if sigma > MaxBlurSigma {
		return fmt.Errorf("%w: blur sigma must be <= %v: %v", ErrInvalidArgument, MaxBlurSigma, sigma)
	}
	return nil
}
