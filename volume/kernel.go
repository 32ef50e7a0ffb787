package volume

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-volume/internal/fastmath"
)

// GaussianKernel returns the 1-D kernel exp(-x²/(2σ²)) sampled at the
// integers x = -halfWidth..halfWidth and normalised to unit sum.
// The kernel has odd length 2*halfWidth+1 and is symmetric.
func GaussianKernel(sigma float64, halfWidth int) ([]float64, error) {
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return nil, fmt.Errorf("volume: gaussian sigma must be > 0: %f", sigma)
	}
	if halfWidth < 0 {
		return nil, fmt.Errorf("volume: gaussian half width must be >= 0: %d", halfWidth)
	}

	h := make([]float64, 2*halfWidth+1)
	denom := 2 * sigma * sigma
	sum := 0.0
	for i := range h {
		x := float64(i - halfWidth)
		h[i] = fastmath.Exp(-x * x / denom)
		sum += h[i]
	}

	for i := range h {
		h[i] /= sum
	}
	return h, nil
}

// PSF is a separable point-spread function: the outer product of one
// symmetric 1-D kernel per axis, sized for a particular volume shape.
type PSF struct {
	Shape   Shape
	Rad     float64
	Kernels [3][]float64
}

// GaussianPSF builds a separable Gaussian PSF with standard deviation rad
// for volumes of the given shape. Each axis kernel spans ±3·rad, truncated
// so that it never exceeds the axis length.
func GaussianPSF(shape Shape, rad float64) (*PSF, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if !(rad > 0) {
		return nil, fmt.Errorf("volume: psf radius must be > 0: %f", rad)
	}

	psf := &PSF{Shape: shape, Rad: rad}
	for axis, n := range shape {
		half := int(math.Ceil(3 * rad))
		if limit := (n - 1) / 2; half > limit {
			half = limit
		}
		h, err := GaussianKernel(rad, half)
		if err != nil {
			return nil, err
		}
		psf.Kernels[axis] = h
	}
	return psf, nil
}

// Apply blurs v with the PSF using periodic boundaries.
func (p *PSF) Apply(v *Volume) (*Volume, error) {
	if v == nil {
		return nil, ErrNilVolume
	}
	if v.shape != p.Shape {
		return nil, fmt.Errorf("%w: psf %s, volume %s", ErrShapeMismatch, p.Shape, v.shape)
	}
	return ConvolveSep3(v, p.Kernels[AxisX], p.Kernels[AxisY], p.Kernels[AxisZ])
}
