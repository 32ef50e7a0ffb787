package volume

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// lrFloor guards the ratio step against division by a vanishing estimate.
const lrFloor = 1e-12

// LucyRichardson runs niter iterations of the multiplicative
// Richardson–Lucy update
//
//	u ← u · (PSF* ⊛ (data / (PSF ⊛ u)))
//
// starting from u = data. The PSF kernels are symmetric, so the mirrored
// PSF* equals the PSF. Data is expected to be non-negative; where the
// blurred estimate falls below a tiny floor the correction ratio is 0.
func LucyRichardson(data *Volume, psf *PSF, niter int) (*Volume, error) {
	if data == nil {
		return nil, ErrNilVolume
	}
	if psf == nil {
		return nil, fmt.Errorf("volume: nil psf")
	}
	if niter < 0 {
		return nil, fmt.Errorf("volume: iteration count must be >= 0: %d", niter)
	}
	if data.shape != psf.Shape {
		return nil, fmt.Errorf("%w: psf %s, data %s", ErrShapeMismatch, psf.Shape, data.shape)
	}

	u := data.Clone()
	ratio := &Volume{shape: data.shape, data: make([]float64, len(data.data))}
	for it := 0; it < niter; it++ {
		blurred, err := psf.Apply(u)
		if err != nil {
			return nil, fmt.Errorf("volume: lucy-richardson iteration %d: %w", it, err)
		}
		for i, b := range blurred.data {
			if b > lrFloor {
				ratio.data[i] = data.data[i] / b
			} else {
				ratio.data[i] = 0
			}
		}
		correction, err := psf.Apply(ratio)
		if err != nil {
			return nil, fmt.Errorf("volume: lucy-richardson iteration %d: %w", it, err)
		}
		vecmath.MulBlockInPlace(u.data, correction.data)
	}
	return u, nil
}
