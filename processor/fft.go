package processor

import (
	"github.com/cwbudde/algo-volume/internal/fastmath"
	"github.com/cwbudde/algo-volume/volume"
)

// logFloor keeps log2 finite for empty frequency bins.
const logFloor = 0.001

// FFT renders the centred Fourier magnitude of a volume.
//
// Options: "log" (bool). The result is a diagnostic image, not an
// invertible transform.
type FFT struct {
	Base
}

// NewFFT returns an FFT named "fft".
func NewFFT(log bool) *FFT {
	return &FFT{Base: *NewBase("fft", Options{"log": log})}
}

// Apply wrap-pads v to power-of-two extents, takes the magnitude of its 3-D
// DFT, moves zero frequency to the centre, scales by 1/sqrt(N) for the
// padded voxel count N and crops back to the shape of v. With "log" set
// the result is log2(0.001 + magnitude), which may be negative.
func (p *FFT) Apply(v *volume.Volume) (*volume.Volume, error) {
	if v == nil {
		return nil, volume.ErrNilVolume
	}
	logScale, err := p.opts.Bool("log")
	if err != nil {
		return nil, err
	}

	padded, err := volume.PadToPower2(v, volume.PadWrap)
	if err != nil {
		return nil, err
	}
	freq, err := volume.FFT3(padded.ToComplex())
	if err != nil {
		return nil, err
	}

	mag := volume.FFTShift(volume.Magnitude(freq))
	scale := 1 / fastmath.Sqrt(float64(mag.Len()))
	for i, m := range mag.Data() {
		mag.Data()[i] = m * scale
	}

	out, err := volume.PadToShape(mag, v.Shape(), volume.PadZero)
	if err != nil {
		return nil, err
	}
	if logScale {
		data := out.Data()
		for i, m := range data {
			data[i] = fastmath.Log2(logFloor + m)
		}
	}
	return out, nil
}
