package volume

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// FFT3 returns the forward 3-D discrete Fourier transform of c.
//
// The transform is computed as three passes of 1-D FFTs, one per axis,
// using algo-fft plans. No normalisation is applied. Axes of length 1 are
// skipped. Power-of-two extents are always supported; other extents
// depend on the plan sizes algo-fft accepts and fail with its error.
func FFT3(c *Complex) (*Complex, error) {
	if c == nil {
		return nil, ErrNilVolume
	}

	out := c.Clone()
	for axis := range out.shape {
		if err := fftAxis(out, axis); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// fftAxis transforms every line of c along axis in place.
func fftAxis(c *Complex, axis int) error {
	n := c.shape[axis]
	if n == 1 {
		return nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("volume: failed to create FFT plan of size %d: %w", n, err)
	}

	in := make([]complex128, n)
	freq := make([]complex128, n)

	var lineErr error
	forEachLine(c.shape, axis, func(base, stride int) {
		if lineErr != nil {
			return
		}
		for i := range in {
			in[i] = c.data[base+i*stride]
		}
		if err := plan.Forward(freq, in); err != nil {
			lineErr = err
			return
		}
		for i, f := range freq {
			c.data[base+i*stride] = f
		}
	})
	if lineErr != nil {
		return fmt.Errorf("volume: FFT along axis %d: %w", axis, lineErr)
	}
	return nil
}

// Magnitude returns |c| voxel by voxel.
func Magnitude(c *Complex) *Volume {
	n := len(c.data)
	re := make([]float64, n)
	im := make([]float64, n)
	for i, s := range c.data {
		re[i] = real(s)
		im[i] = imag(s)
	}

	out := &Volume{shape: c.shape, data: make([]float64, n)}
	vecmath.Magnitude(out.data, re, im)
	return out
}

// FFTShift moves the zero-frequency sample to the centre of every axis.
// Along an axis of length n, sample i moves to (i + n/2) mod n.
func FFTShift(v *Volume) *Volume {
	s := v.shape
	out := &Volume{shape: s, data: make([]float64, len(v.data))}
	hz, hy, hx := s[AxisZ]/2, s[AxisY]/2, s[AxisX]/2

	i := 0
	for z := 0; z < s[AxisZ]; z++ {
		oz := (z + hz) % s[AxisZ]
		for y := 0; y < s[AxisY]; y++ {
			oy := (y + hy) % s[AxisY]
			for x := 0; x < s[AxisX]; x++ {
				out.data[s.index(oz, oy, (x+hx)%s[AxisX])] = v.data[i]
				i++
			}
		}
	}
	return out
}
