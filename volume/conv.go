package volume

import (
	"fmt"
	"sync"
)

// lineBuf holds pooled scratch memory for one line in and one line out.
type lineBuf struct {
	data []float64
}

var linePool = sync.Pool{
	New: func() any { return &lineBuf{} },
}

func getLines(n int) (src, dst []float64, buf *lineBuf) {
	buf = linePool.Get().(*lineBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putLines(buf *lineBuf) {
	linePool.Put(buf)
}

// ConvolveSep3 convolves v with the outer product of kx, ky and kz.
//
// Each kernel must have odd length; its centre sample sits at index
// len(k)/2. The boundary is periodic: samples leaving one face re-enter at
// the opposite face, so kernels longer than an axis simply wrap more than
// once. The result has the shape of v.
func ConvolveSep3(v *Volume, kx, ky, kz []float64) (*Volume, error) {
	if v == nil {
		return nil, ErrNilVolume
	}

	kernels := [3][]float64{AxisZ: kz, AxisY: ky, AxisX: kx}
	for axis, k := range kernels {
		if err := validateKernel(k); err != nil {
			return nil, fmt.Errorf("axis %d: %w", axis, err)
		}
	}

	out := v.Clone()
	for axis, k := range kernels {
		convolveAxis(out, axis, k)
	}
	return out, nil
}

// ConvolveAxis convolves v along a single axis with the periodic boundary
// used by ConvolveSep3.
func ConvolveAxis(v *Volume, axis int, k []float64) (*Volume, error) {
	if v == nil {
		return nil, ErrNilVolume
	}
	if axis < AxisZ || axis > AxisX {
		return nil, fmt.Errorf("volume: invalid axis %d", axis)
	}
	if err := validateKernel(k); err != nil {
		return nil, err
	}

	out := v.Clone()
	convolveAxis(out, axis, k)
	return out, nil
}

func validateKernel(k []float64) error {
	if len(k) == 0 {
		return ErrEmptyKernel
	}
	if len(k)%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrEvenKernel, len(k))
	}
	return nil
}

// convolveAxis convolves every line of v along axis in place.
func convolveAxis(v *Volume, axis int, k []float64) {
	n := v.shape[axis]
	if len(k) == 1 {
		if k[0] != 1 {
			for i := range v.data {
				v.data[i] *= k[0]
			}
		}
		return
	}

	src, dst, buf := getLines(n)
	defer putLines(buf)

	forEachLine(v.shape, axis, func(base, stride int) {
		for i := range src {
			src[i] = v.data[base+i*stride]
		}
		circularLine(dst, src, k)
		for i, s := range dst {
			v.data[base+i*stride] = s
		}
	})
}

// circularLine computes dst[i] = sum_j k[j] * src[i-(j-c)] with indices
// taken modulo len(src) and c the kernel centre.
func circularLine(dst, src, k []float64) {
	n := len(src)
	c := len(k) / 2
	for i := range dst {
		sum := 0.0
		for j, w := range k {
			sum += w * src[wrap(i-j+c, n)]
		}
		dst[i] = sum
	}
}
