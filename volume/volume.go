package volume

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by volume construction and the numeric primitives.
var (
	ErrNilVolume     = errors.New("volume: nil volume")
	ErrInvalidShape  = errors.New("volume: invalid shape")
	ErrShapeMismatch = errors.New("volume: shape mismatch")
	ErrEmptyKernel   = errors.New("volume: empty kernel")
	ErrEvenKernel    = errors.New("volume: kernel length must be odd")
)

// Axis indices into a Shape.
const (
	AxisZ = iota
	AxisY
	AxisX
)

// Shape holds the extent of a volume along Z, Y and X.
type Shape [3]int

// Len returns the number of voxels described by s.
func (s Shape) Len() int {
	return s[AxisZ] * s[AxisY] * s[AxisX]
}

// Validate reports an error unless every dimension is >= 1.
func (s Shape) Validate() error {
	for axis, n := range s {
		if n < 1 {
			return fmt.Errorf("%w: axis %d has size %d", ErrInvalidShape, axis, n)
		}
	}
	return nil
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%d", s[AxisZ], s[AxisY], s[AxisX])
}

// stride returns the flat-index distance between neighbours along axis.
func (s Shape) stride(axis int) int {
	st := 1
	for a := axis + 1; a < len(s); a++ {
		st *= s[a]
	}
	return st
}

// index returns the flat offset of voxel (z, y, x).
func (s Shape) index(z, y, x int) int {
	return (z*s[AxisY]+y)*s[AxisX] + x
}

// forEachLine calls fn with the flat offset of the first voxel of every
// line running along axis. Consecutive voxels of a line are stride apart.
func forEachLine(s Shape, axis int, fn func(base, stride int)) {
	n := s[axis]
	stride := s.stride(axis)
	outer := s.Len() / (n * stride)
	for o := 0; o < outer; o++ {
		for i := 0; i < stride; i++ {
			fn(o*n*stride+i, stride)
		}
	}
}

// wrap maps i onto [0, n) periodically.
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Volume is a dense 3-D array of float64 samples.
type Volume struct {
	shape Shape
	data  []float64
}

// New returns a zero-filled volume of the given shape.
func New(shape Shape) (*Volume, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Volume{shape: shape, data: make([]float64, shape.Len())}, nil
}

// FromSlice wraps data without copying.
// Mutations to the slice are visible through the Volume and vice versa.
func FromSlice(shape Shape, data []float64) (*Volume, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Len() {
		return nil, fmt.Errorf("%w: %d samples for shape %s", ErrShapeMismatch, len(data), shape)
	}
	return &Volume{shape: shape, data: data}, nil
}

// Shape returns the volume's extent.
func (v *Volume) Shape() Shape {
	return v.shape
}

// Data returns the underlying row-major slice.
func (v *Volume) Data() []float64 {
	return v.data
}

// Len returns the number of voxels.
func (v *Volume) Len() int {
	return len(v.data)
}

// At returns the sample at (z, y, x).
func (v *Volume) At(z, y, x int) float64 {
	return v.data[v.shape.index(z, y, x)]
}

// Set stores value at (z, y, x).
func (v *Volume) Set(z, y, x int, value float64) {
	v.data[v.shape.index(z, y, x)] = value
}

// Clone returns an independent deep copy.
func (v *Volume) Clone() *Volume {
	data := make([]float64, len(v.data))
	copy(data, v.data)
	return &Volume{shape: v.shape, data: data}
}

// ToComplex returns a complex copy with zero imaginary parts.
func (v *Volume) ToComplex() *Complex {
	data := make([]complex128, len(v.data))
	for i, s := range v.data {
		data[i] = complex(s, 0)
	}
	return &Complex{shape: v.shape, data: data}
}

// Stats summarises the sample range of a volume.
type Stats struct {
	Min, Max, Mean float64
}

// Stats computes min, max and mean over all voxels.
// NaN samples propagate into Mean only.
func (v *Volume) Stats() Stats {
	st := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, s := range v.data {
		if s < st.Min {
			st.Min = s
		}
		if s > st.Max {
			st.Max = s
		}
		sum += s
	}
	st.Mean = sum / float64(len(v.data))
	return st
}

// Complex is a dense 3-D array of complex128 samples.
type Complex struct {
	shape Shape
	data  []complex128
}

// NewComplex returns a zero-filled complex volume.
func NewComplex(shape Shape) (*Complex, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Complex{shape: shape, data: make([]complex128, shape.Len())}, nil
}

// Shape returns the volume's extent.
func (c *Complex) Shape() Shape {
	return c.shape
}

// Data returns the underlying row-major slice.
func (c *Complex) Data() []complex128 {
	return c.data
}

// Clone returns an independent deep copy.
func (c *Complex) Clone() *Complex {
	data := make([]complex128, len(c.data))
	copy(data, c.data)
	return &Complex{shape: c.shape, data: data}
}
