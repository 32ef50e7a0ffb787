package volume

import "fmt"

// PadMode selects how samples outside the source volume are synthesised.
type PadMode int

const (
	// PadZero fills new samples with 0.
	PadZero PadMode = iota

	// PadWrap repeats the volume periodically.
	PadWrap

	// PadReflect mirrors the volume about its edge samples without
	// repeating them (d c b | a b c d | c b a).
	PadReflect
)

func (m PadMode) String() string {
	switch m {
	case PadZero:
		return "zero"
	case PadWrap:
		return "wrap"
	case PadReflect:
		return "reflect"
	default:
		return fmt.Sprintf("PadMode(%d)", int(m))
	}
}

// PadToShape pads or crops v to target, keeping the content centred.
//
// Along an axis that grows by d samples, ceil(d/2) samples are added before
// the data and the rest after. Along an axis that shrinks by d samples,
// floor(d/2) samples are dropped from the front and the rest from the back.
// Axes may grow and shrink independently.
func PadToShape(v *Volume, target Shape, mode PadMode) (*Volume, error) {
	if v == nil {
		return nil, ErrNilVolume
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if target == v.shape {
		return v.Clone(), nil
	}

	var maps [3][]int
	for axis := range maps {
		m, err := axisMap(v.shape[axis], target[axis], mode)
		if err != nil {
			return nil, err
		}
		maps[axis] = m
	}

	out := &Volume{shape: target, data: make([]float64, target.Len())}
	i := 0
	for _, sz := range maps[AxisZ] {
		for _, sy := range maps[AxisY] {
			for _, sx := range maps[AxisX] {
				if sz >= 0 && sy >= 0 && sx >= 0 {
					out.data[i] = v.data[v.shape.index(sz, sy, sx)]
				}
				i++
			}
		}
	}
	return out, nil
}

// PadToPower2 grows every axis of v to the next power of two.
func PadToPower2(v *Volume, mode PadMode) (*Volume, error) {
	if v == nil {
		return nil, ErrNilVolume
	}
	var target Shape
	for axis, n := range v.shape {
		target[axis] = nextPowerOf2(n)
	}
	return PadToShape(v, target, mode)
}

// axisMap returns, for each target position, the source index it reads or
// -1 where the sample is zero.
func axisMap(n, target int, mode PadMode) ([]int, error) {
	d := target - n
	shift := 0
	switch {
	case d > 0:
		shift = (d + 1) / 2
	case d < 0:
		shift = -(-d / 2)
	}

	m := make([]int, target)
	for t := range m {
		src := t - shift
		if src >= 0 && src < n {
			m[t] = src
			continue
		}
		switch mode {
		case PadZero:
			m[t] = -1
		case PadWrap:
			m[t] = wrap(src, n)
		case PadReflect:
			m[t] = reflect(src, n)
		default:
			return nil, fmt.Errorf("volume: unknown pad mode %v", mode)
		}
	}
	return m, nil
}

func reflect(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2*n - 2
	i = wrap(i, period)
	if i >= n {
		i = period - i
	}
	return i
}

// nextPowerOf2 returns the smallest power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
