package volume

import (
	"fmt"
	"math"
	"math/rand"
)

// Delta returns a volume that is 1 at the centre voxel (Z/2, Y/2, X/2)
// and 0 elsewhere.
func Delta(shape Shape) (*Volume, error) {
	v, err := New(shape)
	if err != nil {
		return nil, err
	}
	v.Set(shape[AxisZ]/2, shape[AxisY]/2, shape[AxisX]/2, 1)
	return v, nil
}

// Sphere returns a volume holding value inside the ball of the given radius
// around the centre voxel and 0 outside.
func Sphere(shape Shape, radius, value float64) (*Volume, error) {
	if radius < 0 {
		return nil, fmt.Errorf("volume: sphere radius must be >= 0: %f", radius)
	}
	v, err := New(shape)
	if err != nil {
		return nil, err
	}

	cz, cy, cx := shape[AxisZ]/2, shape[AxisY]/2, shape[AxisX]/2
	r2 := radius * radius
	i := 0
	for z := 0; z < shape[AxisZ]; z++ {
		for y := 0; y < shape[AxisY]; y++ {
			for x := 0; x < shape[AxisX]; x++ {
				dz, dy, dx := float64(z-cz), float64(y-cy), float64(x-cx)
				if dz*dz+dy*dy+dx*dx <= r2 {
					v.data[i] = value
				}
				i++
			}
		}
	}
	return v, nil
}

// Ramp returns a volume whose voxel (z, y, x) holds z + y + x.
func Ramp(shape Shape) (*Volume, error) {
	v, err := New(shape)
	if err != nil {
		return nil, err
	}
	i := 0
	for z := 0; z < shape[AxisZ]; z++ {
		for y := 0; y < shape[AxisY]; y++ {
			for x := 0; x < shape[AxisX]; x++ {
				v.data[i] = float64(z + y + x)
				i++
			}
		}
	}
	return v, nil
}

// UniformNoise returns deterministic noise uniformly distributed in
// [0, amplitude) for the given seed.
func UniformNoise(shape Shape, seed int64, amplitude float64) (*Volume, error) {
	if amplitude < 0 || math.IsNaN(amplitude) {
		return nil, fmt.Errorf("volume: noise amplitude must be >= 0: %f", amplitude)
	}
	v, err := New(shape)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range v.data {
		v.data[i] = rng.Float64() * amplitude
	}
	return v, nil
}
