package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-volume/volume"
)

func parseShape(s string) (volume.Shape, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return volume.Shape{}, fmt.Errorf("invalid shape %q: want Z,Y,X", s)
	}
	var shape volume.Shape
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return volume.Shape{}, fmt.Errorf("invalid shape %q: %w", s, err)
		}
		shape[i] = n
	}
	return shape, shape.Validate()
}

func makePhantom(name string, shape volume.Shape, seed int64) (*volume.Volume, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sphere":
		minDim := shape[0]
		for _, n := range shape {
			minDim = min(minDim, n)
		}
		return volume.Sphere(shape, float64(minDim)/4, 100)
	case "delta":
		return volume.Delta(shape)
	case "ramp":
		return volume.Ramp(shape)
	case "noise":
		return volume.UniformNoise(shape, seed, 100)
	default:
		return nil, fmt.Errorf("unknown phantom %q (sphere, delta, ramp, noise)", name)
	}
}

func readVolume(path string, shape volume.Shape) (*volume.Volume, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return volume.ReadRaw(f, shape)
}

func writeVolume(path string, v *volume.Volume) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return volume.WriteRaw(f, v)
}
