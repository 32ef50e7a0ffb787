package processor

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-volume/volume"
)

// DefaultNoiseSigma is the noise standard deviation used when none is given.
const DefaultNoiseSigma = 10.0

// Noise adds zero-mean Gaussian noise and clamps the result at zero.
//
// Options: "sigma" (float, >= 0) and, optionally, "seed" (int). With a
// seed every Apply draws the same noise; without one the shared math/rand
// source is used. No generator state is kept between calls.
type Noise struct {
	Base
}

// NoiseOption configures a Noise processor.
type NoiseOption func(Options)

// WithSeed makes every Apply draw noise from a fresh source seeded with seed.
func WithSeed(seed int64) NoiseOption {
	return func(o Options) {
		o["seed"] = seed
	}
}

// NewNoise returns a Noise named "noise".
func NewNoise(sigma float64, opts ...NoiseOption) (*Noise, error) {
	if err := validateNoiseSigma(sigma); err != nil {
		return nil, err
	}
	bag := Options{"sigma": sigma}
	for _, opt := range opts {
		if opt != nil {
			opt(bag)
		}
	}
	return &Noise{Base: *NewBase("noise", bag)}, nil
}

// Apply returns max(0, v + sigma*N(0, 1)) voxel by voxel. For sigma 0 the
// result equals v wherever v is non-negative.
func (p *Noise) Apply(v *volume.Volume) (*volume.Volume, error) {
	if v == nil {
		return nil, volume.ErrNilVolume
	}
	sigma, err := p.opts.Float("sigma")
	if err != nil {
		return nil, err
	}
	if err := validateNoiseSigma(sigma); err != nil {
		return nil, err
	}

	normal := rand.NormFloat64
	if p.opts.Has("seed") {
		seed, err := p.opts.Int("seed")
		if err != nil {
			return nil, err
		}
		normal = rand.New(rand.NewSource(int64(seed))).NormFloat64
	}

	out := v.Clone()
	data := out.Data()
	for i, s := range data {
		data[i] = math.Max(0, s+sigma*normal())
	}
	return out, nil
}

func validateNoiseSigma(sigma float64) error {
	if !(sigma >= 0) || math.IsInf(sigma, 1) {
		return fmt.Errorf("%w: noise sigma must be finite and >= 0: %v", ErrInvalidArgument, sigma)
	}
	return nil
}
