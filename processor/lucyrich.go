package processor

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-volume/volume"
)

// Defaults for LucyRichardson.
const (
	DefaultLucyRichardsonRad   = 4.0
	DefaultLucyRichardsonNiter = 6
)

// psfCache is a PSF tagged with the shape and radius it was built for.
// The zero-PSF entry is the 1x1x1 placeholder and never matches.
type psfCache struct {
	shape volume.Shape
	rad   float64
	psf   *volume.PSF
}

func (c psfCache) matches(shape volume.Shape, rad float64) bool {
	return c.psf != nil && c.shape == shape && c.rad == rad
}

// LucyRichardson tracks a point-spread function for Richardson–Lucy
// deconvolution.
//
// Options: "rad" (PSF radius, float > 0, changeable with SetRad), "niter"
// (iteration count, int >= 0) and "deconvolve" (bool). On every Apply the
// cached PSF is rebuilt when the volume shape or the radius differs from
// the cache tag.
//
// The deconvolution step is incomplete: by default Apply returns a copy of
// its input unchanged. WithDeconvolution enables the multiplicative update
// against a Gaussian PSF of standard deviation rad; that PSF model is a
// stand-in until a measured PSF is available.
type LucyRichardson struct {
	Base

	cache     psfCache
	lastNiter int
	onReset   func(shape volume.Shape, rad float64)
}

// LucyRichardsonOption configures a LucyRichardson processor.
type LucyRichardsonOption func(*LucyRichardson)

// WithDeconvolution makes Apply run the Richardson–Lucy iterations.
func WithDeconvolution() LucyRichardsonOption {
	return func(p *LucyRichardson) {
		p.opts["deconvolve"] = true
	}
}

// WithPSFResetHook registers fn to be called after every PSF rebuild.
func WithPSFResetHook(fn func(shape volume.Shape, rad float64)) LucyRichardsonOption {
	return func(p *LucyRichardson) {
		p.onReset = fn
	}
}

// NewLucyRichardson returns a LucyRichardson named "RL-Deconv".
func NewLucyRichardson(rad float64, niter int, opts ...LucyRichardsonOption) (*LucyRichardson, error) {
	if err := validateRad(rad); err != nil {
		return nil, err
	}
	if niter < 0 {
		return nil, fmt.Errorf("%w: iteration count must be >= 0: %d", ErrInvalidArgument, niter)
	}

	p := &LucyRichardson{
		Base: *NewBase("RL-Deconv", Options{
			"rad":        rad,
			"niter":      niter,
			"deconvolve": false,
		}),
		cache:     psfCache{shape: volume.Shape{1, 1, 1}, rad: rad},
		lastNiter: niter,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p, nil
}

// SetPSFResetHook replaces the hook called after every PSF rebuild.
// A nil fn removes it.
func (p *LucyRichardson) SetPSFResetHook(fn func(shape volume.Shape, rad float64)) {
	p.onReset = fn
}

// Rad returns the current PSF radius.
func (p *LucyRichardson) Rad() (float64, error) {
	return p.opts.Float("rad")
}

// SetRad changes the PSF radius. The cached PSF is rebuilt on the next Apply.
// A radius that is not finite and > 0 is rejected and the old one kept.
func (p *LucyRichardson) SetRad(rad float64) error {
	if err := validateRad(rad); err != nil {
		return err
	}
	p.opts["rad"] = rad
	return nil
}

// PSF returns the cached PSF, or nil before the first Apply.
func (p *LucyRichardson) PSF() *volume.PSF {
	return p.cache.psf
}

// LastIterations returns the iteration count used by the most recent Apply.
func (p *LucyRichardson) LastIterations() int {
	return p.lastNiter
}

// Apply refreshes the PSF cache for v and returns either a copy of v or,
// with deconvolution enabled, the Richardson–Lucy estimate.
//
// The options are validated in both modes: a bag installed with SetOptions
// whose "rad" is not > 0 fails even when deconvolution is off.
func (p *LucyRichardson) Apply(v *volume.Volume) (*volume.Volume, error) {
	if v == nil {
		return nil, volume.ErrNilVolume
	}
	rad, err := p.opts.Float("rad")
	if err != nil {
		return nil, err
	}
	if err := validateRad(rad); err != nil {
		return nil, err
	}
	niter, err := p.opts.Int("niter")
	if err != nil {
		return nil, err
	}
	if niter < 0 {
		return nil, fmt.Errorf("%w: iteration count must be >= 0: %d", ErrInvalidArgument, niter)
	}
	enabled, err := p.opts.BoolOr("deconvolve", false)
	if err != nil {
		return nil, err
	}

	if !p.cache.matches(v.Shape(), rad) {
		if err := p.resetPSF(v.Shape(), rad); err != nil {
			return nil, err
		}
	}
	p.lastNiter = niter

	if !enabled {
		return v.Clone(), nil
	}
	return volume.LucyRichardson(v, p.cache.psf, niter)
}

func (p *LucyRichardson) resetPSF(shape volume.Shape, rad float64) error {
	psf, err := volume.GaussianPSF(shape, rad)
	if err != nil {
		return err
	}
	p.cache = psfCache{shape: shape, rad: rad, psf: psf}
	if p.onReset != nil {
		p.onReset(shape, rad)
	}
	return nil
}

func validateRad(rad float64) error {
	if !(rad > 0) || math.IsInf(rad, 1) {
		return fmt.Errorf("%w: psf radius must be finite and > 0: %v", ErrInvalidArgument, rad)
	}
	return nil
}
