package processor

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory builds a processor from an option bag.
type Factory func(opts Options) (Processor, error)

// Registry maps processor kinds to factories.
//
// Kinds are matched case-insensitively with surrounding space ignored.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// Global is the default registry holding the built-in kinds:
// "copy", "blur", "noise", "fft" and "lucy-richardson".
var Global = newBuiltinRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under kind.
func (r *Registry) Register(kind string, f Factory) error {
	kind = normalizeKind(kind)
	if kind == "" {
		return fmt.Errorf("%w: empty kind", ErrInvalidArgument)
	}
	if f == nil {
		return fmt.Errorf("%w: nil factory for %q", ErrInvalidArgument, kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[kind]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, kind)
	}
	r.factories[kind] = f
	return nil
}

// New builds a processor of the given kind.
func (r *Registry) New(kind string, opts Options) (Processor, error) {
	kind = normalizeKind(kind)

	r.mu.RLock()
	f, ok := r.factories[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	p, err := f(opts.Clone())
	if err != nil {
		return nil, fmt.Errorf("processor: build %q: %w", kind, err)
	}
	return p, nil
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func normalizeKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}

func newBuiltinRegistry() *Registry {
	r := NewRegistry()
	builtins := []struct {
		kind    string
		factory Factory
	}{
		{"copy", newCopyFromOptions},
		{"blur", newBlurFromOptions},
		{"noise", newNoiseFromOptions},
		{"fft", newFFTFromOptions},
		{"lucy-richardson", newLucyRichardsonFromOptions},
	}
	for _, b := range builtins {
		if err := r.Register(b.kind, b.factory); err != nil {
			panic(err)
		}
	}
	return r
}

func newCopyFromOptions(opts Options) (Processor, error) {
	if err := opts.only(); err != nil {
		return nil, err
	}
	return NewCopy(), nil
}

func newBlurFromOptions(opts Options) (Processor, error) {
	if err := opts.only("sigma"); err != nil {
		return nil, err
	}
	sigma, err := opts.FloatOr("sigma", DefaultBlurSigma)
	if err != nil {
		return nil, err
	}
	p, err := NewBlur(sigma)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func newNoiseFromOptions(opts Options) (Processor, error) {
	if err := opts.only("sigma", "seed"); err != nil {
		return nil, err
	}
	sigma, err := opts.FloatOr("sigma", DefaultNoiseSigma)
	if err != nil {
		return nil, err
	}
	var extra []NoiseOption
	if opts.Has("seed") {
		seed, err := opts.Int("seed")
		if err != nil {
			return nil, err
		}
		extra = append(extra, WithSeed(int64(seed)))
	}
	p, err := NewNoise(sigma, extra...)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func newFFTFromOptions(opts Options) (Processor, error) {
	if err := opts.only("log"); err != nil {
		return nil, err
	}
	logScale, err := opts.BoolOr("log", false)
	if err != nil {
		return nil, err
	}
	return NewFFT(logScale), nil
}

func newLucyRichardsonFromOptions(opts Options) (Processor, error) {
	if err := opts.only("rad", "niter", "deconvolve"); err != nil {
		return nil, err
	}
	rad, err := opts.FloatOr("rad", DefaultLucyRichardsonRad)
	if err != nil {
		return nil, err
	}
	niter, err := opts.IntOr("niter", DefaultLucyRichardsonNiter)
	if err != nil {
		return nil, err
	}
	enabled, err := opts.BoolOr("deconvolve", false)
	if err != nil {
		return nil, err
	}

	var extra []LucyRichardsonOption
	if enabled {
		extra = append(extra, WithDeconvolution())
	}
	p, err := NewLucyRichardson(rad, niter, extra...)
	if err != nil {
		return nil, err
	}
	return p, nil
}
