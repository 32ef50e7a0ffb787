package processor

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-volume/internal/testutil"
	"github.com/cwbudde/algo-volume/volume"
)

func TestBlurKernel(t *testing.T) {
	tests := []struct {
		sigma   float64
		wantLen int
	}{
		{0.5, 5},
		{1, 7},
		{1.3, 9},
		{4, 19},
	}

	for _, tt := range tests {
		h, err := BlurKernel(tt.sigma)
		if err != nil {
			t.Fatalf("BlurKernel(%v): %v", tt.sigma, err)
		}
		if len(h) != tt.wantLen {
			t.Fatalf("BlurKernel(%v) length = %d, want %d", tt.sigma, len(h), tt.wantLen)
		}
		if s := testutil.Sum(h); math.Abs(s-1) > 1e-12 {
			t.Fatalf("BlurKernel(%v) sum = %v, want 1", tt.sigma, s)
		}
		testutil.RequireSymmetric(t, h)
	}
}

func TestBlurPreservesShapeAndFlux(t *testing.T) {
	for _, s := range []volume.Shape{{8, 8, 8}, {3, 5, 7}, {1, 1, 16}} {
		data := testutil.DeterministicSamples(4, 100, s.Len())
		want := append([]float64(nil), data...)
		v, _ := volume.FromSlice(s, data)

		p, _ := NewBlur(1.5)
		got, err := p.Apply(v)
		if err != nil {
			t.Fatalf("Apply(%v): %v", s, err)
		}
		if got.Shape() != s {
			t.Fatalf("shape = %v, want %v", got.Shape(), s)
		}
		fluxIn, fluxOut := testutil.Sum(want), testutil.Sum(got.Data())
		if math.Abs(fluxIn-fluxOut) > 1e-9*fluxIn {
			t.Fatalf("flux %v -> %v", fluxIn, fluxOut)
		}
		testutil.RequireSliceEqual(t, data, want)
	}
}

func TestBlurConstantStaysConstant(t *testing.T) {
	s := volume.Shape{4, 6, 5}
	v, _ := volume.FromSlice(s, testutil.Constant(7, s.Len()))

	p, _ := NewBlur(DefaultBlurSigma)
	got, err := p.Apply(v)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got.Data(), v.Data(), 1e-12)
}

func TestBlurSmooths(t *testing.T) {
	s := volume.Shape{16, 16, 16}
	v, _ := volume.Delta(s)

	p, _ := NewBlur(1)
	got, _ := p.Apply(v)

	if peak := got.At(8, 8, 8); peak >= 1 || peak <= 0 {
		t.Fatalf("peak = %v, want in (0, 1)", peak)
	}
	if got.At(8, 8, 9) >= got.At(8, 8, 8) {
		t.Fatalf("blurred impulse should peak at the centre")
	}
}

func TestBlurInvalidSigma(t *testing.T) {
	for _, sigma := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewBlur(sigma); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("NewBlur(%v) error = %v, want ErrInvalidArgument", sigma, err)
		}
	}

	p, _ := NewBlur(1)
	p.SetOptions(Options{"sigma": "wide"})
	v, _ := volume.New(volume.Shape{2, 2, 2})
	if _, err := p.Apply(v); !errors.Is(err, ErrOptionType) {
		t.Fatalf("error = %v, want ErrOptionType", err)
	}
}

func TestBlurSigmaTooLarge(t *testing.T) {
	for _, sigma := range []float64{MaxBlurSigma + 1, 1e17, math.MaxFloat64} {
		if _, err := NewBlur(sigma); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("NewBlur(%v) error = %v, want ErrInvalidArgument", sigma, err)
		}
		if _, err := BlurKernel(sigma); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("BlurKernel(%v) error = %v, want ErrInvalidArgument", sigma, err)
		}
		if _, err := Global.New("blur", Options{"sigma": sigma}); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Global.New(blur, %v) error = %v, want ErrInvalidArgument", sigma, err)
		}
	}

	p, _ := NewBlur(1)
	p.SetOptions(Options{"sigma": 1e18})
	v, _ := volume.New(volume.Shape{2, 2, 2})
	if _, err := p.Apply(v); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
}
