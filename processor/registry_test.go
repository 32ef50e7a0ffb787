package processor

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-volume/volume"
)

func TestGlobalKinds(t *testing.T) {
	want := []string{"blur", "copy", "fft", "lucy-richardson", "noise"}
	if diff := cmp.Diff(want, Global.Kinds()); diff != "" {
		t.Fatalf("Kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestGlobalBuildsDefaults(t *testing.T) {
	tests := []struct {
		kind     string
		wantName string
		wantOpts Options
	}{
		{"copy", "copy", Options{}},
		{"blur", "blur", Options{"sigma": DefaultBlurSigma}},
		{"noise", "noise", Options{"sigma": DefaultNoiseSigma}},
		{"fft", "fft", Options{"log": false}},
		{"lucy-richardson", "RL-Deconv", Options{
			"rad":        DefaultLucyRichardsonRad,
			"niter":      DefaultLucyRichardsonNiter,
			"deconvolve": false,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			p, err := Global.New(tt.kind, nil)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if p.Name() != tt.wantName {
				t.Fatalf("Name = %q, want %q", p.Name(), tt.wantName)
			}
			if diff := cmp.Diff(tt.wantOpts, p.Options()); diff != "" {
				t.Fatalf("Options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGlobalBuildsFromOptions(t *testing.T) {
	p, err := Global.New("  Noise ", Options{"sigma": 2, "seed": 7})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := Options{"sigma": 2.0, "seed": int64(7)}
	if diff := cmp.Diff(want, p.Options()); diff != "" {
		t.Fatalf("Options mismatch (-want +got):\n%s", diff)
	}

	lr, err := Global.New("lucy-richardson", Options{"rad": 2, "niter": 3.0, "deconvolve": true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if on, _ := lr.Option("deconvolve"); on != true {
		t.Fatalf("deconvolve = %v, want true", on)
	}
}

func TestGlobalRejectsBadInput(t *testing.T) {
	tests := []struct {
		kind string
		opts Options
		want error
	}{
		{"median", nil, ErrUnknownKind},
		{"blur", Options{"sigam": 2}, ErrUnknownOption},
		{"copy", Options{"x": 1}, ErrUnknownOption},
		{"blur", Options{"sigma": -2}, ErrInvalidArgument},
		{"fft", Options{"log": "yes"}, ErrOptionType},
		{"noise", Options{"seed": 1.5}, ErrOptionType},
		{"lucy-richardson", Options{"niter": -1}, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%v", tt.kind, tt.opts), func(t *testing.T) {
			if _, err := Global.New(tt.kind, tt.opts); !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	invert := func(opts Options) (Processor, error) {
		return NewFunc(func(v *volume.Volume, opts Options) (*volume.Volume, error) {
			top, err := opts.FloatOr("max", 1)
			if err != nil {
				return nil, err
			}
			out := v.Clone()
			for i, s := range out.Data() {
				out.Data()[i] = top - s
			}
			return out, nil
		}, "invert", opts)
	}

	if err := r.Register("Invert", invert); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register("invert", invert); !errors.Is(err, ErrDuplicateKind) {
		t.Fatalf("error = %v, want ErrDuplicateKind", err)
	}
	if err := r.Register(" ", invert); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
	if err := r.Register("nil", nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}

	p, err := r.New("invert", Options{"max": 10})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	v, _ := volume.FromSlice(volume.Shape{1, 1, 2}, []float64{1, 4})
	got, err := p.Apply(v)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.Data()[0] != 9 || got.Data()[1] != 6 {
		t.Fatalf("Apply = %v", got.Data())
	}
}

func TestRegistryConcurrentUse(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			kind := fmt.Sprintf("k%d", i)
			if err := r.Register(kind, newCopyFromOptions); err != nil {
				t.Errorf("Register(%s): %v", kind, err)
				return
			}
			if _, err := r.New(kind, nil); err != nil {
				t.Errorf("New(%s): %v", kind, err)
			}
			_ = r.Kinds()
		}(i)
	}
	wg.Wait()

	if n := len(r.Kinds()); n != 8 {
		t.Fatalf("%d kinds registered, want 8", n)
	}
}
