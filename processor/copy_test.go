package processor

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-volume/internal/testutil"
	"github.com/cwbudde/algo-volume/volume"
)

func TestCopyIsIdentity(t *testing.T) {
	s := volume.Shape{3, 4, 5}
	v, _ := volume.FromSlice(s, testutil.DeterministicSamples(1, 50, s.Len()))

	p := NewCopy()
	if p.Name() != "copy" {
		t.Fatalf("Name = %q", p.Name())
	}

	got, err := p.Apply(v)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	testutil.RequireSliceEqual(t, got.Data(), v.Data())

	got.Data()[0] = -1
	if v.Data()[0] == -1 {
		t.Fatalf("Copy result aliases its input")
	}
}

func TestCopyNil(t *testing.T) {
	if _, err := NewCopy().Apply(nil); !errors.Is(err, volume.ErrNilVolume) {
		t.Fatalf("error = %v, want ErrNilVolume", err)
	}
}
