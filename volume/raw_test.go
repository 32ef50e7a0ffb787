package volume

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cwbudde/algo-volume/internal/testutil"
)

func TestRawRoundTrip(t *testing.T) {
	src, _ := FromSlice(Shape{2, 1, 3}, []float64{0, 1.5, -2, 0.25, 1024, 3})

	var buf bytes.Buffer
	if err := WriteRaw(&buf, src); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}
	if buf.Len() != 4*src.Len() {
		t.Fatalf("wrote %d bytes, want %d", buf.Len(), 4*src.Len())
	}

	got, err := ReadRaw(&buf, src.Shape())
	if err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	testutil.RequireSliceEqual(t, got.Data(), src.Data())
}

func TestReadRawShortInput(t *testing.T) {
	if _, err := ReadRaw(bytes.NewReader(make([]byte, 10)), Shape{1, 1, 3}); err == nil {
		t.Fatalf("expected error for short input")
	}
}

func TestWriteRawNil(t *testing.T) {
	if err := WriteRaw(&bytes.Buffer{}, nil); !errors.Is(err, ErrNilVolume) {
		t.Fatalf("error = %v, want ErrNilVolume", err)
	}
}
