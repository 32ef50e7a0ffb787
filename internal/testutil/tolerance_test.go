package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffIdentical(t *testing.T) {
	a := []float64{1, 2, 3}

	d, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for identical slices", d)
	}
}

func TestL2Diff(t *testing.T) {
	d, err := L2Diff([]float64{0, 0, 1}, []float64{3, 4, 1})
	if err != nil {
		t.Fatalf("L2Diff error: %v", err)
	}
	if math.Abs(d-5) > 1e-15 {
		t.Fatalf("L2Diff = %v, want 5", d)
	}

	if _, err := L2Diff([]float64{1}, nil); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireSymmetricAndNonNegative(t *testing.T) {
	RequireSymmetric(t, []float64{0.25, 0.5, 0.25})
	RequireSymmetric(t, []float64{1})
	RequireNonNegative(t, []float64{0, 1, 2})
}

func TestSum(t *testing.T) {
	if s := Sum([]float64{1, 2, 3.5}); s != 6.5 {
		t.Fatalf("Sum = %v, want 6.5", s)
	}
}
