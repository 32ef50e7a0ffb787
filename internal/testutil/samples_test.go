package testutil

import "testing"

func TestDeterministicSamplesRepeatable(t *testing.T) {
	a := DeterministicSamples(7, 10, 64)
	b := DeterministicSamples(7, 10, 64)
	RequireSliceEqual(t, a, b)
	RequireNonNegative(t, a)

	for i, v := range a {
		if v >= 10 {
			t.Fatalf("index %d: %v not below amplitude", i, v)
		}
	}
}

func TestImpulse(t *testing.T) {
	got := Impulse(5, 2)
	RequireSliceEqual(t, got, []float64{0, 0, 1, 0, 0})

	if s := Sum(Impulse(5, 9)); s != 0 {
		t.Fatalf("out-of-range impulse sum = %v, want 0", s)
	}
}

func TestConstant(t *testing.T) {
	RequireSliceEqual(t, Constant(2.5, 3), []float64{2.5, 2.5, 2.5})
}
