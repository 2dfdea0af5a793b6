package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 64; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("draw %d differs: %f vs %f", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d out of range: %f", i, va)
		}
	}

	c := NewRNG(43)
	same := true
	a = NewRNG(42)
	for i := 0; i < 8; i++ {
		if a.Float64() != c.Float64() {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds should produce different sequences")
	}
}

func TestOrEntropy(t *testing.T) {
	if OrEntropy(nil) == nil {
		t.Fatal("OrEntropy(nil) must return a usable source")
	}
	src := NewRNG(1)
	if got := OrEntropy(src); got != Source(src) {
		t.Fatal("OrEntropy should return a non-nil source unchanged")
	}
}
