package random

import "testing"

func TestNewSeedVaries(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct seeds, got %d twice", a)
	}
}

func TestNewIsDeterministicForFixedSeed(t *testing.T) {
	first, seed, err := New(42)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if seed != 42 {
		t.Fatalf("seed = %d, want 42", seed)
	}
	second, _, err := New(42)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for i := 0; i < 10; i++ {
		if a, b := first.Intn(100), second.Intn(100); a != b {
			t.Fatalf("draw %d: %d != %d", i, a, b)
		}
	}
}

func TestNewZeroSeedPicksFreshSeed(t *testing.T) {
	_, seed, err := New(0)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if seed == 0 {
		t.Fatal("expected non-zero seed")
	}
}
