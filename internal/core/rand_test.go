package core

import "testing"

func TestXorShift32Determinism(t *testing.T) {
	a := NewXorShift32(12345)
	b := NewXorShift32(12345)

	for i := 0; i < 100; i++ {
		va, vb := a.Uint32(), b.Uint32()
		if va != vb {
			t.Fatalf("sequence diverged at step %d: %d != %d", i, va, vb)
		}
	}
}

func TestXorShift32KnownSequence(t *testing.T) {
	// First value for seed 1: 1 -> ^(<<13) -> ^(>>17) -> ^(<<5)
	r := NewXorShift32(1)
	got := r.Uint32()

	x := uint32(1)
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	if got != x {
		t.Errorf("Uint32() = %d, want %d", got, x)
	}
}

func TestXorShift32ZeroSeed(t *testing.T) {
	// The zero state is absorbing, so a zero seed must be replaced
	r := NewXorShift32(0)
	if r.Uint32() == 0 {
		t.Error("zero-seeded generator produced 0; seed fallback missing")
	}
}

func TestXorShift32Float64Range(t *testing.T) {
	r := NewXorShift32(99)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, want [0, 1)", v)
		}
	}
}

func TestXorShift32Intn(t *testing.T) {
	r := NewXorShift32(7)
	for i := 0; i < 1000; i++ {
		v := r.Intn(10)
		if v < 0 || v >= 10 {
			t.Fatalf("Intn(10) = %d, want [0, 10)", v)
		}
	}

	if got := r.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, want 0", got)
	}
	if got := r.Intn(-5); got != 0 {
		t.Errorf("Intn(-5) = %d, want 0", got)
	}
}
