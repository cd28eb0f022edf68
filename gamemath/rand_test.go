package gamemath

import "testing"

func TestRandDeterminism(t *testing.T) {
	a := NewRand(1234)
	b := NewRand(1234)

	for i := 0; i < 1000; i++ {
		if av, bv := a.Float64(), b.Float64(); av != bv {
			t.Fatalf("call %d diverged: %v != %v", i, av, bv)
		}
	}
	for i := 0; i < 100; i++ {
		if av, bv := a.IntN(13), b.IntN(13); av != bv {
			t.Fatalf("IntN call %d diverged: %d != %d", i, av, bv)
		}
	}
}

func TestRandSeedsDiffer(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)

	same := 0
	for i := 0; i < 64; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same == 64 {
		t.Error("different seeds produced identical streams")
	}
}

func TestChanceBounds(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 32; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) rolled true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) rolled false")
		}
	}
}

func TestRangeWithin(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 256; i++ {
		v := r.Range(-3, 9)
		if v < -3 || v >= 9 {
			t.Fatalf("Range(-3, 9) produced %v", v)
		}
	}
}
