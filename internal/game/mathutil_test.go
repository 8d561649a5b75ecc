package game

import "testing"

func TestRandDeterministic(t *testing.T) {
	a := NewRand(7)
	b := NewRand(7)
	for i := 0; i < 100; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(8)
	for i := 0; i < 1000; i++ {
		if n := r.Intn(10); n < 0 || n >= 10 {
			t.Fatalf("Intn(10) = %d", n)
		}
		if n := r.Range(3, 7); n < 3 || n > 7 {
			t.Fatalf("Range(3,7) = %d", n)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 = %v", f)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) must return 0")
	}
	if r.Range(5, 2) != 5 {
		t.Error("inverted Range must return min")
	}
}

func TestChanceExtremes(t *testing.T) {
	r := NewRand(9)
	for i := 0; i < 50; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) fired")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) missed")
		}
	}
}

func TestClamp(t *testing.T) {
	if clamp(5, 0, 10) != 5 || clamp(-1, 0, 10) != 0 || clamp(11, 0, 10) != 10 {
		t.Error("clamp broken")
	}
	if clampF(12, 6, 30) != 12 || clampF(40, 6, 30) != 30 || clampF(1, 6, 30) != 6 {
		t.Error("clampF broken")
	}
}
