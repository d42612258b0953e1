package rng

import (
	"math"
	"testing"
)

func TestSeededDeterminism(t *testing.T) {
	a := NewSeeded("QUEST4242")
	b := NewSeeded("QUEST4242")

	for i := 0; i < 10000; i++ {
		av, bv := a(), b()
		if av != bv {
			t.Fatalf("draw %d diverged: %v != %v", i, av, bv)
		}
		if av < 0 || av >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, av)
		}
	}
}

// Golden values pin the exact Mulberry32 stream so a refactor can't silently
// break replay compatibility with existing challenge codes.
func TestSeededGoldenStream(t *testing.T) {
	want := []float64{
		0.6325121361296624,
		0.32522414182312787,
		0.7335306175518781,
		0.7511570113711059,
		0.6792351710610092,
		0.36021917918697,
		0.15911356592550874,
		0.14223138545639813,
	}

	src := NewSeeded("QUEST1234")
	for i, w := range want {
		got := src()
		if math.Abs(got-w) > 1e-15 {
			t.Errorf("draw %d = %v, want %v", i, got, w)
		}
	}
}

func TestSeedHash(t *testing.T) {
	tests := []struct {
		seed string
		want uint32
	}{
		{"", 0},
		{"abc", 96354},
		{"QUEST1234", 1003616260},
	}

	for _, tt := range tests {
		if got := hashSeed(tt.seed); got != tt.want {
			t.Errorf("hashSeed(%q) = %d, want %d", tt.seed, got, tt.want)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := NewSeeded("CODE-A")
	b := NewSeeded("CODE-B")

	same := true
	for i := 0; i < 100; i++ {
		if a() != b() {
			same = false
			break
		}
	}
	if same {
		t.Error("distinct seeds produced identical streams over 100 draws")
	}
}

func TestIntBetweenBounds(t *testing.T) {
	src := NewSeeded("bounds")
	for i := 0; i < 5000; i++ {
		got := src.IntBetween(3, 12)
		if got < 3 || got > 12 {
			t.Fatalf("IntBetween(3, 12) = %d", got)
		}
	}
}

func TestIntBetweenCoversRange(t *testing.T) {
	src := NewSeeded("coverage")
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		seen[src.IntBetween(1, 4)] = true
	}
	for v := 1; v <= 4; v++ {
		if !seen[v] {
			t.Errorf("value %d never drawn in 2000 draws", v)
		}
	}
}

func TestPick(t *testing.T) {
	src := NewSeeded("pick")
	choices := []string{"+", "-", "*", "/"}
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[Pick(src, choices)] = true
	}
	if len(seen) != len(choices) {
		t.Errorf("Pick covered %d of %d choices", len(seen), len(choices))
	}
}

func TestAmbientInRange(t *testing.T) {
	src := NewAmbient()
	for i := 0; i < 1000; i++ {
		v := src()
		if v < 0 || v >= 1 {
			t.Fatalf("ambient draw out of [0,1): %v", v)
		}
	}
}
