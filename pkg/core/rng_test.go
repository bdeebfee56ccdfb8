package core

import (
	"slices"
	"testing"
)

func TestFillBoolDeterministic(t *testing.T) {
	a := make([]bool, 256)
	b := make([]bool, 256)
	NewRNG(7).FillBool(a)
	NewRNG(7).FillBool(b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different sequences")
	}

	alive := 0
	for _, v := range a {
		if v {
			alive++
		}
	}
	if alive == 0 || alive == len(a) {
		t.Fatalf("expected a mix of values, got %d/%d alive", alive, len(a))
	}
}
