package ui

import (
	"errors"
	"strings"
	"testing"

	"life-web/internal/sim"
	"life-web/pkg/life"
)

func TestStatusLine(t *testing.T) {
	if got := StatusLine(sim.Snapshot{}, nil, false); got != "waiting for world" {
		t.Fatalf("empty status = %q", got)
	}

	g, err := life.ParseGrid("T F\nT T")
	if err != nil {
		t.Fatal(err)
	}
	snap := sim.Snapshot{Generation: 4, Width: 2, Height: 2, Velocity: 0.5, World: g, Previous: g}
	got := StatusLine(snap, errors.New("offline"), true)
	for _, want := range []string{"generation 4", "alive 3/4", "every 0.5s", "[paused]", "error: offline"} {
		if !strings.Contains(got, want) {
			t.Fatalf("status %q missing %q", got, want)
		}
	}
}
