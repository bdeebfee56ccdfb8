package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"life-web/internal/feed"
	"life-web/internal/sim"
	"life-web/pkg/life"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(40, 10)
	t.Cleanup(s.Fini)
	return s
}

func TestDrawMarksCells(t *testing.T) {
	s := newScreen(t)
	v := New(s, feed.New(nil), 1)

	prev, err := life.ParseGrid("T T\nF F")
	if err != nil {
		t.Fatal(err)
	}
	cur, err := life.ParseGrid("T F\nF T")
	if err != nil {
		t.Fatal(err)
	}
	v.Draw(sim.Snapshot{Generation: 2, Width: 2, Height: 2, Velocity: 1, World: cur, Previous: prev}, nil)

	cases := []struct {
		x, y  int
		style tcell.Style
	}{
		{0, 0, styleAlive},
		{1, 0, styleDied},
		{0, 1, styleEmpty},
		{1, 1, styleAlive},
	}
	for _, tc := range cases {
		for col := 0; col < 2; col++ {
			_, _, style, _ := s.GetContent(tc.x*2+col, tc.y+headerRows)
			if style != tc.style {
				t.Fatalf("cell (%d,%d) column %d has the wrong style", tc.x, tc.y, col)
			}
		}
	}

	r, _, _, _ := s.GetContent(0, 0)
	if r != 'g' {
		t.Fatalf("status line starts with %q, want 'g'", r)
	}
}

func TestHandleKey(t *testing.T) {
	v := New(newScreen(t), feed.New(nil), 1)

	if v.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space should not quit")
	}
	if !v.paused {
		t.Fatal("space should pause")
	}
	v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if !v.tickOnce {
		t.Fatal("n should request a single step")
	}
	if !v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if !v.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}
