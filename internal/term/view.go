// Package term draws the world in a terminal with tcell.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"life-web/internal/core"
	"life-web/internal/feed"
	"life-web/internal/sim"
	"life-web/internal/ui"
)

// headerRows is the number of terminal rows above the grid.
const headerRows = 2

var (
	styleAlive = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleDied  = tcell.StyleDefault.Background(tcell.ColorDarkOliveGreen)
	styleEmpty = tcell.StyleDefault
	styleHelp  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// View renders a feed onto a tcell screen.
type View struct {
	screen   tcell.Screen
	feed     *feed.Feed
	pace     *core.FixedStep
	paused   bool
	tickOnce bool
}

// New returns a View drawing f onto screen, advancing every velocity seconds.
func New(screen tcell.Screen, f *feed.Feed, velocity float64) *View {
	pace := core.NewFixedStep(0)
	pace.SetSeconds(velocity)
	return &View{screen: screen, feed: f, pace: pace}
}

// Run handles input and redraws until the user quits or ctx is cancelled.
func (v *View) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	frame := time.NewTicker(time.Second / 30)
	defer frame.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
		case <-frame.C:
			v.Tick()
		}
	}
}

// HandleKey applies a key press and reports whether the viewer should quit.
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		v.paused = !v.paused
	case 'n':
		v.tickOnce = true
	case 'r':
		v.feed.Reset()
	}
	return false
}

// Tick requests a generation when one is due and redraws the screen.
func (v *View) Tick() {
	snap, err := v.feed.Latest()
	if snap.Velocity > 0 {
		v.pace.SetSeconds(snap.Velocity)
	}
	if (!v.paused && v.pace.ShouldStep()) || v.tickOnce {
		if v.feed.Advance() {
			v.tickOnce = false
		}
	}
	v.Draw(snap, err)
}

// Draw paints the status lines and the grid, two columns per cell.
func (v *View) Draw(snap sim.Snapshot, err error) {
	v.screen.Clear()
	drawText(v.screen, 0, 0, ui.StatusLine(snap, err, v.paused), styleEmpty)
	drawText(v.screen, 0, 1, ui.Help, styleHelp)

	if !snap.World.IsZero() {
		samePrev := snap.Previous.Width() == snap.Width && snap.Previous.Height() == snap.Height
		for y := 0; y < snap.Height; y++ {
			for x := 0; x < snap.Width; x++ {
				style := styleEmpty
				switch {
				case snap.World.Alive(y, x):
					style = styleAlive
				case samePrev && snap.Previous.Alive(y, x):
					style = styleDied
				}
				v.screen.SetContent(x*2, y+headerRows, ' ', nil, style)
				v.screen.SetContent(x*2+1, y+headerRows, ' ', nil, style)
			}
		}
	}
	v.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
