//go:build ebiten

package app

import (
	"life-web/internal/core"
	"life-web/internal/feed"
	"life-web/internal/render"
	"life-web/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a remote world feed to the ebiten.Game interface.
type Game struct {
	feed    *feed.Feed
	pace    *core.FixedStep
	painter *render.GridPainter
	hud     *ui.HUD
	palette render.Palette

	scale    int
	w, h     int
	paused   bool
	tickOnce bool
}

// New constructs a Game that draws worlds of w*h cells from f.
func New(f *feed.Feed, w, h, scale int, velocity float64) *Game {
	pace := core.NewFixedStep(0)
	pace.SetSeconds(velocity)
	return &Game{
		feed:    f,
		pace:    pace,
		hud:     ui.NewHUD(),
		palette: render.DefaultPalette(),
		scale:   scale,
		w:       w,
		h:       h,
	}
}

// Update handles per-frame input and paces generation requests.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.feed.Reset()
	}

	snap, err := g.feed.Latest()
	if snap.Velocity > 0 {
		g.pace.SetSeconds(snap.Velocity)
	}
	if !snap.World.IsZero() && (snap.Width != g.w || snap.Height != g.h) {
		g.w, g.h = snap.Width, snap.Height
		ebiten.SetWindowSize(g.Layout(0, 0))
	}
	g.hud.Update(snap, err, g.paused)

	if (!g.paused && g.pace.ShouldStep()) || g.tickOnce {
		if g.feed.Advance() {
			g.tickOnce = false
		}
	}
	return nil
}

// Draw renders the latest generation.
func (g *Game) Draw(screen *ebiten.Image) {
	snap, _ := g.feed.Latest()
	if !snap.World.IsZero() {
		if g.painter == nil || !g.painter.Fits(snap.World) {
			g.painter = render.NewGridPainter(snap.Width, snap.Height)
		}
		g.painter.Blit(screen, snap.World, snap.Previous, g.palette, g.scale, ui.HUDHeight)
	}
	g.hud.Draw(screen, g.w*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w * g.scale, g.h*g.scale + ui.HUDHeight
}
