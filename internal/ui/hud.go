//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"life-web/internal/sim"
)

// HUDHeight is the pixel height reserved above the grid.
const HUDHeight = 34

// HUD renders the status and help lines above the simulation view.
type HUD struct {
	status string
	bg     *ebiten.Image
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	bg := ebiten.NewImage(1, 1)
	bg.Fill(color.RGBA{R: 24, G: 24, B: 24, A: 255})
	return &HUD{bg: bg}
}

// Update refreshes the cached status line.
func (h *HUD) Update(snap sim.Snapshot, err error, paused bool) {
	h.status = StatusLine(snap, err, paused)
}

// Draw paints the HUD across the given width.
func (h *HUD) Draw(screen *ebiten.Image, width int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), HUDHeight)
	screen.DrawImage(h.bg, op)

	face := basicfont.Face7x13
	text.Draw(screen, h.status, face, 4, 14, color.White)
	text.Draw(screen, Help, face, 4, 29, color.Gray{Y: 160})
}
