//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"life-web/pkg/life"
)

// GridPainter uploads generations into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Fits reports whether the painter matches the grid dimensions.
func (gp *GridPainter) Fits(g life.Grid) bool {
	return g.Width() == gp.w && g.Height() == gp.h
}

// Blit uploads cur (shading cells that died since prev) and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cur, prev life.Grid, p Palette, scale int, offsetY float64) {
	if !gp.Fits(cur) {
		return
	}
	fillLifeRGBA(gp.buf, cur, prev, p)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(0, offsetY)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
