package render

import (
	"image/color"

	"life-web/pkg/life"
)

// Palette holds the colors for the three visible cell states.
type Palette struct {
	Alive color.Color
	Died  color.Color
	Empty color.Color
}

// DefaultPalette mirrors the web page colors.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff},
		Died:  color.RGBA{R: 0xc8, G: 0xe6, B: 0xc9, A: 0xff},
		Empty: color.Black,
	}
}

func putRGBA(buf []byte, base int, c color.Color) {
	r, g, b, a := c.RGBA()
	buf[base+0] = uint8(r >> 8)
	buf[base+1] = uint8(g >> 8)
	buf[base+2] = uint8(b >> 8)
	buf[base+3] = uint8(a >> 8)
}

// fillLifeRGBA converts a generation into RGBA pixels in buf. Cells alive in
// prev but dead in cur use the Died color. prev may be the zero Grid.
func fillLifeRGBA(buf []byte, cur, prev life.Grid, p Palette) {
	w, h := cur.Width(), cur.Height()
	hasPrev := prev.Width() == w && prev.Height() == h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			switch {
			case cur.Alive(y, x):
				putRGBA(buf, base, p.Alive)
			case hasPrev && prev.Alive(y, x):
				putRGBA(buf, base, p.Died)
			default:
				putRGBA(buf, base, p.Empty)
			}
		}
	}
}
