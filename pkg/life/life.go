// Package life implements Conway's Game of Life (B3/S23) on a toroidal grid.
package life

import (
	"fmt"

	"life-web/pkg/core"
)

// moore lists the eight neighbor offsets as (row, col) pairs.
var moore = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Wrap reduces v into [0, n) so negative offsets land on the opposite edge.
func Wrap(v, n int) int {
	return (v%n + n) % n
}

// RandomGrid returns a w*h grid where each cell is alive with probability 0.5.
func RandomGrid(rng *core.RNG, w, h int) (Grid, error) {
	if w <= 0 || h <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	g := newGrid(w, h)
	rng.FillBool(g.cells)
	return g, nil
}

// CountAliveNeighbors counts the alive cells in the Moore neighborhood of
// (row, col), wrapping at every edge.
func CountAliveNeighbors(g Grid, row, col int) int {
	n := 0
	for _, off := range moore {
		y := Wrap(row+off[0], g.h)
		x := Wrap(col+off[1], g.w)
		if g.cells[y*g.w+x] {
			n++
		}
	}
	return n
}

// NextGeneration applies one step of the B3/S23 rule and returns a new grid.
// The input grid is left untouched.
func NextGeneration(g Grid) Grid {
	next := newGrid(g.w, g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			neighbors := CountAliveNeighbors(g, y, x)
			alive := g.cells[y*g.w+x]
			next.cells[y*g.w+x] = (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
		}
	}
	return next
}
