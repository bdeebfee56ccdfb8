package life

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Grid is an immutable generation of cells stored in row-major order. The zero
// value is an empty grid with no rows.
type Grid struct {
	w, h  int
	cells []bool
}

func newGrid(w, h int) Grid {
	return Grid{w: w, h: h, cells: make([]bool, w*h)}
}

// FromRows builds a Grid from a copy of rows. Every row must have the same
// non-zero length.
func FromRows(rows [][]bool) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, fmt.Errorf("%w: empty grid", ErrInvalidDimensions)
	}
	w := len(rows[0])
	g := newGrid(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, y, len(row), w)
		}
		copy(g.cells[y*w:], row)
	}
	return g, nil
}

// ParseGrid reads a grid written as lines of T/F tokens, the format produced
// by String.
func ParseGrid(s string) (Grid, error) {
	var rows [][]bool
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]bool, len(fields))
		for i, f := range fields {
			switch f {
			case "T", "1", "#":
				row[i] = true
			case "F", "0", ".":
			default:
				return Grid{}, fmt.Errorf("parse grid: unknown cell %q", f)
			}
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g Grid) Height() int { return g.h }

// IsZero reports whether the grid has no cells.
func (g Grid) IsZero() bool { return len(g.cells) == 0 }

// Alive reports the state of the cell at (row, col). Coordinates outside the
// grid are wrapped.
func (g Grid) Alive(row, col int) bool {
	return g.cells[Wrap(row, g.h)*g.w+Wrap(col, g.w)]
}

// Rows returns a fresh copy of the cells as a slice of rows.
func (g Grid) Rows() [][]bool {
	rows := make([][]bool, g.h)
	for y := range rows {
		row := make([]bool, g.w)
		copy(row, g.cells[y*g.w:(y+1)*g.w])
		rows[y] = row
	}
	return rows
}

// Population counts the alive cells.
func (g Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same shape and cells.
func (g Grid) Equal(o Grid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid as lines of space-separated T/F tokens.
func (g Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.w; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if g.cells[y*g.w+x] {
				b.WriteByte('T')
			} else {
				b.WriteByte('F')
			}
		}
	}
	return b.String()
}

// MarshalJSON encodes the grid as a row-major array of boolean rows.
func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Rows())
}

// UnmarshalJSON decodes a row-major array of boolean rows.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]bool
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		*g = Grid{}
		return nil
	}
	parsed, err := FromRows(rows)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
