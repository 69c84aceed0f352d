package life

import "fmt"

// Grid stores a fixed-size 2D field of boolean cells in row-major order.
// The board is flat: coordinates outside it do not address any cell.
type Grid struct {
	w, h  int
	cells []bool
}

// NewGrid allocates a grid of dead cells with the given dimensions.
// Dimensions are fixed for the lifetime of the grid; non-positive
// dimensions panic.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("life: grid dimensions must be positive, got %dx%d", w, h))
	}
	return &Grid{w: w, h: h, cells: make([]bool, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x, y) addresses a cell on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// index returns the linear slice index for coordinates (x, y).
func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("life: cell (%d,%d) out of bounds on %dx%d grid", x, y, g.w, g.h))
	}
	return y*g.w + x
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) bool { return g.cells[g.index(x, y)] }

// Set writes the cell at (x, y).
func (g *Grid) Set(x, y int, alive bool) { g.cells[g.index(x, y)] = alive }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []bool { return g.cells }

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}
