package life

// Cell identifies one board position.
type Cell struct {
	X, Y int
}

// Simulation runs Conway's Game of Life on a bounded flat grid. The board
// edge is a hard boundary: cells beyond it do not exist and are never
// counted as neighbors, so the edge behaves as if surrounded by dead cells.
type Simulation struct {
	cur, nxt   *Grid
	paused     bool
	generation int
}

// NewSimulation returns an all-dead, unpaused simulation with the provided
// dimensions. Non-positive dimensions panic.
func NewSimulation(w, h int) *Simulation {
	return &Simulation{cur: NewGrid(w, h), nxt: NewGrid(w, h)}
}

// Dimensions returns the board size in cells.
func (s *Simulation) Dimensions() (w, h int) { return s.cur.w, s.cur.h }

// Cells exposes the current board in row-major order. Renderers read it
// directly instead of calling IsAlive per cell.
func (s *Simulation) Cells() []bool { return s.cur.cells }

// IsAlive reports whether the cell at (x, y) is alive.
func (s *Simulation) IsAlive(x, y int) bool { return s.cur.Get(x, y) }

// SetCell writes the cell at (x, y). Seeding and pattern stamping use this.
func (s *Simulation) SetCell(x, y int, alive bool) { s.cur.Set(x, y, alive) }

// ToggleCell flips the cell at (x, y). Editing works while paused too; the
// new state participates in the rule from the next generation on.
func (s *Simulation) ToggleCell(x, y int) { s.cur.Set(x, y, !s.cur.Get(x, y)) }

// Paused reports whether Step currently advances the board.
func (s *Simulation) Paused() bool { return s.paused }

// SetPaused sets the pause gate. It has no effect on the board itself.
func (s *Simulation) SetPaused(paused bool) { s.paused = paused }

// TogglePaused flips the pause gate.
func (s *Simulation) TogglePaused() { s.paused = !s.paused }

// Generation returns the number of generations applied since construction
// or the last Clear.
func (s *Simulation) Generation() int { return s.generation }

// Population returns the number of alive cells.
func (s *Simulation) Population() int {
	n := 0
	for _, alive := range s.cur.cells {
		if alive {
			n++
		}
	}
	return n
}

// AliveCells returns the alive cells in row-major order.
func (s *Simulation) AliveCells() []Cell {
	var cells []Cell
	for y := 0; y < s.cur.h; y++ {
		for x := 0; x < s.cur.w; x++ {
			if s.cur.cells[y*s.cur.w+x] {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Clear kills every cell and resets the generation counter. The pause gate
// is left unchanged.
func (s *Simulation) Clear() {
	s.cur.Clear()
	s.generation = 0
}

// Step advances the simulation by one generation, unless it is paused.
func (s *Simulation) Step() {
	if s.paused {
		return
	}
	s.SingleStep()
}

// SingleStep advances exactly one generation regardless of the pause gate.
// Every next state is computed from the pre-step board, so no cell observes
// another cell's new state within the same generation.
func (s *Simulation) SingleStep() {
	w, h := s.cur.w, s.cur.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := s.neighborCount(x, y)
			alive := s.cur.cells[y*w+x]
			s.nxt.cells[y*w+x] = n == 3 || (alive && n == 2)
		}
	}
	s.cur, s.nxt = s.nxt, s.cur
	s.generation++
}

// neighborCount counts alive cells among the up to eight neighbors of
// (x, y). Positions beyond the board edge are skipped, not wrapped.
func (s *Simulation) neighborCount(x, y int) int {
	w, h := s.cur.w, s.cur.h
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			if s.cur.cells[ny*w+nx] {
				n++
			}
		}
	}
	return n
}
