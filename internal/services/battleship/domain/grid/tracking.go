package grid

// Tracking is an attacker's record of its own shots at the opponent. It only
// ever holds Empty, Hit or Miss, so it carries no ship layout information.
type Tracking struct {
	cells Cells
}

// NewTracking returns a tracking grid with no shots.
func NewTracking() *Tracking {
	return &Tracking{}
}

// Mark records the outcome of a shot at c. Already-marked cells keep their
// first outcome.
func (t *Tracking) Mark(c Coord, hit bool) {
	if !c.InBounds() || t.cells[c.Row][c.Col] != CellEmpty {
		return
	}
	if hit {
		t.cells[c.Row][c.Col] = CellHit
		return
	}
	t.cells[c.Row][c.Col] = CellMiss
}

// Attacked reports whether the attacker already fired at c.
func (t *Tracking) Attacked(c Coord) bool {
	if !c.InBounds() {
		return false
	}
	return t.cells[c.Row][c.Col].Attacked()
}

// Cell returns the recorded state at c.
func (t *Tracking) Cell(c Coord) Cell {
	if !c.InBounds() {
		return CellEmpty
	}
	return t.cells[c.Row][c.Col]
}

// Untried lists every coordinate not yet fired at, in row-major order.
func (t *Tracking) Untried() []Coord {
	out := make([]Coord, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if t.cells[row][col] == CellEmpty {
				out = append(out, Coord{Row: row, Col: col})
			}
		}
	}
	return out
}

// Shots counts the marked cells.
func (t *Tracking) Shots() int {
	return Size*Size - len(t.Untried())
}

// Snapshot copies the full grid for rendering.
func (t *Tracking) Snapshot() Cells {
	return t.cells
}
