package grid

// Board holds one side's own ships and the attacks received on them.
//
// A cell is Ship only when exactly one ship covers it, and a cell that became
// Hit or Miss never changes again.
type Board struct {
	cells Cells
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Cell returns the state at c. Out-of-range coordinates read as Empty.
func (b *Board) Cell(c Coord) Cell {
	if !c.InBounds() {
		return CellEmpty
	}
	return b.cells[c.Row][c.Col]
}

// Snapshot copies the full grid for rendering.
func (b *Board) Snapshot() Cells {
	return b.cells
}

// ValidatePlacement checks that a ship of size fits at p without leaving the
// board or crossing an occupied cell. It returns ErrOutOfBounds or ErrOverlap
// and never mutates the board.
func (b *Board) ValidatePlacement(size int, p Placement) error {
	if !p.InBounds(size) {
		return ErrOutOfBounds
	}
	for _, c := range p.Cells(size) {
		if b.cells[c.Row][c.Col] != CellEmpty {
			return ErrOverlap
		}
	}
	return nil
}

// IsValidPlacement is the boolean form of ValidatePlacement.
func (b *Board) IsValidPlacement(size int, p Placement) bool {
	return b.ValidatePlacement(size, p) == nil
}

// PlaceShip marks the cells of a ship of size at p and returns them in
// traversal order. The placement must already be valid; PlaceShip does not
// check it.
func (b *Board) PlaceShip(size int, p Placement) []Coord {
	cells := p.Cells(size)
	for _, c := range cells {
		b.cells[c.Row][c.Col] = CellShip
	}
	return cells
}

// ApplyAttack records an attack at c and returns the prior state: Ship
// becomes Hit and Empty becomes Miss. Cells already Hit or Miss are left
// untouched, so callers must reject repeat coordinates first to get a
// meaningful result.
func (b *Board) ApplyAttack(c Coord) Cell {
	prior := b.cells[c.Row][c.Col]
	switch prior {
	case CellShip:
		b.cells[c.Row][c.Col] = CellHit
	case CellEmpty:
		b.cells[c.Row][c.Col] = CellMiss
	}
	return prior
}

// Attacked reports whether c already received an attack on this board.
func (b *Board) Attacked(c Coord) bool {
	return b.Cell(c).Attacked()
}
