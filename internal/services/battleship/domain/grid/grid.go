// Package grid models the 10×10 boards each side plays on.
package grid

import (
	"fmt"

	apperrors "github.com/louisbranch/battleship/internal/platform/errors"
)

// Size is the edge length of every board.
const Size = 10

// ColumnLabels maps column indexes to the letters shown to players.
const ColumnLabels = "ABCDEFGHIJ"

var (
	// ErrOutOfBounds indicates a placement leaves the board.
	ErrOutOfBounds = apperrors.New(apperrors.CodePlacementOutOfBounds, "placement exceeds board boundaries")
	// ErrOverlap indicates a placement crosses an occupied cell.
	ErrOverlap = apperrors.New(apperrors.CodePlacementOverlap, "placement overlaps another ship")
	// ErrCoordOutOfRange indicates a coordinate outside [0,Size)×[0,Size).
	ErrCoordOutOfRange = apperrors.New(apperrors.CodeCoordOutOfRange, "coordinate out of range")
)

// Coord addresses one cell by zero-based row and column.
type Coord struct {
	Row int
	Col int
}

// InBounds reports whether c lies on the board.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// ColumnLabel returns the letter for c's column, or "?" when out of range.
func (c Coord) ColumnLabel() string {
	return ColumnLabel(c.Col)
}

// String renders c the way players type it, e.g. "(3, B)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %s)", c.Row, c.ColumnLabel())
}

// ColumnLabel returns the letter for a column index, or "?" when out of range.
func ColumnLabel(col int) string {
	if col < 0 || col >= len(ColumnLabels) {
		return "?"
	}
	return ColumnLabels[col : col+1]
}

// Cell is the state of one board square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellShip
	CellHit
	CellMiss
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellShip:
		return "Ship"
	case CellHit:
		return "Hit"
	case CellMiss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// Attacked reports whether the cell already received an attack.
func (c Cell) Attacked() bool {
	return c == CellHit || c == CellMiss
}

// Cells is a full board snapshot indexed [row][col].
type Cells [Size][Size]Cell

// Placement is a ship origin plus orientation. Horizontal ships extend to
// increasing columns, vertical ships to increasing rows.
type Placement struct {
	Origin     Coord
	Horizontal bool
}

// Cells returns the size cells covered by p in traversal order. The result
// may include out-of-bounds coordinates; use InBounds to check.
func (p Placement) Cells(size int) []Coord {
	if size <= 0 {
		return nil
	}
	cells := make([]Coord, size)
	for i := range size {
		if p.Horizontal {
			cells[i] = Coord{Row: p.Origin.Row, Col: p.Origin.Col + i}
		} else {
			cells[i] = Coord{Row: p.Origin.Row + i, Col: p.Origin.Col}
		}
	}
	return cells
}

// InBounds reports whether every cell covered by a ship of size stays on the board.
func (p Placement) InBounds(size int) bool {
	if size <= 0 || !p.Origin.InBounds() {
		return false
	}
	if p.Horizontal {
		return p.Origin.Col+size <= Size
	}
	return p.Origin.Row+size <= Size
}
