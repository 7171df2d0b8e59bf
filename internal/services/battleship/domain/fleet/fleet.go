// Package fleet defines the five-ship catalog and tracks damage per ship.
package fleet

import "github.com/louisbranch/battleship/internal/services/battleship/domain/grid"

// Spec names a catalog ship and its length.
type Spec struct {
	Name string
	Size int
}

// Catalog lists the canonical ships in placement order.
var Catalog = []Spec{
	{Name: "Aircraft Carrier", Size: 5},
	{Name: "Battleship", Size: 4},
	{Name: "Cruiser", Size: 3},
	{Name: "Submarine", Size: 3},
	{Name: "Destroyer", Size: 2},
}

// Ship is one vessel, its occupied cells once placed and the hits it took.
type Ship struct {
	Name  string
	Size  int
	Cells []grid.Coord
	Hits  int
}

// Place records the occupied cells. It is a no-op once the ship is placed
// or when the cell count does not match the ship size.
func (s *Ship) Place(cells []grid.Coord) {
	if s.Placed() || len(cells) != s.Size {
		return
	}
	s.Cells = append([]grid.Coord(nil), cells...)
}

// Placed reports whether the ship occupies its cells.
func (s *Ship) Placed() bool {
	return len(s.Cells) == s.Size
}

// Occupies reports whether c is one of the ship's cells.
func (s *Ship) Occupies(c grid.Coord) bool {
	for _, cell := range s.Cells {
		if cell == c {
			return true
		}
	}
	return false
}

// RegisterHit counts a hit at c and reports whether it counted. Callers must
// not register the same cell twice; the board rejects repeat attacks.
func (s *Ship) RegisterHit(c grid.Coord) bool {
	if s.Hits >= s.Size || !s.Occupies(c) {
		return false
	}
	s.Hits++
	return true
}

// Sunk reports whether every cell of the ship was hit.
func (s *Ship) Sunk() bool {
	return s.Size > 0 && s.Hits == s.Size
}

// Fleet is one side's ships in catalog order.
type Fleet []*Ship

// New returns an unplaced fleet built from Catalog.
func New() Fleet {
	f := make(Fleet, 0, len(Catalog))
	for _, spec := range Catalog {
		f = append(f, &Ship{Name: spec.Name, Size: spec.Size})
	}
	return f
}

// ShipAt returns the ship occupying c, or nil.
func (f Fleet) ShipAt(c grid.Coord) *Ship {
	for _, s := range f {
		if s.Occupies(c) {
			return s
		}
	}
	return nil
}

// ByName returns the ship with the given name, or nil.
func (f Fleet) ByName(name string) *Ship {
	for _, s := range f {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Defeated reports whether every ship is sunk.
func (f Fleet) Defeated() bool {
	if len(f) == 0 {
		return false
	}
	for _, s := range f {
		if !s.Sunk() {
			return false
		}
	}
	return true
}

// Remaining counts ships still afloat.
func (f Fleet) Remaining() int {
	n := 0
	for _, s := range f {
		if !s.Sunk() {
			n++
		}
	}
	return n
}

// Placed reports whether every ship has its cells.
func (f Fleet) Placed() bool {
	return f.NextUnplaced() == nil
}

// NextUnplaced returns the first ship in catalog order without cells.
func (f Fleet) NextUnplaced() *Ship {
	for _, s := range f {
		if !s.Placed() {
			return s
		}
	}
	return nil
}
