// Package attack resolves a single shot against a board and its fleet.
//
// Resolve is the only path that applies damage, so human and computer shots
// share identical semantics.
package attack

import (
	"github.com/louisbranch/battleship/internal/services/battleship/domain/fleet"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/grid"
)

// Outcome is the result of a shot on one cell.
type Outcome uint8

const (
	Miss Outcome = iota
	Hit
)

func (o Outcome) String() string {
	if o == Hit {
		return "hit"
	}
	return "miss"
}

// Result describes a resolved shot.
type Result struct {
	Coord   grid.Coord
	Outcome Outcome
	// Sunk is set when this shot sank a ship.
	Sunk          *fleet.Ship
	FleetDefeated bool
}

// Resolve applies a shot at c to b and f. The caller must reject coordinates
// out of range or already attacked before calling.
func Resolve(b *grid.Board, f fleet.Fleet, c grid.Coord) Result {
	res := Result{Coord: c, Outcome: Miss}
	if b.ApplyAttack(c) != grid.CellShip {
		res.FleetDefeated = f.Defeated()
		return res
	}
	res.Outcome = Hit
	if ship := f.ShipAt(c); ship != nil && ship.RegisterHit(c) && ship.Sunk() {
		res.Sunk = ship
	}
	res.FleetDefeated = f.Defeated()
	return res
}
