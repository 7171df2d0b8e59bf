package session

import (
	"github.com/louisbranch/battleship/internal/services/battleship/domain/fleet"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/grid"
)

// ShipStatus is a read-only summary of one ship.
type ShipStatus struct {
	Name string
	Size int
	Hits int
	Sunk bool
}

// View is what the human may see: their own board, their tracking grid and
// the damage state of both fleets. The computer's ship layout is never
// exposed.
type View struct {
	Phase         Phase
	Result        Result
	HumanBoard    grid.Cells
	HumanTracking grid.Cells
	HumanFleet    []ShipStatus
	ComputerFleet []ShipStatus
	Shots         int
}

func statuses(f fleet.Fleet) []ShipStatus {
	out := make([]ShipStatus, 0, len(f))
	for _, s := range f {
		out = append(out, ShipStatus{Name: s.Name, Size: s.Size, Hits: s.Hits, Sunk: s.Sunk()})
	}
	return out
}
