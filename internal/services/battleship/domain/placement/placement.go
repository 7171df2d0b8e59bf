// Package placement validates ship positions and generates legal random
// layouts for the computer side.
package placement

import (
	"fmt"
	"math/rand"

	apperrors "github.com/louisbranch/battleship/internal/platform/errors"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/fleet"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/grid"
)

// ErrNoPlacement reports a board with no legal position left for a ship.
var ErrNoPlacement = apperrors.New(apperrors.CodePlacementExhausted, "no legal placement")

// Validate checks p for ship against b without mutating anything.
func Validate(b *grid.Board, ship *fleet.Ship, p grid.Placement) error {
	return b.ValidatePlacement(ship.Size, p)
}

// Place validates p and, when legal, marks the board and records the ship's
// cells.
func Place(b *grid.Board, ship *fleet.Ship, p grid.Placement) error {
	if err := Validate(b, ship, p); err != nil {
		return err
	}
	ship.Place(b.PlaceShip(ship.Size, p))
	return nil
}

// Candidates lists every legal placement for a ship of size, horizontal
// placements first, each in row-major origin order.
func Candidates(b *grid.Board, size int) []grid.Placement {
	out := candidates(b, size, true)
	return append(out, candidates(b, size, false)...)
}

func candidates(b *grid.Board, size int, horizontal bool) []grid.Placement {
	var out []grid.Placement
	for row := range grid.Size {
		for col := range grid.Size {
			p := grid.Placement{Origin: grid.Coord{Row: row, Col: col}, Horizontal: horizontal}
			if b.IsValidPlacement(size, p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// Random picks an orientation with a fair coin, then a uniform origin among
// the legal origins for it. When that orientation has none it uses the other
// one, and it returns ErrNoPlacement only when neither has a legal origin.
func Random(rng *rand.Rand, b *grid.Board, size int) (grid.Placement, error) {
	horizontal := rng.Intn(2) == 0
	options := candidates(b, size, horizontal)
	if len(options) == 0 {
		options = candidates(b, size, !horizontal)
	}
	if len(options) == 0 {
		return grid.Placement{}, ErrNoPlacement
	}
	return options[rng.Intn(len(options))], nil
}

// PlaceFleet places every unplaced ship of f at random, in catalog order.
func PlaceFleet(rng *rand.Rand, b *grid.Board, f fleet.Fleet) error {
	for _, ship := range f {
		if ship.Placed() {
			continue
		}
		p, err := Random(rng, b, ship.Size)
		if err != nil {
			return apperrors.WithMetadata(apperrors.CodePlacementExhausted,
				"no legal placement for "+ship.Name, map[string]string{"Ship": ship.Name})
		}
		ship.Place(b.PlaceShip(ship.Size, p))
	}
	return nil
}

// Layout fixes a placement per ship name.
type Layout map[string]grid.Placement

// PlaceLayout places every ship of f from layout, in catalog order. Ships
// missing from layout are left unplaced. Nothing is placed when any entry
// is illegal or names a ship f does not have.
func PlaceLayout(b *grid.Board, f fleet.Fleet, layout Layout) error {
	for name := range layout {
		if f.ByName(name) == nil {
			return fmt.Errorf("unknown ship %q in layout", name)
		}
	}
	scratch := grid.NewBoard()
	*scratch = *b
	for _, ship := range f {
		p, ok := layout[ship.Name]
		if !ok || ship.Placed() {
			continue
		}
		if err := scratch.ValidatePlacement(ship.Size, p); err != nil {
			return apperrors.Wrap(apperrors.CodeOf(err), "place "+ship.Name, err)
		}
		scratch.PlaceShip(ship.Size, p)
	}
	for _, ship := range f {
		if p, ok := layout[ship.Name]; ok && !ship.Placed() {
			ship.Place(b.PlaceShip(ship.Size, p))
		}
	}
	return nil
}
