// Package targeting chooses the computer's shots.
package targeting

import (
	"math/rand"

	apperrors "github.com/louisbranch/battleship/internal/platform/errors"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/grid"
)

// ErrExhausted reports a tracking grid with no untried cell.
var ErrExhausted = apperrors.New(apperrors.CodeTargetsExhausted, "no untried coordinates")

// Random returns a uniformly random coordinate not yet marked on tr. It only
// reads hit/miss marks, so it knows nothing of the opponent's layout.
func Random(rng *rand.Rand, tr *grid.Tracking) (grid.Coord, error) {
	untried := tr.Untried()
	if len(untried) == 0 {
		return grid.Coord{}, ErrExhausted
	}
	return untried[rng.Intn(len(untried))], nil
}
