package session

import (
	"context"

	"github.com/louisbranch/battleship/internal/services/battleship/domain/grid"
	"github.com/louisbranch/battleship/internal/services/battleship/storage"
)

// Human supplies the human player's input. A returned error that
// apperrors.IsRetryable accepts is shown to the player and the same question
// is asked again; any other error aborts the session.
type Human interface {
	Name(ctx context.Context) (string, error)
	Placement(ctx context.Context, ship ShipStatus) (grid.Placement, error)
	Target(ctx context.Context) (grid.Coord, error)
}

// Observer is told about every visible change of a session. Implementations
// render; they must not block on input.
type Observer interface {
	Started(leaderboard []storage.PlayerRecord)
	PlacingShip(ship ShipStatus, board grid.Cells)
	ComputerPlacing()
	Round(view View)
	Attacked(turn Turn)
	Rejected(err error)
	Finished(outcome Outcome)
	SaveFailed(err error)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) Started([]storage.PlayerRecord) {}
func (NopObserver) PlacingShip(ShipStatus, grid.Cells) {}
func (NopObserver) ComputerPlacing() {}
func (NopObserver) Round(View) {}
func (NopObserver) Attacked(Turn) {}
func (NopObserver) Rejected(error) {}
func (NopObserver) Finished(Outcome) {}
func (NopObserver) SaveFailed(error) {}

var _ Observer = NopObserver{}
