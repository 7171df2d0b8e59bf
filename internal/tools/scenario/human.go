package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/battleship/internal/services/battleship/domain/grid"
	"github.com/louisbranch/battleship/internal/services/battleship/session"
)

// errScriptExhausted ends a session whose script ran out of input. It is not
// retryable, so the controller aborts instead of asking again.
var errScriptExhausted = errors.New("scenario script exhausted")

// scriptedHuman answers the controller from a Scenario's queues.
type scriptedHuman struct {
	name       string
	placements map[string][]grid.Placement
	attacks    []grid.Coord
	fired      int
}

func newScriptedHuman(sc *Scenario) *scriptedHuman {
	placements := make(map[string][]grid.Placement, len(sc.Placements))
	for ship, queue := range sc.Placements {
		placements[ship] = append([]grid.Placement(nil), queue...)
	}
	return &scriptedHuman{
		name:       sc.Player,
		placements: placements,
		attacks:    append([]grid.Coord(nil), sc.Attacks...),
	}
}

func (h *scriptedHuman) Name(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if h.name == "" {
		return "", fmt.Errorf("no player name: %w", errScriptExhausted)
	}
	name := h.name
	h.name = ""
	return name, nil
}

func (h *scriptedHuman) Placement(ctx context.Context, ship session.ShipStatus) (grid.Placement, error) {
	if err := ctx.Err(); err != nil {
		return grid.Placement{}, err
	}
	queue := h.placements[ship.Name]
	if len(queue) == 0 {
		return grid.Placement{}, fmt.Errorf("no placement left for %s: %w", ship.Name, errScriptExhausted)
	}
	h.placements[ship.Name] = queue[1:]
	return queue[0], nil
}

func (h *scriptedHuman) Target(ctx context.Context) (grid.Coord, error) {
	if err := ctx.Err(); err != nil {
		return grid.Coord{}, err
	}
	if len(h.attacks) == 0 {
		return grid.Coord{}, fmt.Errorf("no attack left after %d: %w", h.fired, errScriptExhausted)
	}
	target := h.attacks[0]
	h.attacks = h.attacks[1:]
	h.fired++
	return target, nil
}

var _ session.Human = (*scriptedHuman)(nil)
