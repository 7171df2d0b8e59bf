package session

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/louisbranch/battleship/internal/services/battleship/domain/fleet"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/grid"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/placement"
	"github.com/louisbranch/battleship/internal/services/battleship/storage"
)

var errScriptExhausted = errors.New("script exhausted")

// zeroSource makes every Intn return 0: placement picks the first legal
// horizontal slot and targeting fires in row-major order.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64) {}

// rowPlacements puts catalog ship i horizontally at row 2i, column 0.
func rowPlacements() []grid.Placement {
	out := make([]grid.Placement, len(fleet.Catalog))
	for i := range fleet.Catalog {
		out[i] = grid.Placement{Origin: grid.Coord{Row: i * 2, Col: 0}, Horizontal: true}
	}
	return out
}

func rowLayout() placement.Layout {
	layout := placement.Layout{}
	for i, spec := range fleet.Catalog {
		layout[spec.Name] = rowPlacements()[i]
	}
	return layout
}

// rowShipCells lists the 17 cells covered by rowPlacements in catalog order.
func rowShipCells() []grid.Coord {
	var out []grid.Coord
	for i, spec := range fleet.Catalog {
		for col := range spec.Size {
			out = append(out, grid.Coord{Row: i * 2, Col: col})
		}
	}
	return out
}

// nonWinningTargets lists every cell in row-major order except (8,1), so
// firing through it never sinks a rowLayout destroyer.
func nonWinningTargets() []grid.Coord {
	var out []grid.Coord
	for row := range grid.Size {
		for col := range grid.Size {
			if row == 8 && col == 1 {
				continue
			}
			out = append(out, grid.Coord{Row: row, Col: col})
		}
	}
	return out
}

type scriptedHuman struct {
	names      []string
	placements []grid.Placement
	targets    []grid.Coord

	placementAsks int
	targetAsks    int
}

func (h *scriptedHuman) Name(context.Context) (string, error) {
	if len(h.names) == 0 {
		return "", errScriptExhausted
	}
	name := h.names[0]
	h.names = h.names[1:]
	return name, nil
}

func (h *scriptedHuman) Placement(context.Context, ShipStatus) (grid.Placement, error) {
	h.placementAsks++
	if len(h.placements) == 0 {
		return grid.Placement{}, errScriptExhausted
	}
	p := h.placements[0]
	h.placements = h.placements[1:]
	return p, nil
}

func (h *scriptedHuman) Target(context.Context) (grid.Coord, error) {
	h.targetAsks++
	if len(h.targets) == 0 {
		return grid.Coord{}, errScriptExhausted
	}
	c := h.targets[0]
	h.targets = h.targets[1:]
	return c, nil
}

type recordingObserver struct {
	leaderboard []storage.PlayerRecord
	placing     []string
	rounds      int
	turns       []Turn
	rejected    []error
	finished    *Outcome
	saveErr     error
}

func (o *recordingObserver) Started(l []storage.PlayerRecord) { o.leaderboard = l }
func (o *recordingObserver) PlacingShip(s ShipStatus, _ grid.Cells) {
	o.placing = append(o.placing, s.Name)
}
func (o *recordingObserver) ComputerPlacing() {}
func (o *recordingObserver) Round(View) { o.rounds++ }
func (o *recordingObserver) Attacked(t Turn) { o.turns = append(o.turns, t) }
func (o *recordingObserver) Rejected(err error) { o.rejected = append(o.rejected, err) }
func (o *recordingObserver) Finished(out Outcome) { o.finished = &out }
func (o *recordingObserver) SaveFailed(err error) { o.saveErr = err }

// newCombatSession returns a session in PhaseCombatHuman with both fleets on
// rowPlacements.
func newCombatSession(t *testing.T, rng *rand.Rand) *Session {
	t.Helper()

	s := New(rng)
	for _, p := range rowPlacements() {
		if _, err := s.PlaceHumanShip(p); err != nil {
			t.Fatalf("place human ship: %v", err)
		}
	}
	if err := s.PlaceComputerLayout(rowLayout()); err != nil {
		t.Fatalf("place computer layout: %v", err)
	}
	if s.Phase() != PhaseCombatHuman {
		t.Fatalf("phase = %v, want %v", s.Phase(), PhaseCombatHuman)
	}
	return s
}
