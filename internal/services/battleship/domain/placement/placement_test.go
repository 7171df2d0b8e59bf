package placement

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/battleship/internal/platform/errors"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/fleet"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/grid"
)

func TestPlaceRejectsCruiserPastBoundary(t *testing.T) {
	b := grid.NewBoard()
	f := fleet.New()
	cruiser := f.ByName("Cruiser")

	err := Place(b, cruiser, grid.Placement{Origin: grid.Coord{Row: 0, Col: 8}, Horizontal: true})
	if !errors.Is(err, grid.ErrOutOfBounds) {
		t.Fatalf("error = %v, want %v", err, grid.ErrOutOfBounds)
	}
	if cruiser.Placed() {
		t.Fatal("cruiser should stay unplaced")
	}
	if b.Snapshot() != (grid.Cells{}) {
		t.Fatal("board mutated by rejected placement")
	}
}

func TestPlaceRejectsOverlap(t *testing.T) {
	b := grid.NewBoard()
	f := fleet.New()
	if err := Place(b, f[0], grid.Placement{Origin: grid.Coord{Row: 3, Col: 0}, Horizontal: true}); err != nil {
		t.Fatalf("place carrier: %v", err)
	}
	err := Place(b, f[1], grid.Placement{Origin: grid.Coord{Row: 1, Col: 2}})
	if !errors.Is(err, grid.ErrOverlap) {
		t.Fatalf("error = %v, want %v", err, grid.ErrOverlap)
	}
	if apperrors.CodeOf(err) != apperrors.CodePlacementOverlap {
		t.Fatalf("code = %s, want %s", apperrors.CodeOf(err), apperrors.CodePlacementOverlap)
	}
	if f[1].Placed() {
		t.Fatal("battleship should stay unplaced")
	}
}

func TestCandidatesOnEmptyBoard(t *testing.T) {
	b := grid.NewBoard()
	// Each orientation allows (Size-size+1) origins along one axis.
	tests := []struct {
		size int
		want int
	}{
		{5, 2 * 10 * 6},
		{2, 2 * 10 * 9},
		{1, 2 * 10 * 10},
	}
	for _, tt := range tests {
		if got := len(Candidates(b, tt.size)); got != tt.want {
			t.Fatalf("candidates(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestCandidatesAreLegal(t *testing.T) {
	b := grid.NewBoard()
	b.PlaceShip(5, grid.Placement{Origin: grid.Coord{Row: 4, Col: 2}, Horizontal: true})
	for _, p := range Candidates(b, 3) {
		if err := b.ValidatePlacement(3, p); err != nil {
			t.Fatalf("candidate %+v invalid: %v", p, err)
		}
	}
}

func TestRandomFallsBackToOtherOrientation(t *testing.T) {
	b := grid.NewBoard()
	// Fill every row except column 0 so only vertical placements remain there.
	for row := range grid.Size {
		b.PlaceShip(grid.Size-1, grid.Placement{Origin: grid.Coord{Row: row, Col: 1}, Horizontal: true})
	}
	rng := rand.New(rand.NewSource(7))
	for range 20 {
		p, err := Random(rng, b, 5)
		if err != nil {
			t.Fatalf("random: %v", err)
		}
		if p.Horizontal || p.Origin.Col != 0 {
			t.Fatalf("placement = %+v, want vertical in column 0", p)
		}
	}
}

func TestRandomExhausted(t *testing.T) {
	b := grid.NewBoard()
	for row := range grid.Size {
		b.PlaceShip(grid.Size, grid.Placement{Origin: grid.Coord{Row: row, Col: 0}, Horizontal: true})
	}
	_, err := Random(rand.New(rand.NewSource(1)), b, 2)
	if !errors.Is(err, ErrNoPlacement) {
		t.Fatalf("error = %v, want %v", err, ErrNoPlacement)
	}
}

func TestPlaceFleetInvariants(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b := grid.NewBoard()
		f := fleet.New()
		if err := PlaceFleet(rand.New(rand.NewSource(seed)), b, f); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		seen := map[grid.Coord]string{}
		for _, s := range f {
			if len(s.Cells) != s.Size {
				t.Fatalf("seed %d: %s has %d cells, want %d", seed, s.Name, len(s.Cells), s.Size)
			}
			for _, c := range s.Cells {
				if !c.InBounds() {
					t.Fatalf("seed %d: %s out of bounds at %v", seed, s.Name, c)
				}
				if other, ok := seen[c]; ok {
					t.Fatalf("seed %d: %s overlaps %s at %v", seed, s.Name, other, c)
				}
				if b.Cell(c) != grid.CellShip {
					t.Fatalf("seed %d: cell %v = %v, want Ship", seed, c, b.Cell(c))
				}
				seen[c] = s.Name
			}
		}
		if len(seen) != 17 {
			t.Fatalf("seed %d: ship cells = %d, want 17", seed, len(seen))
		}
	}
}

func TestPlaceFleetDeterministicForSeed(t *testing.T) {
	layout := func() grid.Cells {
		b := grid.NewBoard()
		if err := PlaceFleet(rand.New(rand.NewSource(42)), b, fleet.New()); err != nil {
			t.Fatalf("place fleet: %v", err)
		}
		return b.Snapshot()
	}
	if layout() != layout() {
		t.Fatal("same seed produced different layouts")
	}
}

func TestPlaceLayout(t *testing.T) {
	layout := Layout{
		"Aircraft Carrier": {Origin: grid.Coord{Row: 0, Col: 0}, Horizontal: true},
		"Battleship":       {Origin: grid.Coord{Row: 2, Col: 0}, Horizontal: true},
		"Cruiser":          {Origin: grid.Coord{Row: 4, Col: 0}, Horizontal: true},
		"Submarine":        {Origin: grid.Coord{Row: 6, Col: 0}, Horizontal: true},
		"Destroyer":        {Origin: grid.Coord{Row: 8, Col: 0}, Horizontal: true},
	}
	b := grid.NewBoard()
	f := fleet.New()
	if err := PlaceLayout(b, f, layout); err != nil {
		t.Fatalf("place layout: %v", err)
	}
	if !f.Placed() {
		t.Fatal("expected every ship placed")
	}
	if got := f.ShipAt(grid.Coord{Row: 8, Col: 1}); got == nil || got.Name != "Destroyer" {
		t.Fatalf("ship at (8,1) = %v, want Destroyer", got)
	}
}

func TestPlaceLayoutIsAllOrNothing(t *testing.T) {
	layout := Layout{
		"Aircraft Carrier": {Origin: grid.Coord{Row: 0, Col: 0}, Horizontal: true},
		"Battleship":       {Origin: grid.Coord{Row: 0, Col: 2}},
	}
	b := grid.NewBoard()
	f := fleet.New()
	err := PlaceLayout(b, f, layout)
	if !errors.Is(err, grid.ErrOverlap) {
		t.Fatalf("error = %v, want %v", err, grid.ErrOverlap)
	}
	if f[0].Placed() || b.Snapshot() != (grid.Cells{}) {
		t.Fatal("expected nothing placed after an illegal layout")
	}
}

func TestPlaceLayoutRejectsUnknownShip(t *testing.T) {
	layout := Layout{
		"Aircraft Carrier": {Origin: grid.Coord{Row: 0, Col: 0}, Horizontal: true},
		"Rowboat":          {Origin: grid.Coord{Row: 9, Col: 0}, Horizontal: true},
	}
	b := grid.NewBoard()
	f := fleet.New()
	err := PlaceLayout(b, f, layout)
	if err == nil || !strings.Contains(err.Error(), `unknown ship "Rowboat"`) {
		t.Fatalf("error = %v, want unknown ship", err)
	}
	if f[0].Placed() || b.Snapshot() != (grid.Cells{}) {
		t.Fatal("expected nothing placed for a layout with an unknown ship")
	}
}
