// Package scenario runs scripted battleship sessions described in Lua.
//
// A script builds a Scenario with the global Scenario.new constructor and
// returns it:
//
//	local scene = Scenario.new("carrier first")
//	scene:seed(7):player("ana")
//	scene:place("Aircraft Carrier", 0, "A", "horizontal")
//	scene:computer_place("Destroyer", 9, "I", "horizontal")
//	scene:attack(0, "A")
//	scene:expect_result("win")
//	scene:expect_record("ana", 1, 0)
//	return scene
//
// The runner plays the session through the real controller with a scripted
// human and an in-memory player store, then checks the expectations.
package scenario

import (
	"github.com/louisbranch/battleship/internal/services/battleship/domain/grid"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/placement"
	"github.com/louisbranch/battleship/internal/services/battleship/storage"
)

// Scenario is a scripted session.
type Scenario struct {
	Name   string
	Seed   int64
	Player string
	// Records seeds the player store before the session starts.
	Records storage.Records
	// Placements queues human placements per ship name. A rejected placement
	// makes the next queued one for that ship be tried.
	Placements     map[string][]grid.Placement
	ComputerLayout placement.Layout
	Attacks        []grid.Coord
	Expectations   []Expectation
}

// Expectation is one check made after the session ends.
type Expectation struct {
	Kind   string
	Result string
	Name   string
	Wins   int
	Losses int
	Shots  int
}

// Expectation kinds.
const (
	ExpectResult = "result"
	ExpectRecord = "record"
	ExpectShots  = "shots"
)

func newScenario(name string) *Scenario {
	return &Scenario{
		Name:           name,
		Records:        storage.Records{},
		Placements:     map[string][]grid.Placement{},
		ComputerLayout: placement.Layout{},
	}
}

func statsOf(wins, losses int) storage.Stats {
	return storage.Stats{Wins: wins, Losses: losses}
}
