package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/battleship/internal/services/battleship/domain/grid"
	"github.com/louisbranch/battleship/internal/services/battleship/storage"
)

func TestChainingBuildsScenario(t *testing.T) {
	path := writeScenarioFixture(t, `-- Setup
local scene = Scenario.new("chain")
scene:seed(7):player("ana"):record("ana", 2, 1)

-- Fleet
scene:place("Destroyer", 9, "I", "horizontal"):place("Destroyer", 0, 0, false)
scene:computer_place("Cruiser", 3, "c", "v")

-- Play
scene:attack(4, "J"):attack(0, 1)
scene:expect_result("WIN"):expect_record("ana", 3, 1):expect_shots(2)

return scene
`)

	scenario, err := LoadScenarioFromFile(path)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	if scenario.Name != "chain" {
		t.Fatalf("name = %q, want chain", scenario.Name)
	}
	if scenario.Seed != 7 {
		t.Fatalf("seed = %d, want 7", scenario.Seed)
	}
	if scenario.Player != "ana" {
		t.Fatalf("player = %q, want ana", scenario.Player)
	}
	if got := scenario.Records["ana"]; got != (storage.Stats{Wins: 2, Losses: 1}) {
		t.Fatalf("record = %+v, want 2/1", got)
	}

	queue := scenario.Placements["Destroyer"]
	wantQueue := []grid.Placement{
		{Origin: grid.Coord{Row: 9, Col: 8}, Horizontal: true},
		{Origin: grid.Coord{Row: 0, Col: 0}},
	}
	if len(queue) != len(wantQueue) {
		t.Fatalf("destroyer placements = %d, want %d", len(queue), len(wantQueue))
	}
	for i := range wantQueue {
		if queue[i] != wantQueue[i] {
			t.Fatalf("placement %d = %+v, want %+v", i, queue[i], wantQueue[i])
		}
	}

	cruiser, ok := scenario.ComputerLayout["Cruiser"]
	if !ok {
		t.Fatal("expected computer cruiser placement")
	}
	if want := (grid.Placement{Origin: grid.Coord{Row: 3, Col: 2}}); cruiser != want {
		t.Fatalf("computer cruiser = %+v, want %+v", cruiser, want)
	}

	wantAttacks := []grid.Coord{{Row: 4, Col: 9}, {Row: 0, Col: 1}}
	if len(scenario.Attacks) != len(wantAttacks) {
		t.Fatalf("attacks = %d, want %d", len(scenario.Attacks), len(wantAttacks))
	}
	for i := range wantAttacks {
		if scenario.Attacks[i] != wantAttacks[i] {
			t.Fatalf("attack %d = %v, want %v", i, scenario.Attacks[i], wantAttacks[i])
		}
	}

	want := []Expectation{
		{Kind: ExpectResult, Result: "win"},
		{Kind: ExpectRecord, Name: "ana", Wins: 3, Losses: 1},
		{Kind: ExpectShots, Shots: 2},
	}
	if len(scenario.Expectations) != len(want) {
		t.Fatalf("expectations = %d, want %d", len(scenario.Expectations), len(want))
	}
	for i := range want {
		if scenario.Expectations[i] != want[i] {
			t.Fatalf("expectation %d = %+v, want %+v", i, scenario.Expectations[i], want[i])
		}
	}
}

func TestScenarioNameDefaultsToFileName(t *testing.T) {
	path := writeScenarioFixture(t, `return Scenario.new()`)

	scenario, err := LoadScenarioFromFile(path)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	if scenario.Name != "scenario" {
		t.Fatalf("name = %q, want scenario", scenario.Name)
	}
}

func TestScenarioRejectsBadArguments(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{
			name:   "unknown ship",
			script: `Scenario.new("x"):place("Rowboat", 0, "A", "h")`,
			want:   "unknown ship Rowboat",
		},
		{
			name:   "bad orientation",
			script: `Scenario.new("x"):place("Cruiser", 0, "A", "diagonal")`,
			want:   "orientation must be horizontal or vertical",
		},
		{
			name:   "bad column",
			script: `Scenario.new("x"):attack(0, "Z")`,
			want:   "column must be a letter A-J",
		},
		{
			name:   "bad result",
			script: `Scenario.new("x"):expect_result("draw")`,
			want:   "result must be",
		},
		{
			name:   "negative record",
			script: `Scenario.new("x"):record("ana", -1, 0)`,
			want:   "must not be negative",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeScenarioFixture(t, tc.script+"\nreturn Scenario.new(\"unused\")\n")
			_, err := LoadScenarioFromFile(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %q, want %s", err.Error(), tc.want)
			}
		})
	}
}

func TestScenarioMustBeReturned(t *testing.T) {
	path := writeScenarioFixture(t, `local scene = Scenario.new("forgot")`)

	_, err := LoadScenarioFromFile(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "must return Scenario") {
		t.Fatalf("error = %q, want must return Scenario", err.Error())
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenarioFromFile(filepath.Join(t.TempDir(), "missing.lua"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "load lua") {
		t.Fatalf("error = %q, want load lua", err.Error())
	}
}

func writeScenarioFixture(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.lua")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}
