package scenario

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
	"github.com/louisbranch/battleship/internal/services/battleship/console"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/fleet"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/grid"
)

const scenarioTypeName = "battleship_scenario"

// LoadScenarioFromFile runs a Lua script and returns the Scenario it builds.
func LoadScenarioFromFile(path string) (*Scenario, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	registerLuaTypes(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}

	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	scenario, ok := ud.(*Scenario)
	if !ok || scenario == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

func registerLuaTypes(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)

	state.NewTable()
	lua.SetFunctions(state, scenarioConstructor, 0)
	state.SetGlobal("Scenario")
}

var scenarioConstructor = []lua.RegistryFunction{
	{Name: "new", Function: scenarioNew},
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "seed", Function: scenarioSeed},
	{Name: "player", Function: scenarioPlayer},
	{Name: "record", Function: scenarioRecord},
	{Name: "place", Function: scenarioPlace},
	{Name: "computer_place", Function: scenarioComputerPlace},
	{Name: "attack", Function: scenarioAttack},
	{Name: "expect_result", Function: scenarioExpectResult},
	{Name: "expect_record", Function: scenarioExpectRecord},
	{Name: "expect_shots", Function: scenarioExpectShots},
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	state.PushUserData(newScenario(name))
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

// Every method returns the scenario so calls can be chained.
func chain(state *lua.State) int {
	state.PushValue(1)
	return 1
}

func scenarioSeed(state *lua.State) int {
	scenario := checkScenario(state)
	scenario.Seed = int64(lua.CheckInteger(state, 2))
	return chain(state)
}

func scenarioPlayer(state *lua.State) int {
	scenario := checkScenario(state)
	scenario.Player = lua.CheckString(state, 2)
	return chain(state)
}

func scenarioRecord(state *lua.State) int {
	scenario := checkScenario(state)
	name := lua.CheckString(state, 2)
	wins := checkCount(state, 3)
	losses := checkCount(state, 4)
	scenario.Records[name] = statsOf(wins, losses)
	return chain(state)
}

func scenarioPlace(state *lua.State) int {
	scenario := checkScenario(state)
	ship := checkShip(state, 2)
	p := checkPlacement(state, 3)
	scenario.Placements[ship] = append(scenario.Placements[ship], p)
	return chain(state)
}

func scenarioComputerPlace(state *lua.State) int {
	scenario := checkScenario(state)
	ship := checkShip(state, 2)
	scenario.ComputerLayout[ship] = checkPlacement(state, 3)
	return chain(state)
}

func scenarioAttack(state *lua.State) int {
	scenario := checkScenario(state)
	scenario.Attacks = append(scenario.Attacks, checkCoord(state, 2))
	return chain(state)
}

func scenarioExpectResult(state *lua.State) int {
	scenario := checkScenario(state)
	result := strings.ToLower(lua.CheckString(state, 2))
	if result != "win" && result != "loss" {
		lua.ArgumentError(state, 2, "result must be \"win\" or \"loss\"")
	}
	scenario.Expectations = append(scenario.Expectations, Expectation{Kind: ExpectResult, Result: result})
	return chain(state)
}

func scenarioExpectRecord(state *lua.State) int {
	scenario := checkScenario(state)
	scenario.Expectations = append(scenario.Expectations, Expectation{
		Kind:   ExpectRecord,
		Name:   lua.CheckString(state, 2),
		Wins:   checkCount(state, 3),
		Losses: checkCount(state, 4),
	})
	return chain(state)
}

func scenarioExpectShots(state *lua.State) int {
	scenario := checkScenario(state)
	scenario.Expectations = append(scenario.Expectations, Expectation{Kind: ExpectShots, Shots: checkCount(state, 2)})
	return chain(state)
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if scenario, ok := ud.(*Scenario); ok && scenario != nil {
		return scenario
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func checkCount(state *lua.State, index int) int {
	n := lua.CheckInteger(state, index)
	if n < 0 {
		lua.ArgumentError(state, index, "must not be negative")
	}
	return n
}

func checkShip(state *lua.State, index int) string {
	name := lua.CheckString(state, index)
	for _, spec := range fleet.Catalog {
		if strings.EqualFold(spec.Name, name) {
			return spec.Name
		}
	}
	lua.ArgumentError(state, index, "unknown ship "+name)
	return ""
}

// checkCoord reads a row and a column starting at index. Columns may be a
// letter A-J or a zero-based number.
func checkCoord(state *lua.State, index int) grid.Coord {
	row := lua.CheckInteger(state, index)
	var col int
	if state.TypeOf(index+1) == lua.TypeNumber {
		col = lua.CheckInteger(state, index+1)
	} else {
		parsed, err := console.ParseColumn(lua.CheckString(state, index+1))
		if err != nil {
			lua.ArgumentError(state, index+1, "column must be a letter A-J")
		}
		col = parsed
	}
	return grid.Coord{Row: row, Col: col}
}

// checkPlacement reads row, column and orientation starting at index.
// Orientation is "horizontal"/"h", "vertical"/"v" or a boolean (true means
// horizontal).
func checkPlacement(state *lua.State, index int) grid.Placement {
	origin := checkCoord(state, index)
	orientationIndex := index + 2
	if state.TypeOf(orientationIndex) == lua.TypeBoolean {
		return grid.Placement{Origin: origin, Horizontal: state.ToBoolean(orientationIndex)}
	}
	switch strings.ToLower(lua.CheckString(state, orientationIndex)) {
	case "horizontal", "h":
		return grid.Placement{Origin: origin, Horizontal: true}
	case "vertical", "v":
		return grid.Placement{Origin: origin}
	default:
		lua.ArgumentError(state, orientationIndex, "orientation must be horizontal or vertical")
		return grid.Placement{}
	}
}
