package session

import (
	"math/rand"

	apperrors "github.com/louisbranch/battleship/internal/platform/errors"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/attack"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/fleet"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/grid"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/placement"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/targeting"
)

var (
	// ErrWrongPhase rejects an action the current phase does not allow.
	ErrWrongPhase = apperrors.New(apperrors.CodeSessionWrongPhase, "action not allowed in current phase")
	// ErrAlreadyAttacked rejects a coordinate already on the attacker's
	// tracking grid.
	ErrAlreadyAttacked = apperrors.New(apperrors.CodeCoordAlreadyAttacked, "coordinate already attacked")
)

// Turn describes one accepted attack and the phase it led to.
type Turn struct {
	Side   Side
	Attack attack.Result
	Phase  Phase
}

// Session holds both sides' boards, fleets and tracking grids. It is not safe
// for concurrent use.
type Session struct {
	rng    *rand.Rand
	phase  Phase
	result Result

	humanBoard       *grid.Board
	humanFleet       fleet.Fleet
	humanTracking    *grid.Tracking
	computerBoard    *grid.Board
	computerFleet    fleet.Fleet
	computerTracking *grid.Tracking
}

// New returns a session waiting for the human's first placement. rng drives
// computer placement and targeting.
func New(rng *rand.Rand) *Session {
	return &Session{
		rng:              rng,
		phase:            PhasePlacementHuman,
		humanBoard:       grid.NewBoard(),
		humanFleet:       fleet.New(),
		humanTracking:    grid.NewTracking(),
		computerBoard:    grid.NewBoard(),
		computerFleet:    fleet.New(),
		computerTracking: grid.NewTracking(),
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Result returns the outcome, or ResultNone until the session is finished.
func (s *Session) Result() Result { return s.result }

// NextShip returns the human ship awaiting placement, or nil once the whole
// fleet is placed.
func (s *Session) NextShip() *ShipStatus {
	if s.phase != PhasePlacementHuman {
		return nil
	}
	ship := s.humanFleet.NextUnplaced()
	if ship == nil {
		return nil
	}
	return &ShipStatus{Name: ship.Name, Size: ship.Size}
}

// PlaceHumanShip places the next human ship in catalog order at p. An
// illegal placement returns grid.ErrOutOfBounds or grid.ErrOverlap and
// changes nothing. The session moves to computer placement after the fifth
// ship.
func (s *Session) PlaceHumanShip(p grid.Placement) (ShipStatus, error) {
	if s.phase != PhasePlacementHuman {
		return ShipStatus{}, s.wrongPhase("place_human_ship")
	}
	ship := s.humanFleet.NextUnplaced()
	if err := placement.Place(s.humanBoard, ship, p); err != nil {
		return ShipStatus{}, err
	}
	if s.humanFleet.Placed() {
		s.phase = PhasePlacementComputer
	}
	return ShipStatus{Name: ship.Name, Size: ship.Size}, nil
}

// PlaceComputerFleet places the computer's fleet at random and starts combat
// with the human's turn.
func (s *Session) PlaceComputerFleet() error {
	return s.PlaceComputerLayout(nil)
}

// PlaceComputerLayout places the computer ships named in layout at their
// fixed positions and the rest at random, then starts combat.
func (s *Session) PlaceComputerLayout(layout placement.Layout) error {
	if s.phase != PhasePlacementComputer {
		return s.wrongPhase("place_computer_fleet")
	}
	if len(layout) > 0 {
		if err := placement.PlaceLayout(s.computerBoard, s.computerFleet, layout); err != nil {
			return err
		}
	}
	if err := placement.PlaceFleet(s.rng, s.computerBoard, s.computerFleet); err != nil {
		return err
	}
	s.phase = PhaseCombatHuman
	return nil
}

// HumanAttack fires at c on the computer's board. Coordinates off the board
// or already on the human's tracking grid are rejected without consuming the
// turn.
func (s *Session) HumanAttack(c grid.Coord) (Turn, error) {
	if s.phase != PhaseCombatHuman {
		return Turn{}, s.wrongPhase("human_attack")
	}
	if !c.InBounds() {
		return Turn{}, grid.ErrCoordOutOfRange
	}
	if s.humanTracking.Attacked(c) {
		return Turn{}, ErrAlreadyAttacked
	}
	res := attack.Resolve(s.computerBoard, s.computerFleet, c)
	s.humanTracking.Mark(c, res.Outcome == attack.Hit)
	if res.FleetDefeated {
		s.finish(ResultWin)
	} else {
		s.phase = PhaseCombatComputer
	}
	return Turn{Side: SideHuman, Attack: res, Phase: s.phase}, nil
}

// ComputerAttack fires at a uniformly random coordinate the computer has not
// tried yet.
func (s *Session) ComputerAttack() (Turn, error) {
	if s.phase != PhaseCombatComputer {
		return Turn{}, s.wrongPhase("computer_attack")
	}
	c, err := targeting.Random(s.rng, s.computerTracking)
	if err != nil {
		return Turn{}, err
	}
	res := attack.Resolve(s.humanBoard, s.humanFleet, c)
	s.computerTracking.Mark(c, res.Outcome == attack.Hit)
	if res.FleetDefeated {
		s.finish(ResultLoss)
	} else {
		s.phase = PhaseCombatHuman
	}
	return Turn{Side: SideComputer, Attack: res, Phase: s.phase}, nil
}

// View returns the human-visible state.
func (s *Session) View() View {
	return View{
		Phase:         s.phase,
		Result:        s.result,
		HumanBoard:    s.humanBoard.Snapshot(),
		HumanTracking: s.humanTracking.Snapshot(),
		HumanFleet:    statuses(s.humanFleet),
		ComputerFleet: statuses(s.computerFleet),
		Shots:         s.humanTracking.Shots(),
	}
}

func (s *Session) finish(r Result) {
	s.phase = PhaseFinished
	s.result = r
}

func (s *Session) wrongPhase(action string) error {
	return apperrors.WithMetadata(apperrors.CodeSessionWrongPhase,
		action+" not allowed during "+s.phase.String(),
		map[string]string{"Action": action, "Phase": s.phase.String()})
}
