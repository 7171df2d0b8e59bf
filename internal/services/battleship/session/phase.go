package session

// Phase is a step of the session state machine.
type Phase uint8

const (
	PhasePlacementHuman Phase = iota
	PhasePlacementComputer
	PhaseCombatHuman
	PhaseCombatComputer
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhasePlacementHuman:
		return "placement_human"
	case PhasePlacementComputer:
		return "placement_computer"
	case PhaseCombatHuman:
		return "combat_human"
	case PhaseCombatComputer:
		return "combat_computer"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Result is the outcome of a finished session from the human's side.
type Result uint8

const (
	ResultNone Result = iota
	ResultWin
	ResultLoss
)

func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLoss:
		return "loss"
	default:
		return "none"
	}
}

// Side identifies who acted.
type Side uint8

const (
	SideHuman Side = iota
	SideComputer
)

func (s Side) String() string {
	if s == SideComputer {
		return "computer"
	}
	return "human"
}
