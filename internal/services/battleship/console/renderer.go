package console

import (
	"fmt"
	"io"
	"strings"

	apperrors "github.com/louisbranch/battleship/internal/platform/errors"
	"github.com/louisbranch/battleship/internal/platform/i18n/catalog"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/attack"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/grid"
	"github.com/louisbranch/battleship/internal/services/battleship/session"
	"github.com/louisbranch/battleship/internal/services/battleship/storage"
	"golang.org/x/text/message"
)

// Renderer writes session events to a terminal.
type Renderer struct {
	out     io.Writer
	locale  string
	printer *message.Printer

	placementStarted bool
}

// NewRenderer returns a renderer writing to out in locale.
func NewRenderer(out io.Writer, locale string) *Renderer {
	return &Renderer{
		out:     out,
		locale:  locale,
		printer: catalog.Default().Printer(locale),
	}
}

func (r *Renderer) line(key string, args ...any) {
	fmt.Fprintln(r.out, r.printer.Sprintf(key, args...))
}

// Started prints the welcome banner and the leaderboard.
func (r *Renderer) Started(leaderboard []storage.PlayerRecord) {
	writeFrameTitle(r.out, r.printer.Sprintf("console.welcome"))
	writeFrameTitle(r.out, r.printer.Sprintf("console.leaderboard.title"))
	if len(leaderboard) == 0 {
		fmt.Fprintf(r.out, "║ %s ║\n", r.printer.Sprintf("console.leaderboard.empty"))
	}
	for _, rec := range leaderboard {
		fmt.Fprintf(r.out, "║ %s ║\n", r.printer.Sprintf("console.leaderboard.row", rec.Name, rec.Wins, rec.Losses))
	}
	fmt.Fprintln(r.out, strings.Repeat("=", frameWidth))
	fmt.Fprintln(r.out)
}

// PlacingShip announces the next ship and shows the human board.
func (r *Renderer) PlacingShip(ship session.ShipStatus, board grid.Cells) {
	if !r.placementStarted {
		r.placementStarted = true
		fmt.Fprintln(r.out)
		r.line("console.placement.start")
	}
	fmt.Fprintln(r.out)
	r.line("console.placement.ship", ship.Name, ship.Size)
	writeBoard(r.out, r.printer.Sprintf("console.board.own"), board)
}

// ComputerPlacing announces the computer's placement.
func (r *Renderer) ComputerPlacing() {
	fmt.Fprintln(r.out)
	r.line("console.placement.computer")
}

// Round shows both grids and both fleets before the human attacks.
func (r *Renderer) Round(view session.View) {
	fmt.Fprintf(r.out, "\n%s", strings.Repeat("=", frameWidth))
	writeBoard(r.out, r.printer.Sprintf("console.board.own"), view.HumanBoard)
	writeBoard(r.out, r.printer.Sprintf("console.board.tracking"), view.HumanTracking)
	r.fleetStatus("console.status.own", view.HumanFleet)
	r.fleetStatus("console.status.computer", view.ComputerFleet)
}

func (r *Renderer) fleetStatus(titleKey string, ships []session.ShipStatus) {
	writeFrameTitle(r.out, r.printer.Sprintf(titleKey))
	for _, s := range ships {
		status := r.printer.Sprintf("console.status.active")
		if s.Sunk {
			status = r.printer.Sprintf("console.status.sunk")
		}
		fmt.Fprintf(r.out, "║ %s ║\n", r.printer.Sprintf("console.status.row", s.Name, s.Size, status))
	}
	fmt.Fprintln(r.out, strings.Repeat("=", frameWidth))
}

// Attacked announces a resolved shot from either side.
func (r *Renderer) Attacked(turn session.Turn) {
	res := turn.Attack
	if turn.Side == session.SideComputer {
		fmt.Fprintln(r.out)
		r.line("console.computer.attack", res.Coord.Row, res.Coord.ColumnLabel())
		if res.Sunk != nil {
			r.line("console.computer.sunk", res.Sunk.Name)
		}
		if res.Outcome == attack.Hit {
			r.line("console.computer.hit")
		} else {
			r.line("console.computer.miss")
		}
		return
	}
	if res.Sunk != nil {
		r.line("console.attack.sunk", res.Sunk.Name)
	}
	if res.Outcome == attack.Hit {
		r.line("console.attack.hit")
	} else {
		r.line("console.attack.miss")
	}
}

// Rejected explains why input was refused.
func (r *Renderer) Rejected(err error) {
	r.line("console.error", apperrors.UserMessage(err, r.locale))
}

// Finished announces the result.
func (r *Renderer) Finished(outcome session.Outcome) {
	fmt.Fprintln(r.out)
	switch outcome.Result {
	case session.ResultWin:
		r.line("console.result.win", outcome.Player)
	case session.ResultLoss:
		r.line("console.result.loss")
	}
}

// SaveFailed reports that the result could not be persisted.
func (r *Renderer) SaveFailed(err error) {
	r.line("console.result.save_failed", apperrors.UserMessage(err, r.locale))
}

var _ session.Observer = (*Renderer)(nil)
