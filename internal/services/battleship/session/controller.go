package session

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"

	apperrors "github.com/louisbranch/battleship/internal/platform/errors"
	"github.com/louisbranch/battleship/internal/platform/id"
	platformotel "github.com/louisbranch/battleship/internal/platform/otel"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/placement"
	"github.com/louisbranch/battleship/internal/services/battleship/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/battleship/internal/services/battleship/session"

// Outcome summarizes a finished session.
type Outcome struct {
	SessionID string
	Player    string
	Result    Result
	// Shots counts the human's accepted attacks.
	Shots int
	// Record is the player's tally after this game was counted.
	Record storage.Stats
}

// Config wires a Controller.
type Config struct {
	Human    Human
	Observer Observer
	Store    storage.Store
	Rand     *rand.Rand
	Logger   *log.Logger
	Tracer   trace.Tracer
	// SessionID labels logs and spans. A random ID is used when empty.
	SessionID string
	// ComputerLayout fixes computer ship positions by name; ships it omits
	// are placed at random.
	ComputerLayout placement.Layout
}

// Controller runs exactly one session from leaderboard to saved result.
type Controller struct {
	human    Human
	observer Observer
	store    storage.Store
	rng      *rand.Rand
	logger   *log.Logger
	tracer   trace.Tracer
	id       string
	layout   placement.Layout
}

// NewController validates cfg and fills defaults for optional fields.
func NewController(cfg Config) (*Controller, error) {
	if cfg.Human == nil {
		return nil, fmt.Errorf("human input is required")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("player store is required")
	}
	if cfg.Rand == nil {
		return nil, fmt.Errorf("random source is required")
	}
	c := &Controller{
		human:    cfg.Human,
		observer: cfg.Observer,
		store:    cfg.Store,
		rng:      cfg.Rand,
		logger:   cfg.Logger,
		tracer:   cfg.Tracer,
		id:       strings.TrimSpace(cfg.SessionID),
		layout:   cfg.ComputerLayout,
	}
	if c.observer == nil {
		c.observer = NopObserver{}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard, "", 0)
	}
	if c.tracer == nil {
		c.tracer = platformotel.Tracer(tracerName)
	}
	if c.id == "" {
		sessionID, err := id.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate session id: %w", err)
		}
		c.id = sessionID
	}
	return c, nil
}

// ID returns the session identifier.
func (c *Controller) ID() string {
	return c.id
}

// Run plays the session to completion. Records are loaded once before play
// and saved once after the result is counted. When saving fails the finished
// Outcome is still returned together with a STORAGE_SAVE_FAILED error.
func (c *Controller) Run(ctx context.Context) (Outcome, error) {
	ctx, span := c.tracer.Start(ctx, "battleship.session",
		trace.WithAttributes(attribute.String("battleship.session_id", c.id)))
	defer span.End()

	outcome, err := c.run(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if outcome.Result != ResultNone {
		span.SetAttributes(
			attribute.String("battleship.result", outcome.Result.String()),
			attribute.Int("battleship.shots", outcome.Shots),
		)
	}
	return outcome, err
}

func (c *Controller) run(ctx context.Context) (Outcome, error) {
	location := storage.LocationOf(c.store)
	records, err := c.store.Load(ctx)
	if err != nil {
		return Outcome{}, apperrors.WrapWithMetadata(apperrors.CodeStorageLoadFailed,
			"load player records", err, map[string]string{"Path": location})
	}
	if records == nil {
		records = storage.Records{}
	}
	c.observer.Started(records.Leaderboard())

	name, err := c.askName(ctx)
	if err != nil {
		return Outcome{}, err
	}
	records.Ensure(name)
	c.logger.Printf("session %s: player %q", c.id, name)

	s := New(c.rng)
	if err := c.placeHumanFleet(ctx, s); err != nil {
		return Outcome{}, err
	}
	if err := c.placeComputerFleet(ctx, s); err != nil {
		return Outcome{}, err
	}
	if err := c.combat(ctx, s); err != nil {
		return Outcome{}, err
	}

	switch s.Result() {
	case ResultWin:
		records.RecordWin(name)
	case ResultLoss:
		records.RecordLoss(name)
	}
	outcome := Outcome{
		SessionID: c.id,
		Player:    name,
		Result:    s.Result(),
		Shots:     s.View().Shots,
		Record:    records[name],
	}
	c.logger.Printf("session %s: %s after %d shots", c.id, outcome.Result, outcome.Shots)
	c.observer.Finished(outcome)

	if err := c.save(ctx, records); err != nil {
		saveErr := apperrors.WrapWithMetadata(apperrors.CodeStorageSaveFailed,
			"save player records", err, map[string]string{"Path": location})
		c.observer.SaveFailed(saveErr)
		return outcome, saveErr
	}
	return outcome, nil
}

func (c *Controller) askName(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		name, err := c.human.Name(ctx)
		if err == nil {
			name = strings.TrimSpace(name)
			if name != "" {
				return name, nil
			}
			err = apperrors.New(apperrors.CodePlayerNameEmpty, "player name is empty")
		}
		if !c.retry(err) {
			return "", fmt.Errorf("read player name: %w", err)
		}
	}
}

func (c *Controller) placeHumanFleet(ctx context.Context, s *Session) error {
	ctx, span := c.tracer.Start(ctx, "battleship.placement.human")
	defer span.End()

	for ship := s.NextShip(); ship != nil; ship = s.NextShip() {
		c.observer.PlacingShip(*ship, s.View().HumanBoard)
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := c.human.Placement(ctx, *ship)
			if err == nil {
				_, err = s.PlaceHumanShip(p)
			}
			if err == nil {
				c.logger.Printf("session %s: placed %s at %s horizontal=%t", c.id, ship.Name, p.Origin, p.Horizontal)
				break
			}
			if !c.retry(err) {
				return fmt.Errorf("place %s: %w", ship.Name, err)
			}
		}
	}
	return nil
}

func (c *Controller) placeComputerFleet(ctx context.Context, s *Session) error {
	_, span := c.tracer.Start(ctx, "battleship.placement.computer",
		trace.WithAttributes(attribute.Bool("battleship.fixed_layout", len(c.layout) > 0)))
	defer span.End()

	c.observer.ComputerPlacing()
	if err := s.PlaceComputerLayout(c.layout); err != nil {
		span.RecordError(err)
		return fmt.Errorf("place computer fleet: %w", err)
	}
	return nil
}

func (c *Controller) combat(ctx context.Context, s *Session) error {
	for s.Phase() != PhaseFinished {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch s.Phase() {
		case PhaseCombatHuman:
			c.observer.Round(s.View())
			if err := c.humanTurn(ctx, s); err != nil {
				return err
			}
		case PhaseCombatComputer:
			if err := c.computerTurn(ctx, s); err != nil {
				return err
			}
		default:
			return s.wrongPhase("combat")
		}
	}
	return nil
}

func (c *Controller) humanTurn(ctx context.Context, s *Session) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		target, err := c.human.Target(ctx)
		if err == nil {
			var turn Turn
			turn, err = s.HumanAttack(target)
			if err == nil {
				c.recordTurn(ctx, turn)
				return nil
			}
		}
		if !c.retry(err) {
			return fmt.Errorf("human attack: %w", err)
		}
	}
}

func (c *Controller) computerTurn(ctx context.Context, s *Session) error {
	turn, err := s.ComputerAttack()
	if err != nil {
		return fmt.Errorf("computer attack: %w", err)
	}
	c.recordTurn(ctx, turn)
	return nil
}

func (c *Controller) recordTurn(ctx context.Context, turn Turn) {
	attrs := []attribute.KeyValue{
		attribute.String("battleship.side", turn.Side.String()),
		attribute.Int("battleship.row", turn.Attack.Coord.Row),
		attribute.Int("battleship.col", turn.Attack.Coord.Col),
		attribute.String("battleship.outcome", turn.Attack.Outcome.String()),
	}
	if turn.Attack.Sunk != nil {
		attrs = append(attrs, attribute.String("battleship.sunk", turn.Attack.Sunk.Name))
	}
	_, span := c.tracer.Start(ctx, "battleship.attack", trace.WithAttributes(attrs...))
	span.End()

	c.logger.Printf("session %s: %s fired at %s: %s", c.id, turn.Side, turn.Attack.Coord, turn.Attack.Outcome)
	c.observer.Attacked(turn)
}

func (c *Controller) retry(err error) bool {
	if !apperrors.IsRetryable(err) {
		return false
	}
	c.observer.Rejected(err)
	return true
}

func (c *Controller) save(ctx context.Context, records storage.Records) error {
	ctx, span := c.tracer.Start(ctx, "battleship.records.save")
	defer span.End()
	if err := c.store.Save(ctx, records); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
