package scenario

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/louisbranch/battleship/internal/random"
	"github.com/louisbranch/battleship/internal/services/battleship/session"
	"github.com/louisbranch/battleship/internal/services/battleship/storage"
)

// Config controls scenario execution.
type Config struct {
	Timeout    time.Duration
	Assertions AssertionMode
	Verbose    bool
	Logger     *log.Logger
}

// DefaultConfig returns default runner configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:    10 * time.Second,
		Assertions: AssertionStrict,
	}
}

// Runner plays Lua scenarios through the session controller.
type Runner struct {
	assertions Assertions
	logger     *log.Logger
	verbose    bool
	timeout    time.Duration
	newRand    func(seed int64) (*rand.Rand, int64, error)
}

// NewRunner applies config defaults.
func NewRunner(cfg Config) *Runner {
	return newRunnerWithRand(cfg, random.New)
}

// newRunnerWithRand builds a Runner whose sessions draw from newRand.
func newRunnerWithRand(cfg Config, newRand func(seed int64) (*rand.Rand, int64, error)) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Runner{
		assertions: Assertions{Mode: cfg.Assertions, Logger: logger},
		logger:     logger,
		verbose:    cfg.Verbose,
		timeout:    timeout,
		newRand:    newRand,
	}
}

// RunFile loads and executes a scenario file.
func RunFile(ctx context.Context, cfg Config, path string) error {
	scenario, err := LoadScenarioFromFile(path)
	if err != nil {
		return err
	}
	return NewRunner(cfg).RunScenario(ctx, scenario)
}

// RunScenario plays one session and checks the scenario's expectations.
func (r *Runner) RunScenario(ctx context.Context, scenario *Scenario) error {
	if scenario == nil {
		return errors.New("scenario is required")
	}
	r.logf("scenario start: %s (%d attacks, %d expectations)", scenario.Name, len(scenario.Attacks), len(scenario.Expectations))
	start := time.Now()

	rng, seed, err := r.newRand(scenario.Seed)
	if err != nil {
		return r.assertions.Failf("seed scenario %s: %w", scenario.Name, err)
	}
	r.logf("seed %d", seed)

	store := storage.NewMemoryStore(scenario.Records)
	var observer session.Observer = session.NopObserver{}
	if r.verbose {
		observer = &logObserver{logf: r.logf}
	}
	controller, err := session.NewController(session.Config{
		Human:          newScriptedHuman(scenario),
		Observer:       observer,
		Store:          store,
		Rand:           rng,
		Logger:         r.sessionLogger(),
		SessionID:      scenario.Name,
		ComputerLayout: scenario.ComputerLayout,
	})
	if err != nil {
		return r.assertions.Failf("scenario %s: %w", scenario.Name, err)
	}

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	outcome, err := controller.Run(runCtx)
	if err != nil {
		return r.assertions.Failf("scenario %s: %w", scenario.Name, err)
	}

	records, err := store.Load(ctx)
	if err != nil {
		return r.assertions.Failf("scenario %s: read records: %w", scenario.Name, err)
	}
	for index, expectation := range scenario.Expectations {
		if err := r.check(expectation, outcome, records); err != nil {
			return fmt.Errorf("scenario %s: expectation %d (%s): %w", scenario.Name, index+1, expectation.Kind, err)
		}
	}
	r.logf("scenario done: %s (%s)", scenario.Name, time.Since(start))
	return nil
}

func (r *Runner) check(expectation Expectation, outcome session.Outcome, records storage.Records) error {
	switch expectation.Kind {
	case ExpectResult:
		if got := outcome.Result.String(); got != expectation.Result {
			return r.assertions.Assertf("result = %s, want %s", got, expectation.Result)
		}
	case ExpectShots:
		if outcome.Shots != expectation.Shots {
			return r.assertions.Assertf("shots = %d, want %d", outcome.Shots, expectation.Shots)
		}
	case ExpectRecord:
		got, ok := records.Get(expectation.Name)
		want := statsOf(expectation.Wins, expectation.Losses)
		if !ok {
			return r.assertions.Assertf("player %q has no record, want %d/%d", expectation.Name, want.Wins, want.Losses)
		}
		if got != want {
			return r.assertions.Assertf("record %q = %d/%d, want %d/%d", expectation.Name, got.Wins, got.Losses, want.Wins, want.Losses)
		}
	default:
		return r.assertions.Failf("unknown expectation kind %q", expectation.Kind)
	}
	return nil
}

// sessionLogger forwards controller logs only in verbose mode.
func (r *Runner) sessionLogger() *log.Logger {
	if !r.verbose {
		return nil
	}
	return r.logger
}

func (r *Runner) logf(format string, args ...any) {
	if !r.verbose || r.logger == nil {
		return
	}
	r.logger.Printf(format, args...)
}

// logObserver narrates the events the controller log does not cover.
type logObserver struct {
	session.NopObserver
	logf func(format string, args ...any)
}

func (o *logObserver) Rejected(err error) {
	o.logf("rejected: %v", err)
}

func (o *logObserver) Finished(outcome session.Outcome) {
	o.logf("finished: %s wins=%d losses=%d", outcome.Result, outcome.Record.Wins, outcome.Record.Losses)
}
