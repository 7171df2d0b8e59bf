// Package scenario parses scenario command flags and runs one Lua script.
package scenario

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/battleship/internal/platform/cmd"
	"github.com/louisbranch/battleship/internal/tools/scenario"
)

// Config holds scenario command configuration.
type Config struct {
	Scenario   string        `env:"BATTLESHIP_SCENARIO_FILE"`
	Assertions bool          `env:"BATTLESHIP_SCENARIO_ASSERT"  envDefault:"true"`
	Verbose    bool          `env:"BATTLESHIP_SCENARIO_VERBOSE"`
	Timeout    time.Duration `env:"BATTLESHIP_SCENARIO_TIMEOUT" envDefault:"10s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "path to scenario lua file")
	fs.BoolVar(&cfg.Assertions, "assert", cfg.Assertions, "enable assertions (disable to log expectations)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "timeout per session")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the scenario command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	path := strings.TrimSpace(cfg.Scenario)
	if path == "" {
		return errors.New("scenario path is required")
	}

	mode := scenario.AssertionStrict
	if !cfg.Assertions {
		mode = scenario.AssertionLogOnly
	}

	logger := log.New(errOut, "", 0)
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceScenario, func(ctx context.Context) error {
		if err := scenario.RunFile(ctx, scenario.Config{
			Timeout:    cfg.Timeout,
			Assertions: mode,
			Verbose:    cfg.Verbose,
			Logger:     logger,
		}, path); err != nil {
			return err
		}
		_, err := io.WriteString(out, "ok "+path+"\n")
		return err
	})
}
