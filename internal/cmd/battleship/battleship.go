// Package battleship parses battleship command flags and runs one session.
package battleship

import (
	"context"
	"flag"
	"io"

	entrypoint "github.com/louisbranch/battleship/internal/platform/cmd"
	"github.com/louisbranch/battleship/internal/services/battleship/app"
)

// Config holds battleship command configuration.
type Config struct {
	Store     string `env:"BATTLESHIP_STORE"      envDefault:"json"`
	StatsPath string `env:"BATTLESHIP_STATS_PATH" envDefault:"players.json"`
	DBPath    string `env:"BATTLESHIP_DB_PATH"    envDefault:"battleship.db"`
	Seed      int64  `env:"BATTLESHIP_SEED"       envDefault:"0"`
	Locale    string `env:"BATTLESHIP_LOCALE"     envDefault:"en-US"`
	Verbose   bool   `env:"BATTLESHIP_VERBOSE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Store, "store", cfg.Store, "player store backend (json or sqlite)")
	fs.StringVar(&cfg.StatsPath, "stats", cfg.StatsPath, "path to the players.json file")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the sqlite database")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "message locale")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log session details to stderr")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run plays one session on the given streams.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBattleship, func(ctx context.Context) error {
		_, err := app.Run(ctx, app.Options{
			Store:     cfg.Store,
			StatsPath: cfg.StatsPath,
			DBPath:    cfg.DBPath,
			Seed:      cfg.Seed,
			Locale:    cfg.Locale,
			Verbose:   cfg.Verbose,
			In:        in,
			Out:       out,
			ErrOut:    errOut,
		})
		return err
	})
}
