package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/louisbranch/battleship/internal/random"
	"github.com/louisbranch/battleship/internal/services/battleship/console"
	"github.com/louisbranch/battleship/internal/services/battleship/session"
	"github.com/louisbranch/battleship/internal/services/battleship/storage"
	"github.com/louisbranch/battleship/internal/services/battleship/storage/jsonfile"
	storagesqlite "github.com/louisbranch/battleship/internal/services/battleship/storage/sqlite"
)

// Store backends.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Options configures a session run.
type Options struct {
	Store     string
	StatsPath string
	DBPath    string
	// Seed fixes the random source; zero draws a fresh seed.
	Seed    int64
	Locale  string
	Verbose bool

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// Run plays exactly one session on the console and returns its outcome.
func Run(ctx context.Context, opts Options) (session.Outcome, error) {
	if opts.In == nil {
		return session.Outcome{}, fmt.Errorf("input reader is required")
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.ErrOut == nil {
		opts.ErrOut = io.Discard
	}
	logger := log.New(io.Discard, "", 0)
	if opts.Verbose {
		logger = log.New(opts.ErrOut, log.Prefix(), log.Flags())
	}

	store, closeStore, err := OpenStore(ctx, opts)
	if err != nil {
		return session.Outcome{}, err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Printf("close player store: %v", err)
		}
	}()

	rng, seed, err := random.New(opts.Seed)
	if err != nil {
		return session.Outcome{}, fmt.Errorf("seed random source: %w", err)
	}

	controller, err := session.NewController(session.Config{
		Human:    console.NewPrompter(opts.In, opts.Out, opts.Locale),
		Observer: console.NewRenderer(opts.Out, opts.Locale),
		Store:    store,
		Rand:     rng,
		Logger:   logger,
	})
	if err != nil {
		return session.Outcome{}, err
	}
	logger.Printf("session %s: seed %d, store %s", controller.ID(), seed, storage.LocationOf(store))
	return controller.Run(ctx)
}

// OpenStore opens the backend named by opts.Store. The returned close
// function is always safe to call.
func OpenStore(ctx context.Context, opts Options) (storage.Store, func() error, error) {
	noop := func() error { return nil }
	switch strings.ToLower(strings.TrimSpace(opts.Store)) {
	case "", StoreJSON:
		path := opts.StatsPath
		if strings.TrimSpace(path) == "" {
			path = jsonfile.DefaultPath
		}
		store, err := jsonfile.Open(path)
		if err != nil {
			return nil, noop, fmt.Errorf("open json store: %w", err)
		}
		return store, noop, nil
	case StoreSQLite:
		store, err := storagesqlite.Open(ctx, opts.DBPath)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, store.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown store %q (want %s or %s)", opts.Store, StoreJSON, StoreSQLite)
	}
}
