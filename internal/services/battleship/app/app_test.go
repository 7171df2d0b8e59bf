package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/battleship/internal/platform/errors"
	"github.com/louisbranch/battleship/internal/services/battleship/session"
	"github.com/louisbranch/battleship/internal/services/battleship/storage"
	"github.com/louisbranch/battleship/internal/services/battleship/storage/jsonfile"
	storagesqlite "github.com/louisbranch/battleship/internal/services/battleship/storage/sqlite"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		opts    Options
		wantErr bool
		check   func(t *testing.T, s storage.Store)
	}{
		{
			name: "json by default",
			opts: Options{StatsPath: filepath.Join(dir, "players.json")},
			check: func(t *testing.T, s storage.Store) {
				if _, ok := s.(*jsonfile.Store); !ok {
					t.Fatalf("store = %T, want *jsonfile.Store", s)
				}
			},
		},
		{
			name: "sqlite",
			opts: Options{Store: "SQLite", DBPath: filepath.Join(dir, "battleship.db")},
			check: func(t *testing.T, s storage.Store) {
				if _, ok := s.(*storagesqlite.Store); !ok {
					t.Fatalf("store = %T, want *sqlite.Store", s)
				}
			},
		},
		{name: "sqlite without path", opts: Options{Store: StoreSQLite}, wantErr: true},
		{name: "unknown backend", opts: Options{Store: "redis"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, closeStore, err := OpenStore(ctx, tt.opts)
			defer closeStore()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("open store: %v", err)
			}
			tt.check(t, store)
		})
	}
}

func TestRunRequiresInput(t *testing.T) {
	if _, err := Run(context.Background(), Options{}); err == nil {
		t.Fatal("expected missing input error")
	}
}

func TestRunStopsOnClosedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	var out bytes.Buffer
	_, err := Run(context.Background(), Options{
		StatsPath: path,
		Seed:      7,
		Locale:    "en-US",
		In:        strings.NewReader(""),
		Out:       &out,
	})
	if !errors.Is(err, io.EOF) {
		t.Fatalf("error = %v, want %v", err, io.EOF)
	}
	if !strings.Contains(out.String(), "WELCOME TO BATTLESHIP") {
		t.Fatalf("banner missing:\n%s", out.String())
	}
}

func TestRunAcceptsNullStatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	if err := os.WriteFile(path, []byte("null"), 0o600); err != nil {
		t.Fatalf("write stats: %v", err)
	}
	var out bytes.Buffer
	_, err := Run(context.Background(), Options{
		StatsPath: path,
		Seed:      7,
		Locale:    "en-US",
		In:        strings.NewReader("ana\n"),
		Out:       &out,
	})
	if !errors.Is(err, io.EOF) {
		t.Fatalf("error = %v, want %v", err, io.EOF)
	}
}

func TestRunPlaysFullGameFromConsole(t *testing.T) {
	var script strings.Builder
	script.WriteString("ana\n")
	for i := range 5 {
		fmt.Fprintf(&script, "%d\nA\ny\n", i*2)
	}
	// Sweeping every cell ends the game whichever side wins.
	for row := range 10 {
		for _, col := range "ABCDEFGHIJ" {
			fmt.Fprintf(&script, "%d\n%c\n", row, col)
		}
	}

	path := filepath.Join(t.TempDir(), "players.json")
	var out bytes.Buffer
	outcome, err := Run(context.Background(), Options{
		StatsPath: path,
		Seed:      99,
		Locale:    "en-US",
		In:        strings.NewReader(script.String()),
		Out:       &out,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome.Player != "ana" || outcome.Result == session.ResultNone {
		t.Fatalf("outcome = %+v, want finished game for ana", outcome)
	}

	store, _ := jsonfile.Open(path)
	records, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := records["ana"].Wins + records["ana"].Losses; got != 1 {
		t.Fatalf("games recorded = %d, want 1", got)
	}
	if !strings.Contains(out.String(), "YOUR ATTACKS") {
		t.Fatalf("round output missing:\n%s", out.String())
	}
}

func TestRunReportsUnreadableStats(t *testing.T) {
	// A directory cannot be read as a stats file.
	dir := t.TempDir()
	_, err := Run(context.Background(), Options{
		StatsPath: dir,
		In:        strings.NewReader("ana\n"),
	})
	if apperrors.CodeOf(err) != apperrors.CodeStorageLoadFailed {
		t.Fatalf("code = %s, want %s", apperrors.CodeOf(err), apperrors.CodeStorageLoadFailed)
	}
}
