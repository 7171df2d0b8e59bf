// Package jsonfile stores player records in a players.json file.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/battleship/internal/services/battleship/storage"
)

// DefaultPath is the file the game reads when no path is configured.
const DefaultPath = "players.json"

// Store persists records as a JSON object keyed by player name:
//
//	{"ana": {"wins": 2, "losses": 1}}
type Store struct {
	path string
}

// Open returns a store for path. The file is created on the first Save.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	return &Store{path: filepath.Clean(path)}, nil
}

// Location returns the backing file path.
func (s *Store) Location() string {
	return s.path
}

// Load reads every record. A missing, blank or null file yields an empty map.
func (s *Store) Load(ctx context.Context) (storage.Records, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return storage.Records{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return storage.Records{}, nil
	}
	records := storage.Records{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if records == nil {
		records = storage.Records{}
	}
	return records, nil
}

// Save overwrites the file with records. It writes a sibling temp file and
// renames it over the target so a failed write leaves the old file intact.
func (s *Store) Save(ctx context.Context, records storage.Records) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = storage.Records{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".players-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

var (
	_ storage.Store   = (*Store)(nil)
	_ storage.Locator = (*Store)(nil)
)
