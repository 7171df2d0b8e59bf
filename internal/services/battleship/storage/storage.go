package storage

import (
	"context"
	"sort"
	"strings"
)

// Stats is one player's persistent tally.
type Stats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// PlayerRecord is a named Stats row, as shown on the leaderboard.
type PlayerRecord struct {
	Name   string
	Wins   int
	Losses int
}

// Records maps player names to their stats.
type Records map[string]Stats

// Ensure creates a zeroed record for name when none exists.
func (r Records) Ensure(name string) {
	if _, ok := r[name]; !ok {
		r[name] = Stats{}
	}
}

// RecordWin adds one win to name, creating the record if needed.
func (r Records) RecordWin(name string) {
	s := r[name]
	s.Wins++
	r[name] = s
}

// RecordLoss adds one loss to name, creating the record if needed.
func (r Records) RecordLoss(name string) {
	s := r[name]
	s.Losses++
	r[name] = s
}

// Get returns the stats for name.
func (r Records) Get(name string) (Stats, bool) {
	s, ok := r[name]
	return s, ok
}

// Clone returns an independent copy.
func (r Records) Clone() Records {
	out := make(Records, len(r))
	for name, s := range r {
		out[name] = s
	}
	return out
}

// Leaderboard lists every record by wins descending, then by name.
func (r Records) Leaderboard() []PlayerRecord {
	out := make([]PlayerRecord, 0, len(r))
	for name, s := range r {
		out = append(out, PlayerRecord{Name: name, Wins: s.Wins, Losses: s.Losses})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return strings.Compare(out[i].Name, out[j].Name) < 0
	})
	return out
}

// Store loads and saves the full set of player records.
type Store interface {
	// Load returns every record. A store that does not exist yet yields an
	// empty, non-nil map.
	Load(ctx context.Context) (Records, error)
	// Save overwrites the stored records with records.
	Save(ctx context.Context, records Records) error
}

// Locator is implemented by stores that can name where records live, for
// error messages shown to the player.
type Locator interface {
	Location() string
}

// LocationOf returns store's location, or "" when it does not report one.
func LocationOf(store Store) string {
	if l, ok := store.(Locator); ok {
		return l.Location()
	}
	return ""
}
