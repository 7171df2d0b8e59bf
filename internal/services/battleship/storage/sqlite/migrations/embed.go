package migrations

import "embed"

// FS contains embedded SQLite migrations for player records.
//
//go:embed *.sql
var FS embed.FS
