// Package storage defines the player-record contract shared by the session
// controller and its persistence backends.
//
// Records are read once when a session starts and written once, as a full
// overwrite, when it finishes. Backends live in subpackages: jsonfile keeps
// the players.json format and sqlite keeps a players table.
package storage
