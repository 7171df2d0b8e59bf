// Package session runs one human-versus-computer battleship game.
//
// Session is the synchronous state machine: placement for the human, then
// the computer, then alternating attacks until a fleet is defeated. It is a
// step API with no I/O, so tests and scripted scenarios can drive it move by
// move.
//
// Controller drives a Session to completion. It asks a Human collaborator
// for names, placements and targets, reports progress to an Observer, and
// loads and saves player records through a storage.Store exactly once each.
package session
