// Package console is the terminal front end of a session: Renderer prints
// boards, fleet status and announcements, and Prompter reads the player's
// name, placements and targets from a line-oriented reader.
//
// Cell states become display symbols only here. All text comes from the
// localized "console" catalog namespace.
package console
