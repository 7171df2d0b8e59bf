// Package app assembles one interactive battleship session: it opens the
// configured player store, seeds the random source, and connects the console
// front end to the session controller.
package app
