// Package domain holds the battleship rules engine.
//
// The engine is organized into leaf-to-root subpackages:
//
//   - grid: coordinates, cell states, the ship board and the tracking grid
//   - fleet: the five-ship catalog, damage bookkeeping and sink/defeat checks
//   - attack: the single path that applies an attack to a board and fleet
//   - placement: legality checks and randomized legal fleet placement
//   - targeting: uniform random choice among untried coordinates
//
// None of these packages perform I/O. Rendering, input and persistence live
// in the session, console and storage packages that sit above them.
package domain
