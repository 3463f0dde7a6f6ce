// Package testutil provides synthetic 50×50 terrain builders for the
// concrete scenarios spec.md §8 enumerates, grounded on maze/generator.go's
// Config-in/Result-out shape — here specialized to fixed scenarios instead
// of stochastic generation, since the test suites need exact, reproducible
// terrain rather than a random maze.
package testutil

import (
	"github.com/bestkurisu/screeps-room-planner/grid"
	"github.com/bestkurisu/screeps-room-planner/host"
)

// OpenRoom returns a terrain query with no walls anywhere.
func OpenRoom() host.TerrainQuery {
	return func(x, y int) int { return 0 }
}

// Corridor returns a terrain query that is open only along the given row,
// walls everywhere else — the §8 scenario-2 "corridor" shape.
func Corridor(row int) host.TerrainQuery {
	return func(x, y int) int {
		if y == row {
			return 0
		}
		return 1
	}
}

// IsolatedPocket returns a terrain query that is open inside bounds
// (inclusive) and walled everywhere outside it, so the interior is
// completely unreachable from any room exit. Used to exercise dead-end
// pruning against an actual wall ring rather than a bounds-restricted
// classification, the §8 scenario-3 shape built from real terrain instead
// of a sub-rectangle argument.
func IsolatedPocket(bounds grid.Bounds) host.TerrainQuery {
	return func(x, y int) int {
		if bounds.Contains(x, y) {
			return 0
		}
		return 1
	}
}

// WallAt returns a terrain query with a single wall tile at (wx,wy) and
// open terrain everywhere else — used by the distance-field deflection
// scenario (§8 scenario 5).
func WallAt(wx, wy int) host.TerrainQuery {
	return func(x, y int) int {
		if x == wx && y == wy {
			return 1
		}
		return 0
	}
}
