// Package terrain classifies a room's tiles from a host terrain query into
// the tag vocabulary the flow graph and layout planner operate on.
package terrain

import (
	"github.com/bestkurisu/screeps-room-planner/grid"
	"github.com/bestkurisu/screeps-room-planner/host"
)

// Classify labels every tile UNWALKABLE | NORMAL | TO_EXIT | EXIT from a
// terrain query and an optional bounds rectangle, per spec.md §4.1.
//
// Bounds smaller than the full room still produce EXIT tags for any
// room-edge row/column that falls inside the bounds, and TO_EXIT both for
// the bounds-edge band and for the exit-adjacency band.
func Classify(query host.TerrainQuery, bounds grid.Bounds) *grid.Grid {
	g := grid.NewGrid()

	for y := bounds.Y1; y <= bounds.Y2; y++ {
		for x := bounds.X1; x <= bounds.X2; x++ {
			if query.IsWall(x, y) {
				continue
			}
			tag := grid.Normal
			if x == bounds.X1 || x == bounds.X2 || y == bounds.Y1 || y == bounds.Y2 {
				tag = grid.ToExit
			}
			if x == 0 || y == 0 || x == grid.Size-1 || y == grid.Size-1 {
				tag = grid.Exit
			}
			g.Set(x, y, tag)
		}
	}

	markExitAdjacency(g)
	return g
}

// markExitAdjacency runs the three-cell moving window spec.md §4.1
// describes: for every inner row/column just inside an edge, a tile is
// forced TO_EXIT if any of the three edge tiles it sits beside is an
// EXIT. The window naturally also marks the four diagonal corners (e.g.
// (1,1) when (0,0) is EXIT), resolving the Open Question in SPEC_FULL.md
// §4 without special-case corner code.
func markExitAdjacency(g *grid.Grid) {
	for y := 1; y <= grid.Size-2; y++ {
		if isExitAt(g, 0, y-1) || isExitAt(g, 0, y) || isExitAt(g, 0, y+1) {
			forceToExit(g, 1, y)
		}
		if isExitAt(g, grid.Size-1, y-1) || isExitAt(g, grid.Size-1, y) || isExitAt(g, grid.Size-1, y+1) {
			forceToExit(g, grid.Size-2, y)
		}
	}
	for x := 1; x <= grid.Size-2; x++ {
		if isExitAt(g, x-1, 0) || isExitAt(g, x, 0) || isExitAt(g, x+1, 0) {
			forceToExit(g, x, 1)
		}
		if isExitAt(g, x-1, grid.Size-1) || isExitAt(g, x, grid.Size-1) || isExitAt(g, x+1, grid.Size-1) {
			forceToExit(g, x, grid.Size-2)
		}
	}
}

func isExitAt(g *grid.Grid, x, y int) bool {
	return g.At(x, y) == grid.Exit
}

// forceToExit upgrades a tile to TO_EXIT only if it is currently NORMAL or
// already TO_EXIT; it never overwrites UNWALKABLE, PROTECTED, or EXIT.
func forceToExit(g *grid.Grid, x, y int) {
	switch g.At(x, y) {
	case grid.Normal, grid.ToExit:
		g.Set(x, y, grid.ToExit)
	}
}
