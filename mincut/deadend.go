package mincut

import (
	"github.com/bestkurisu/screeps-room-planner/core"
	"github.com/bestkurisu/screeps-room-planner/grid"
	"github.com/bestkurisu/screeps-room-planner/host"
	"github.com/bestkurisu/screeps-room-planner/terrain"
)

// pruneDeadEnds drops cut tiles that only wall off pockets of NORMAL
// terrain unreachable from any real exit, per spec.md §4.4. It is only
// invoked when a sub-rectangle bounds produced the cut (the full-room case
// never creates an enclosed pocket) and the cut is non-empty.
func pruneDeadEnds(query host.TerrainQuery, cut []core.Point) []core.Point {
	g := terrain.Classify(query, grid.FullRoom())

	for _, c := range cut {
		g.Set(c.X, c.Y, grid.Unwalkable)
	}

	queue := make([]core.Point, 0, 64)
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			if !innerExitBand(x, y) {
				continue
			}
			if g.At(x, y) == grid.ToExit {
				queue = append(queue, core.Point{X: x, Y: y})
			}
		}
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, n := range grid.Neighbors8 {
			nx, ny := cur.X+n.X, cur.Y+n.Y
			if g.At(nx, ny) == grid.Normal {
				g.Set(nx, ny, grid.ToExit)
				queue = append(queue, core.Point{X: nx, Y: ny})
			}
		}
	}

	kept := make([]core.Point, 0, len(cut))
	for _, c := range cut {
		if hasToExitNeighbor(g, c.X, c.Y) {
			kept = append(kept, c)
		}
	}
	return kept
}

// innerExitBand reports whether (x,y) lies on the inner exit band
// (x=1, x=48, y=1, y=48) spec.md §4.4 seeds the flood fill from.
func innerExitBand(x, y int) bool {
	return x == 1 || x == grid.Size-2 || y == 1 || y == grid.Size-2
}

func hasToExitNeighbor(g *grid.Grid, x, y int) bool {
	for _, n := range grid.Neighbors8 {
		if g.At(x+n.X, y+n.Y) == grid.ToExit {
			return true
		}
	}
	return false
}
