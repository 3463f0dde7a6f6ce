package mincut

import (
	"github.com/bestkurisu/screeps-room-planner/core"
	"github.com/bestkurisu/screeps-room-planner/grid"
	"github.com/bestkurisu/screeps-room-planner/host"
	"github.com/bestkurisu/screeps-room-planner/terrain"
	"github.com/bestkurisu/screeps-room-planner/tuning"
)

// Calculate drives the full rampart/exposure pipeline of spec.md §4.6: grow
// the protected set into a moat, fold in the controller's neighborhood, run
// the minimum-cut driver over the full room, then flood-fill exposure from
// every exit to build a pathfinding cost overlay.
func Calculate(query host.TerrainQuery, protected []core.Point, controller core.Point, logger host.Logger) ([]core.Point, *CostMatrix, error) {
	logger = host.NormalizeLogger(logger)

	moat := expandProtected(protected)
	for _, n := range grid.Neighbors8 {
		cx, cy := controller.X+n.X, controller.Y+n.Y
		if grid.InBounds(cx, cy) {
			moat = append(moat, core.Point{X: cx, Y: cy})
		}
	}

	cut, err := GetCutTiles(query, moat, nil, logger)
	if err != nil {
		return nil, nil, err
	}

	g := terrain.Classify(query, grid.FullRoom())
	for _, c := range cut {
		g.Set(c.X, c.Y, grid.RampartMin)
	}

	queue := make([]core.Point, 0, 64)
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			if g.At(x, y) == grid.Exit {
				g.Set(x, y, grid.Exposed)
				queue = append(queue, core.Point{X: x, Y: y})
			}
		}
	}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, n := range grid.Neighbors8 {
			nx, ny := cur.X+n.X, cur.Y+n.Y
			switch g.At(nx, ny) {
			case grid.Unwalkable, grid.RampartMin, grid.Exposed:
				continue
			}
			g.Set(nx, ny, grid.Exposed)
			queue = append(queue, core.Point{X: nx, Y: ny})
		}
	}

	cost := &CostMatrix{}
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			if g.At(x, y) == grid.Exposed {
				cost.set(x, y, 0xff)
			}
		}
	}

	logger.Printf("mincut: calculated %d rampart tiles", len(cut))
	return cut, cost, nil
}

// expandProtected grows the protected set by a BFS moat of depth
// tuning.ProtectedMoatDepth around every seed tile. A tile discovered at
// depth 3 still enqueues its depth-4 neighbors as protected, but depth-4
// tiles are terminal: they join the protected set without spawning a
// depth-5 ring, per spec.md §9's resolution of the moat-depth open question.
func expandProtected(seeds []core.Point) []core.Point {
	type qitem struct {
		p     core.Point
		depth int
	}

	seen := make(map[core.Point]bool, len(seeds)*4)
	result := make([]core.Point, 0, len(seeds)*4)
	queue := make([]qitem, 0, len(seeds))

	for _, s := range seeds {
		if seen[s] {
			continue
		}
		seen[s] = true
		result = append(result, s)
		queue = append(queue, qitem{p: s, depth: 0})
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.depth > tuning.ProtectedMoatDepth {
			continue
		}
		for _, n := range grid.Neighbors8 {
			np := core.Point{X: cur.p.X + n.X, Y: cur.p.Y + n.Y}
			if !grid.InBounds(np.X, np.Y) || seen[np] {
				continue
			}
			seen[np] = true
			result = append(result, np)
			queue = append(queue, qitem{p: np, depth: cur.depth + 1})
		}
	}
	return result
}
