package layout

import (
	"github.com/bestkurisu/screeps-room-planner/core"
	"github.com/bestkurisu/screeps-room-planner/field"
	"github.com/bestkurisu/screeps-room-planner/grid"
	"github.com/bestkurisu/screeps-room-planner/host"
	"github.com/bestkurisu/screeps-room-planner/tuning"
)

// sourceField accumulates a BFS of radius tuning.SourceFieldRadius from
// every source into the same field, per spec.md §4.6. Tiles outside every
// source's radius keep the neutral fill value 0, not +Inf: these fields are
// summed together in the placement score, and a +Inf default would make
// almost every tile's sum infinite unless it happened to fall inside every
// seed's small radius simultaneously.
func sourceField(terrain host.TerrainQuery, sources []core.Point) *field.Field {
	f := field.NewField(0)
	for _, s := range sources {
		field.BFSCost(f, s.X, s.Y, tuning.SourceFieldRadius, terrain)
	}
	return f
}

func mineralField(terrain host.TerrainQuery, mineral core.Point) *field.Field {
	f := field.NewField(0)
	field.BFSCost(f, mineral.X, mineral.Y, tuning.MineralFieldRadius, terrain)
	return f
}

func controllerField(terrain host.TerrainQuery, controller core.Point) *field.Field {
	f := field.NewField(0)
	field.BFSCost(f, controller.X, controller.Y, tuning.ControllerFieldRadius, terrain)
	return f
}

// storageField is seeded at the committed storage tile with radius 0:
// BFSCost sets the storage tile to 0 and never reaches past the seed, and
// every other tile keeps the fill value, which is also 0. The field is
// therefore 0 everywhere, and its weighted terms in the placement scores
// add nothing to any tile.
func storageField(terrain host.TerrainQuery, storage core.Point) *field.Field {
	f := field.NewField(0)
	field.BFSCost(f, storage.X, storage.Y, tuning.StorageFieldRadius, terrain)
	return f
}

// wallField is a multi-source BFS seeded at every wall-or-room-edge tile
// with value 0; each step the newly reached tile gets
// (parent value + tuning.WallFieldStep) × tuning.WallFieldDecay — a soft
// preference for tiles a few steps off a wall, per spec.md §4.6.
func wallField(terrain host.TerrainQuery) *field.Field {
	f := field.NewField(0)
	var explored [grid.Cells]bool
	queue := make([]core.Point, 0, 256)

	isEdge := func(x, y int) bool {
		return x == 0 || y == 0 || x == grid.Size-1 || y == grid.Size-1
	}
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			if terrain.IsWall(x, y) || isEdge(x, y) {
				f.Set(x, y, 0)
				explored[grid.Index(x, y)] = true
				queue = append(queue, core.Point{X: x, Y: y})
			}
		}
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		next := (f.Get(cur.X, cur.Y) + tuning.WallFieldStep) * tuning.WallFieldDecay
		for _, n := range grid.Neighbors8 {
			nx, ny := cur.X+n.X, cur.Y+n.Y
			if !grid.InBounds(nx, ny) || explored[grid.Index(nx, ny)] {
				continue
			}
			explored[grid.Index(nx, ny)] = true
			f.Set(nx, ny, next)
			queue = append(queue, core.Point{X: nx, Y: ny})
		}
	}
	return f
}
